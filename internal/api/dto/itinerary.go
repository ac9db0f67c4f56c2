package dto

import "time"

// DateLayout is the dd-mm-yyyy format used for trip dates.
const DateLayout = "02-01-2006"

type RecommendRequest struct {
	City          string `json:"city"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	PriceCategory string `json:"price_category"`
}

type PlaceResponse struct {
	PlaceID     int     `json:"place_id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Rating      float64 `json:"rating"`
	Price       int     `json:"price"`
	// PriceCategory is derived from Price.
	PriceCategory string  `json:"price_category"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	OpeningHour   int     `json:"opening_hour"`
	ClosingHour   int     `json:"closing_hour"`
}

type DaySelectionResponse struct {
	Day    string                   `json:"day"`
	Places map[string]PlaceResponse `json:"places"`
}

type RecommendResponse struct {
	Message string `json:"message"`
	// DocumentID is null when the itinerary could not be stored.
	DocumentID     *string                `json:"document_id"`
	SelectedPlaces []DaySelectionResponse `json:"selected_places"`
	Routes         []DayRouteResponse     `json:"routes"`
}

type ItineraryResponse struct {
	ID             string                 `json:"id"`
	City           string                 `json:"city"`
	PriceCategory  string                 `json:"price_category"`
	StartDate      string                 `json:"start_date"`
	EndDate        string                 `json:"end_date"`
	CreatedAt      time.Time              `json:"created_at"`
	SelectedPlaces []DaySelectionResponse `json:"selected_places"`
	Routes         []DayRouteResponse     `json:"routes"`
}
