package store

import (
	"encoding/json"
	"fmt"
	"itinerary-route-service/internal/domain"
	"time"

	"github.com/google/uuid"
)

// itineraryDocument is the stored JSON form shared by every store backend.
type itineraryDocument struct {
	ID            string          `json:"id"`
	City          string          `json:"city"`
	PriceCategory string          `json:"price_category,omitempty"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	Days          []dayDocument   `json:"days"`
	Routes        []routeDocument `json:"routes"`
	CreatedAt     time.Time       `json:"created_at"`
}

type dayDocument struct {
	Day    string                   `json:"day"`
	Places map[string]placeDocument `json:"places"`
}

type placeDocument struct {
	ID          int     `json:"place_id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Rating      float64 `json:"rating"`
	Price       int     `json:"price"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	OpeningHour int     `json:"opening_hour"`
	ClosingHour int     `json:"closing_hour"`
}

type routeDocument struct {
	Day             string   `json:"day"`
	Route           []string `json:"route"`
	Tour            []int    `json:"tour"`
	TotalMeters     int      `json:"total_meters"`
	TotalDistanceKm float64  `json:"total_distance_km"`
	Converged       bool     `json:"converged"`
}

// ensureID assigns a fresh id to itineraries that have none.
func ensureID(it *domain.Itinerary) {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
}

func encodeItinerary(it *domain.Itinerary) ([]byte, error) {
	doc := itineraryDocument{
		ID:            it.ID,
		City:          it.City,
		PriceCategory: string(it.PriceCategory),
		StartDate:     it.StartDate,
		EndDate:       it.EndDate,
		Days:          make([]dayDocument, 0, len(it.Days)),
		Routes:        make([]routeDocument, 0, len(it.Routes)),
		CreatedAt:     it.CreatedAt,
	}

	for _, d := range it.Days {
		dd := dayDocument{Day: d.Day, Places: make(map[string]placeDocument, len(d.Places))}
		for slot, p := range d.Places {
			dd.Places[string(slot)] = placeDocument(p)
		}
		doc.Days = append(doc.Days, dd)
	}

	for _, r := range it.Routes {
		if r.Solution == nil {
			continue
		}
		doc.Routes = append(doc.Routes, routeDocument{
			Day:             r.Day,
			Route:           r.Solution.Route,
			Tour:            r.Solution.Tour,
			TotalMeters:     r.Solution.TotalMeters,
			TotalDistanceKm: r.Solution.TotalDistanceKm,
			Converged:       r.Solution.Converged,
		})
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode itinerary %s: %w", it.ID, err)
	}
	return b, nil
}

func decodeItinerary(b []byte) (*domain.Itinerary, error) {
	var doc itineraryDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decode itinerary: %w", err)
	}

	it := &domain.Itinerary{
		ID:            doc.ID,
		City:          doc.City,
		PriceCategory: domain.PriceCategory(doc.PriceCategory),
		StartDate:     doc.StartDate,
		EndDate:       doc.EndDate,
		Days:          make([]domain.DayPlan, 0, len(doc.Days)),
		Routes:        make([]domain.DayRoute, 0, len(doc.Routes)),
		CreatedAt:     doc.CreatedAt,
	}

	for _, d := range doc.Days {
		plan := domain.DayPlan{Day: d.Day, Places: make(map[domain.Slot]domain.CatalogPlace, len(d.Places))}
		for slot, p := range d.Places {
			plan.Places[domain.Slot(slot)] = domain.CatalogPlace(p)
		}
		it.Days = append(it.Days, plan)
	}

	for _, r := range doc.Routes {
		it.Routes = append(it.Routes, domain.DayRoute{
			Day: r.Day,
			Solution: &domain.RouteSolution{
				Route:           r.Route,
				Tour:            r.Tour,
				TotalMeters:     r.TotalMeters,
				TotalDistanceKm: r.TotalDistanceKm,
				Converged:       r.Converged,
			},
		})
	}

	return it, nil
}
