package handlers

import (
	"errors"
	"fmt"
	"itinerary-route-service/internal/api/dto"
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/platform/obs"
	"itinerary-route-service/internal/ports"
	"itinerary-route-service/internal/services"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ItineraryHandler struct {
	Places      ports.PlaceRepository
	Store       ports.ItineraryStore
	Routes      services.DailyRouteOptions
	MaxTripDays int
}

// Recommend builds a multi-day itinerary for a city: one place per slot per
// day, each day's places ordered into an optimized route, and the result
// stored for later retrieval.
func (h *ItineraryHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req dto.RecommendRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, r, err)
		return
	}

	city := strings.TrimSpace(req.City)
	if city == "" || strings.TrimSpace(req.StartDate) == "" ||
		strings.TrimSpace(req.EndDate) == "" || strings.TrimSpace(req.PriceCategory) == "" {
		writeError(w, r, http.StatusBadRequest, "missing required fields")
		return
	}

	start, err := time.Parse(dto.DateLayout, strings.TrimSpace(req.StartDate))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "start_date must be dd-mm-yyyy")
		return
	}
	end, err := time.Parse(dto.DateLayout, strings.TrimSpace(req.EndDate))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "end_date must be dd-mm-yyyy")
		return
	}

	price, ok := domain.ParsePriceCategory(req.PriceCategory)
	if !ok {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf(
			"price_category must be one of %s, %s, %s",
			domain.PriceCheap, domain.PriceModerate, domain.PriceExpensive,
		))
		return
	}

	days, err := services.TripDays(start, end)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "end_date must not be before start_date")
		return
	}
	if h.MaxTripDays > 0 && days > h.MaxTripDays {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("trip must not exceed %d days", h.MaxTripDays))
		return
	}

	res, err := services.PlanItinerary(r.Context(), services.PlanItineraryRequest{
		City:          city,
		PriceCategory: price,
		StartDate:     start,
		EndDate:       end,
	}, h.Places, h.Store, h.Routes)
	if err != nil {
		zap.L().Error("plan itinerary failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.Error(err),
		)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	msg := "Itinerary planned but could not be saved"
	var docID *string
	if res.DocumentID != "" {
		msg = "Data saved successfully"
		docID = &res.DocumentID
	}

	writeJSON(w, r, http.StatusOK, dto.RecommendResponse{
		Message:        msg,
		DocumentID:     docID,
		SelectedPlaces: toDaySelections(res.Itinerary.Days),
		Routes:         toDayRoutes(res.Itinerary.Routes),
	})
}

// Get returns a stored itinerary by id.
func (h *ItineraryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" || h.Store == nil {
		writeError(w, r, http.StatusNotFound, "itinerary not found")
		return
	}

	it, err := h.Store.Get(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "itinerary not found")
		return
	}
	if err != nil {
		zap.L().Error("get itinerary failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.String("itinerary_id", id),
			zap.Error(err),
		)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ItineraryResponse{
		ID:             it.ID,
		City:           it.City,
		PriceCategory:  string(it.PriceCategory),
		StartDate:      it.StartDate.Format(dto.DateLayout),
		EndDate:        it.EndDate.Format(dto.DateLayout),
		CreatedAt:      it.CreatedAt,
		SelectedPlaces: toDaySelections(it.Days),
		Routes:         toDayRoutes(it.Routes),
	})
}

func toDaySelections(days []domain.DayPlan) []dto.DaySelectionResponse {
	out := make([]dto.DaySelectionResponse, 0, len(days))
	for _, d := range days {
		places := make(map[string]dto.PlaceResponse, len(d.Places))
		for slot, p := range d.Places {
			places[string(slot)] = dto.PlaceResponse{
				PlaceID:       p.ID,
				Name:          p.Name,
				City:          p.City,
				Category:      p.Category,
				Description:   p.Description,
				Rating:        p.Rating,
				Price:         p.Price,
				PriceCategory: string(p.PriceCategory()),
				Lat:           p.Lat,
				Lon:           p.Lon,
				OpeningHour:   p.OpeningHour,
				ClosingHour:   p.ClosingHour,
			}
		}
		out = append(out, dto.DaySelectionResponse{Day: d.Day, Places: places})
	}
	return out
}

func toDayRoutes(routes []domain.DayRoute) []dto.DayRouteResponse {
	out := make([]dto.DayRouteResponse, 0, len(routes))
	for _, rt := range routes {
		if rt.Solution == nil {
			continue
		}
		out = append(out, dto.DayRouteResponse{
			Day:             rt.Day,
			Route:           rt.Solution.Route,
			TotalDistanceKm: rt.Solution.TotalDistanceKm,
			Converged:       rt.Solution.Converged,
		})
	}
	return out
}
