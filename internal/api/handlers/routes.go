package handlers

import (
	"context"
	"errors"
	"fmt"
	"itinerary-route-service/internal/api/dto"
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/platform/obs"
	"itinerary-route-service/internal/services"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// RouteHandler serves ad-hoc route optimization for a caller-supplied list
// of places.
type RouteHandler struct {
	Options services.SolveOptions
	// Timeout, when positive, bounds the solve. On expiry the best route
	// found so far is returned.
	Timeout time.Duration
	// MaxPlaces rejects larger requests. Zero means no limit.
	MaxPlaces int
}

// Optimize orders the given places into a closed tour starting at the first
// place and reports its great-circle length.
func (h *RouteHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	var req dto.OptimizeRouteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, r, err)
		return
	}

	if len(req.Places) == 0 {
		writeError(w, r, http.StatusBadRequest, "no places provided for optimization")
		return
	}
	if h.MaxPlaces > 0 && len(req.Places) > h.MaxPlaces {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("at most %d places can be optimized per request", h.MaxPlaces))
		return
	}

	places := make([]domain.Place, 0, len(req.Places))
	for i, p := range req.Places {
		if p.Lat == nil || p.Lon == nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("place #%d: lat and lon are required", i+1))
			return
		}
		places = append(places, domain.Place{Name: strings.TrimSpace(p.Name), Lat: *p.Lat, Lon: *p.Lon})
	}

	if err := domain.ValidatePlaces(places); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	sol, err := services.SolveRoute(ctx, places, h.Options)
	if errors.Is(err, domain.ErrEmptyInput) {
		writeError(w, r, http.StatusBadRequest, "no places provided for optimization")
		return
	}
	if err != nil {
		zap.L().Error("optimize route failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.Error(err),
		)
		writeError(w, r, http.StatusInternalServerError, "could not optimize the route")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.RouteResponse{
		Route:           sol.Route,
		TotalDistanceKm: sol.TotalDistanceKm,
		Converged:       sol.Converged,
	})
}
