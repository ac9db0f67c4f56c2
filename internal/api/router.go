package api

import (
	"itinerary-route-service/internal/api/handlers"
	"itinerary-route-service/internal/ports"
	"itinerary-route-service/internal/services"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Options struct {
	Routes      services.DailyRouteOptions
	MaxTripDays int
	// MaxRoutePlaces bounds /optimize_route requests. Zero means no limit.
	MaxRoutePlaces int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(places ports.PlaceRepository, store ports.ItineraryStore, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(loggingMiddleware)

	routeHandler := &handlers.RouteHandler{
		Options:   services.SolveOptions{MaxPasses: opts.Routes.MaxPasses},
		Timeout:   opts.Routes.DayTimeout,
		MaxPlaces: opts.MaxRoutePlaces,
	}
	itineraryHandler := &handlers.ItineraryHandler{
		Places:      places,
		Store:       store,
		Routes:      opts.Routes,
		MaxTripDays: opts.MaxTripDays,
	}

	r.Get("/health", handlers.Health)
	r.Post("/optimize_route", routeHandler.Optimize)
	r.Post("/recommend", itineraryHandler.Recommend)
	r.Get("/itineraries/{id}", itineraryHandler.Get)

	return r
}
