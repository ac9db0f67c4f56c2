package ports

import (
	"context"
	"itinerary-route-service/internal/domain"
)

// Port: persistence for generated itineraries.
type ItineraryStore interface {
	// Save stores the itinerary and returns its document id.
	// An empty itinerary ID is assigned by the store.
	Save(ctx context.Context, it *domain.Itinerary) (string, error)
	// Get returns domain.ErrNotFound when no itinerary has the id.
	Get(ctx context.Context, id string) (*domain.Itinerary, error)
}
