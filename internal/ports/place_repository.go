package ports

import (
	"context"
	"itinerary-route-service/internal/domain"
)

// CandidateFilter narrows the catalogue to places suitable for one slot.
type CandidateFilter struct {
	City          string
	PriceCategory domain.PriceCategory
	// Hour must fall within a place's opening hours.
	Hour  int
	Limit int
}

// Port: a boundary for retrieving ranked candidate places.
// Implementations return places best-first.
type PlaceRepository interface {
	ListCandidates(ctx context.Context, filter CandidateFilter) ([]domain.CatalogPlace, error)
}
