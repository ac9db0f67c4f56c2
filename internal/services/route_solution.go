package services

import (
	"fmt"
	"itinerary-route-service/internal/domain"
)

// ExtractSolution maps a final tour back to place names and totals.
// The distance is summed from the matrix so it matches what the improver
// optimized, never recomputed from coordinates.
func ExtractSolution(m DistanceMatrix, tour []int, places []domain.Place) (*domain.RouteSolution, error) {
	if len(places) != m.Size() {
		return nil, fmt.Errorf("extract solution: %d places for a %d-node matrix", len(places), m.Size())
	}
	if err := ValidateTour(tour, len(places)); err != nil {
		return nil, fmt.Errorf("extract solution: %w", err)
	}

	route := make([]string, 0, len(tour))
	for _, idx := range tour {
		route = append(route, places[idx].Name)
	}

	meters := TourCost(m, tour)
	out := make([]int, len(tour))
	copy(out, tour)

	return &domain.RouteSolution{
		Route:           route,
		Tour:            out,
		TotalMeters:     meters,
		TotalDistanceKm: float64(meters) / 1000,
		Converged:       true,
	}, nil
}
