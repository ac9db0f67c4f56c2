package services

import (
	"fmt"
	"itinerary-route-service/internal/domain"
	"math"
)

// DepotIndex is the fixed start and end node of every tour.
const DepotIndex = 0

// NearestNeighborTour builds an initial closed tour using a greedy
// nearest-neighbor (cheapest outgoing arc) rule.
//
// Starting from the depot, it repeatedly moves to the closest unvisited node.
// Ties go to the lowest node index so the tour is fully deterministic.
// The returned tour has length N, starts at the depot, and implicitly closes
// back to it. It does not attempt global optimization; TwoOptImprove refines it.
func NearestNeighborTour(m DistanceMatrix) ([]int, error) {
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("nearest neighbor tour: %w", err)
	}

	n := m.Size()
	if n == 0 {
		return nil, fmt.Errorf("nearest neighbor tour: %w", domain.ErrEmptyInput)
	}

	visited := make([]bool, n)
	visited[DepotIndex] = true

	tour := make([]int, 0, n)
	tour = append(tour, DepotIndex)
	current := DepotIndex

	for len(tour) < n {
		best := -1
		bestDist := math.MaxInt

		// Select next node by minimum distance (greedy step).
		// Strict < keeps the lowest index on ties.
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if d := m[current][j]; d < bestDist {
				bestDist = d
				best = j
			}
		}

		if best == -1 {
			return nil, fmt.Errorf("nearest neighbor tour: failed to select next node after %d", current)
		}

		visited[best] = true
		tour = append(tour, best)
		current = best
	}

	return tour, nil
}
