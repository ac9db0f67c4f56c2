package services

import "fmt"

// ValidateTour checks that tour is a permutation of 0..n-1 starting at the depot.
func ValidateTour(tour []int, n int) error {
	if len(tour) != n || n == 0 {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidTour, len(tour), n)
	}
	if tour[0] != DepotIndex {
		return fmt.Errorf("%w: starts at %d", ErrInvalidTour, tour[0])
	}

	seen := make([]bool, n)
	for _, v := range tour {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("%w: node %d repeated or out of range", ErrInvalidTour, v)
		}
		seen[v] = true
	}
	return nil
}

// TourCost sums consecutive arcs of the closed tour, including the return
// arc to the depot.
func TourCost(m DistanceMatrix, tour []int) int {
	n := len(tour)
	if n < 2 {
		return 0
	}

	total := 0
	for i := 0; i < n; i++ {
		total += m[tour[i]][tour[(i+1)%n]]
	}
	return total
}

// reverseSegment reverses tour[i..j] in place.
func reverseSegment(tour []int, i, j int) {
	for i < j {
		tour[i], tour[j] = tour[j], tour[i]
		i++
		j--
	}
}
