package domain

// RouteSolution is the output of one route solve.
// Route lists place names in visiting order starting at the depot; the return
// leg to the depot is implied and included in the totals.
// It is immutable planning data and contains no side effects.
type RouteSolution struct {
	Route           []string
	Tour            []int
	TotalMeters     int
	TotalDistanceKm float64
	// Converged is false when local search stopped on its pass cap or a
	// deadline before reaching a local optimum.
	Converged bool
}

// DayRoute is the optimized route for a single itinerary day.
type DayRoute struct {
	Day      string
	Solution *RouteSolution
}
