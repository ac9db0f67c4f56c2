package services

import (
	"fmt"
	"itinerary-route-service/internal/domain"
	"math"
	"math/rand"
	"testing"
)

// unitSquare returns A(0,0) B(0,1) C(1,1) D(1,0) in (lat, lon) degrees.
func unitSquare() []domain.Place {
	return []domain.Place{
		{Name: "A", Lat: 0, Lon: 0},
		{Name: "B", Lat: 0, Lon: 1},
		{Name: "C", Lat: 1, Lon: 1},
		{Name: "D", Lat: 1, Lon: 0},
	}
}

// ring places n points on a small circle around (lat, lon), in angular order.
func ring(n int, lat, lon, radiusDeg float64) []domain.Place {
	out := make([]domain.Place, n)
	for k := 0; k < n; k++ {
		theta := 2 * math.Pi * float64(k) / float64(n)
		out[k] = domain.Place{
			Name: fmt.Sprintf("P%02d", k),
			Lat:  lat + radiusDeg*math.Sin(theta),
			Lon:  lon + radiusDeg*math.Cos(theta),
		}
	}
	return out
}

// randomPlaces scatters n places around Surabaya with a fixed seed.
func randomPlaces(r *rand.Rand, n int) []domain.Place {
	out := make([]domain.Place, n)
	for i := range out {
		out[i] = domain.Place{
			Name: fmt.Sprintf("Place %d", i),
			Lat:  -7.25 + r.Float64()*0.3,
			Lon:  112.6 + r.Float64()*0.3,
		}
	}
	return out
}

func isPermutation(tour []int, n int) bool {
	if len(tour) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range tour {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// sameCycleEitherDir reports whether two depot-first tours describe the same
// cycle in either orientation.
func sameCycleEitherDir(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	forward, backward := true, true
	n := len(a)
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			forward = false
		}
		if a[i] != b[(n-i)%n] {
			backward = false
		}
	}
	return forward || backward
}

// bruteForceOptimum enumerates all tours with the depot fixed.
func bruteForceOptimum(t *testing.T, m DistanceMatrix) int {
	t.Helper()

	n := m.Size()
	rest := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		rest = append(rest, i)
	}

	best := math.MaxInt
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			tour := append([]int{DepotIndex}, rest...)
			if c := TourCost(m, tour); c < best {
				best = c
			}
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)

	return best
}
