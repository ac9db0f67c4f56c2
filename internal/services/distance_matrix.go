package services

import (
	"errors"
	"itinerary-route-service/internal/domain"
	"math"
)

// EarthRadiusMeters is the mean Earth radius used for great-circle distances.
const EarthRadiusMeters = 6371000.0

var (
	ErrInvalidMatrix = errors.New("distance matrix must be square")
	ErrInvalidTour   = errors.New("tour must be a permutation starting at the depot")
)

// DistanceMatrix holds pairwise distances in whole meters.
// It is symmetric with a zero diagonal and is read-only once built.
type DistanceMatrix [][]int

func (m DistanceMatrix) Size() int { return len(m) }

func (m DistanceMatrix) validate() error {
	n := len(m)
	for i := range m {
		if len(m[i]) != n {
			return ErrInvalidMatrix
		}
	}
	return nil
}

// HaversineMeters returns the great-circle distance between a and b.
func HaversineMeters(a, b domain.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	// Clamp guards asin against rounding slightly above 1 for antipodal points.
	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(math.Min(1, h)))
}

// BuildDistanceMatrix computes the pairwise haversine matrix for places.
//
// Distances are truncated (not rounded) to whole meters. Each unordered pair
// is computed once and mirrored so the matrix is exactly symmetric.
// An empty input yields an empty matrix and a single place yields [[0]].
func BuildDistanceMatrix(places []domain.Place) DistanceMatrix {
	n := len(places)
	m := make(DistanceMatrix, n)
	for i := range m {
		m[i] = make([]int, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := int(math.Trunc(HaversineMeters(places[i].Coords(), places[j].Coords())))
			m[i][j] = d
			m[j][i] = d
		}
	}

	return m
}
