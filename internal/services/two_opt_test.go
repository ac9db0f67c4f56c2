package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwoOptImproveRemovesSquareCrossing(t *testing.T) {
	m := BuildDistanceMatrix(unitSquare())
	crossing := []int{0, 2, 1, 3} // A -> C -> B -> D uses both diagonals

	res, err := TwoOptImprove(context.Background(), m, crossing, TwoOptOptions{})
	require.NoError(t, err)

	assert.True(t, sameCycleEitherDir(res.Tour, []int{0, 1, 2, 3}), "tour = %v", res.Tour)
	assert.Equal(t, m[0][1]+m[1][2]+m[2][3]+m[3][0], res.Cost)
	assert.True(t, res.Converged)
	assert.Equal(t, StopConverged, res.Reason)

	// Input is left untouched.
	assert.Equal(t, []int{0, 2, 1, 3}, crossing)
}

func TestTwoOptImproveRecoversRingOrder(t *testing.T) {
	places := ring(12, -7.25, 112.75, 0.1)
	m := BuildDistanceMatrix(places)
	star := []int{0, 5, 10, 3, 8, 1, 6, 11, 4, 9, 2, 7}

	res, err := TwoOptImprove(context.Background(), m, star, TwoOptOptions{})
	require.NoError(t, err)

	want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	assert.True(t, sameCycleEitherDir(res.Tour, want), "tour = %v", res.Tour)
	assert.Equal(t, TourCost(m, res.Tour), res.Cost)
	assert.Less(t, res.Cost, TourCost(m, star))
}

func TestTwoOptImproveMonotoneAndPermutation(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for trial := 0; trial < 40; trial++ {
		n := 2 + r.Intn(11)
		m := BuildDistanceMatrix(randomPlaces(r, n))

		initial, err := NearestNeighborTour(m)
		require.NoError(t, err)

		res, err := TwoOptImprove(context.Background(), m, initial, TwoOptOptions{})
		require.NoError(t, err)

		require.True(t, isPermutation(res.Tour, n), "trial %d: %v", trial, res.Tour)
		require.Equal(t, DepotIndex, res.Tour[0])
		require.LessOrEqual(t, res.Cost, TourCost(m, initial), "trial %d", trial)
		require.Equal(t, TourCost(m, res.Tour), res.Cost, "trial %d", trial)
		require.True(t, res.Converged, "trial %d", trial)
	}
}

func TestTwoOptImproveIsIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	m := BuildDistanceMatrix(randomPlaces(r, 10))

	initial, err := NearestNeighborTour(m)
	require.NoError(t, err)

	first, err := TwoOptImprove(context.Background(), m, initial, TwoOptOptions{})
	require.NoError(t, err)

	second, err := TwoOptImprove(context.Background(), m, first.Tour, TwoOptOptions{})
	require.NoError(t, err)

	assert.Equal(t, first.Tour, second.Tour)
	assert.Equal(t, first.Cost, second.Cost)
	assert.Zero(t, second.Moves)
	assert.Equal(t, 1, second.Passes)
}

func TestTwoOptImproveIsDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	m := BuildDistanceMatrix(randomPlaces(r, 12))
	initial, err := NearestNeighborTour(m)
	require.NoError(t, err)

	want, err := TwoOptImprove(context.Background(), m, initial, TwoOptOptions{})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		got, err := TwoOptImprove(context.Background(), m, initial, TwoOptOptions{})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestTwoOptImproveStopsOnPassLimit(t *testing.T) {
	m := BuildDistanceMatrix(ring(12, -7.25, 112.75, 0.1))
	star := []int{0, 5, 10, 3, 8, 1, 6, 11, 4, 9, 2, 7}

	res, err := TwoOptImprove(context.Background(), m, star, TwoOptOptions{MaxPasses: 1})
	require.NoError(t, err)

	assert.False(t, res.Converged)
	assert.Equal(t, StopPassLimit, res.Reason)
	assert.Equal(t, 1, res.Passes)
	assert.Equal(t, 1, res.Moves)
	assert.Less(t, res.Cost, TourCost(m, star))
	assert.True(t, isPermutation(res.Tour, 12))
}

func TestTwoOptImproveReturnsBestSoFarOnDeadline(t *testing.T) {
	m := BuildDistanceMatrix(unitSquare())
	crossing := []int{0, 2, 1, 3}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := TwoOptImprove(ctx, m, crossing, TwoOptOptions{})
	require.NoError(t, err)

	assert.False(t, res.Converged)
	assert.Equal(t, StopDeadline, res.Reason)
	assert.Equal(t, crossing, res.Tour)
	assert.Equal(t, TourCost(m, crossing), res.Cost)
}

func TestTwoOptImproveSmallToursUnchanged(t *testing.T) {
	for _, n := range []int{1, 2, 3} {
		places := ring(n, 0, 0, 0.5)
		m := BuildDistanceMatrix(places)
		tour := make([]int, n)
		for i := range tour {
			tour[i] = i
		}

		res, err := TwoOptImprove(context.Background(), m, tour, TwoOptOptions{})
		require.NoError(t, err)
		assert.Equal(t, tour, res.Tour)
		assert.True(t, res.Converged)
		assert.Zero(t, res.Moves)
	}
}

func TestTwoOptImproveRejectsInvalidTour(t *testing.T) {
	m := BuildDistanceMatrix(unitSquare())

	for _, tour := range [][]int{
		{0, 1, 2},
		{1, 0, 2, 3},
		{0, 1, 1, 3},
		{0, 1, 2, 4},
	} {
		_, err := TwoOptImprove(context.Background(), m, tour, TwoOptOptions{})
		assert.True(t, errors.Is(err, ErrInvalidTour), "tour %v: %v", tour, err)
	}
}
