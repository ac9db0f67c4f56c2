package services

import (
	"context"
	"errors"
	"itinerary-route-service/internal/domain"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanDailyRoutesKeepsOrderAndSkipsEmptyDays(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	days := []DayPlaces{
		{Day: "Day 1", Places: randomPlaces(r, 3)},
		{Day: "Day 2"},
		{Day: "Day 3", Places: randomPlaces(r, 1)},
		{Day: "Day 4", Places: randomPlaces(r, 6)},
	}

	routes, errs := PlanDailyRoutes(context.Background(), days, DailyRouteOptions{Workers: 2})
	require.Empty(t, errs)
	require.Len(t, routes, 3)

	assert.Equal(t, "Day 1", routes[0].Day)
	assert.Equal(t, "Day 3", routes[1].Day)
	assert.Equal(t, "Day 4", routes[2].Day)

	assert.Len(t, routes[0].Solution.Route, 3)
	assert.Zero(t, routes[1].Solution.TotalMeters)
	assert.Len(t, routes[2].Solution.Route, 6)
}

func TestPlanDailyRoutesMatchesSingleSolve(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	places := randomPlaces(r, 9)

	want, err := SolveRoute(context.Background(), places, SolveOptions{})
	require.NoError(t, err)

	routes, errs := PlanDailyRoutes(context.Background(), []DayPlaces{{Day: "Day 1", Places: places}}, DailyRouteOptions{})
	require.Empty(t, errs)
	require.Len(t, routes, 1)
	assert.Equal(t, want, routes[0].Solution)
}

func TestPlanDailyRoutesIndependentOfWorkerCount(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	days := make([]DayPlaces, 6)
	for i := range days {
		days[i] = DayPlaces{Day: domain.DayLabel(i), Places: randomPlaces(r, 2+i)}
	}

	serial, errs := PlanDailyRoutes(context.Background(), days, DailyRouteOptions{Workers: 1})
	require.Empty(t, errs)

	parallel, errs := PlanDailyRoutes(context.Background(), days, DailyRouteOptions{Workers: 4})
	require.Empty(t, errs)

	assert.Equal(t, serial, parallel)
}

func TestPlanDailyRoutesNoDays(t *testing.T) {
	routes, errs := PlanDailyRoutes(context.Background(), nil, DailyRouteOptions{})
	assert.Empty(t, routes)
	assert.Empty(t, errs)
}

func TestPlanDailyRoutesDegradesOnCanceledContext(t *testing.T) {
	r := rand.New(rand.NewSource(34))
	days := []DayPlaces{
		{Day: "Day 1", Places: randomPlaces(r, 8)},
		{Day: "Day 2", Places: randomPlaces(r, 8)},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	routes, errs := PlanDailyRoutes(ctx, days, DailyRouteOptions{DayTimeout: time.Second})
	require.Empty(t, errs)
	require.Len(t, routes, 2)
	for _, rt := range routes {
		assert.Len(t, rt.Solution.Route, 8)
		assert.False(t, rt.Solution.Converged)
	}
}

func TestPlanDailyRoutesIsolatesFailingDay(t *testing.T) {
	errSolver := errors.New("solver exploded")
	orig := solveDay
	solveDay = func(ctx context.Context, places []domain.Place, opts SolveOptions) (*domain.RouteSolution, error) {
		if places[0].Name == "Broken" {
			return nil, errSolver
		}
		return SolveRoute(ctx, places, opts)
	}
	t.Cleanup(func() { solveDay = orig })

	r := rand.New(rand.NewSource(55))
	days := []DayPlaces{
		{Day: "Day 1", Places: randomPlaces(r, 4)},
		{Day: "Day 2", Places: []domain.Place{{Name: "Broken", Lat: -7.25, Lon: 112.75}}},
		{Day: "Day 3", Places: randomPlaces(r, 5)},
	}

	routes, errs := PlanDailyRoutes(context.Background(), days, DailyRouteOptions{Workers: 3})

	require.Len(t, routes, 2)
	assert.Equal(t, "Day 1", routes[0].Day)
	assert.Equal(t, "Day 3", routes[1].Day)
	assert.Len(t, routes[0].Solution.Route, 4)
	assert.Len(t, routes[1].Solution.Route, 5)

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], errSolver)
	assert.Contains(t, errs[0].Error(), "Day 2")
}

func TestPlanDailyRoutesDropsEmptyInputErrors(t *testing.T) {
	orig := solveDay
	solveDay = func(context.Context, []domain.Place, SolveOptions) (*domain.RouteSolution, error) {
		return nil, domain.ErrEmptyInput
	}
	t.Cleanup(func() { solveDay = orig })

	routes, errs := PlanDailyRoutes(context.Background(), []DayPlaces{
		{Day: "Day 1", Places: []domain.Place{{Name: "A"}}},
	}, DailyRouteOptions{})

	assert.Empty(t, routes)
	assert.Empty(t, errs)
}
