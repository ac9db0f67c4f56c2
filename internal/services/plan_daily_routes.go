package services

import (
	"context"
	"errors"
	"fmt"
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/platform/obs"
	"runtime"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DayPlaces is one day's input to PlanDailyRoutes.
type DayPlaces struct {
	Day    string
	Places []domain.Place
}

// solveDay solves a single day; replaced in tests.
var solveDay = SolveRoute

type DailyRouteOptions struct {
	MaxPasses int
	// Workers bounds concurrent day solves. Zero or negative means GOMAXPROCS.
	Workers int
	// DayTimeout, when positive, bounds each day's solve. On expiry the day
	// still gets the best route found so far.
	DayTimeout time.Duration
}

// PlanDailyRoutes solves each day independently and returns routes in input
// order.
//
// Days with no places are skipped without error. A day whose solve fails is
// also skipped; its error is returned in the second result and never affects
// the other days.
func PlanDailyRoutes(ctx context.Context, days []DayPlaces, opts DailyRouteOptions) ([]domain.DayRoute, []error) {
	ctx, span := tracer.Start(ctx, "PlanDailyRoutes", trace.WithAttributes(
		attribute.Int("itinerary.days", len(days)),
	))
	defer span.End()

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	solutions := make([]*domain.RouteSolution, len(days))
	dayErrs := make([]error, len(days))

	// Plain Group: one failing day must not cancel its siblings.
	var g errgroup.Group
	g.SetLimit(workers)

	for i, day := range days {
		if len(day.Places) == 0 {
			continue
		}

		g.Go(func() error {
			dayCtx := ctx
			if opts.DayTimeout > 0 {
				var cancel context.CancelFunc
				dayCtx, cancel = context.WithTimeout(ctx, opts.DayTimeout)
				defer cancel()
			}

			sol, err := solveDay(dayCtx, day.Places, SolveOptions{MaxPasses: opts.MaxPasses})
			if err != nil {
				dayErrs[i] = fmt.Errorf("plan daily routes: %s: %w", day.Day, err)
				return nil
			}
			solutions[i] = sol
			return nil
		})
	}

	_ = g.Wait()

	routes := make([]domain.DayRoute, 0, len(days))
	var errs []error
	for i, day := range days {
		if err := dayErrs[i]; err != nil {
			if !errors.Is(err, domain.ErrEmptyInput) {
				zap.L().Error("day route failed",
					zap.String("req_id", obs.RequestID(ctx)),
					zap.String("day", day.Day),
					zap.Error(err),
				)
				errs = append(errs, err)
			}
			continue
		}
		if solutions[i] == nil {
			continue
		}
		routes = append(routes, domain.DayRoute{Day: day.Day, Solution: solutions[i]})
	}

	span.SetAttributes(attribute.Int("itinerary.routes", len(routes)))

	return routes, errs
}
