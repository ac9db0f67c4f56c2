package services

import (
	"context"
	"fmt"
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/platform/obs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("itinerary-route-service/internal/services")

type SolveOptions struct {
	// MaxPasses caps 2-opt improvement passes (see TwoOptOptions).
	MaxPasses int
}

// SolveRoute orders places into a closed tour that starts and ends at the
// first place (the depot) and approximately minimizes great-circle distance.
//
// Pipeline: haversine matrix, nearest-neighbor construction, 2-opt
// improvement, then extraction of names and totals. Zero places returns
// domain.ErrEmptyInput without building a matrix. A single place is a trivial
// route of length zero. Places are assumed validated (domain.ValidatePlaces).
func SolveRoute(ctx context.Context, places []domain.Place, opts SolveOptions) (_ *domain.RouteSolution, err error) {
	// No places means no route, not a failed solve.
	if len(places) == 0 {
		return nil, domain.ErrEmptyInput
	}

	defer obs.Time(ctx, "services.SolveRoute")(&err)

	ctx, span := tracer.Start(ctx, "SolveRoute", trace.WithAttributes(
		attribute.Int("route.places", len(places)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if len(places) == 1 {
		return &domain.RouteSolution{
			Route:           []string{places[0].Name},
			Tour:            []int{DepotIndex},
			TotalMeters:     0,
			TotalDistanceKm: 0,
			Converged:       true,
		}, nil
	}

	m := BuildDistanceMatrix(places)

	initial, err := NearestNeighborTour(m)
	if err != nil {
		return nil, fmt.Errorf("solve route: %w", err)
	}

	improved, err := TwoOptImprove(ctx, m, initial, TwoOptOptions{MaxPasses: opts.MaxPasses})
	if err != nil {
		return nil, fmt.Errorf("solve route: %w", err)
	}

	// Budget or deadline exhaustion degrades quality, never the request.
	if !improved.Converged {
		zap.L().Warn("route search stopped before local optimum",
			zap.String("req_id", obs.RequestID(ctx)),
			zap.String("reason", string(improved.Reason)),
			zap.Int("places", len(places)),
			zap.Int("passes", improved.Passes),
			zap.Int("cost_m", improved.Cost),
		)
	}

	solution, err := ExtractSolution(m, improved.Tour, places)
	if err != nil {
		return nil, fmt.Errorf("solve route: %w", err)
	}
	solution.Converged = improved.Converged

	span.SetAttributes(
		attribute.Int("route.total_meters", solution.TotalMeters),
		attribute.Int("route.moves", improved.Moves),
		attribute.Bool("route.converged", improved.Converged),
	)

	return solution, nil
}
