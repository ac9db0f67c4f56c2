package services

import (
	"context"
	"errors"
	"fmt"
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/platform/obs"
	"itinerary-route-service/internal/ports"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidDateRange = errors.New("end date must not be before start date")

type PlanItineraryRequest struct {
	City          string
	PriceCategory domain.PriceCategory
	StartDate     time.Time
	EndDate       time.Time
}

type PlanItineraryResult struct {
	Itinerary *domain.Itinerary
	// DocumentID is empty when the itinerary could not be stored.
	DocumentID string
}

// TripDays returns the inclusive number of calendar days between start and end.
func TripDays(start, end time.Time) (int, error) {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if e.Before(s) {
		return 0, ErrInvalidDateRange
	}
	return int(e.Sub(s).Hours()/24) + 1, nil
}

// PlanItinerary selects places for every day of a trip, optimizes each day's
// route, and stores the result.
//
// Candidates come from repo, one ranked list per slot. Routing failures for a
// single day are logged and leave that day without a route. A storage failure
// is logged and reported as an empty DocumentID; the planned itinerary is
// still returned.
func PlanItinerary(
	ctx context.Context,
	req PlanItineraryRequest,
	repo ports.PlaceRepository,
	store ports.ItineraryStore,
	opts DailyRouteOptions,
) (_ *PlanItineraryResult, err error) {
	defer obs.Time(ctx, "services.PlanItinerary")(&err)

	ctx, span := tracer.Start(ctx, "PlanItinerary", trace.WithAttributes(
		attribute.String("itinerary.city", req.City),
		attribute.String("itinerary.price_category", string(req.PriceCategory)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	city := strings.TrimSpace(req.City)
	if city == "" {
		return nil, errors.New("plan itinerary: city must be non-empty")
	}

	numDays, err := TripDays(req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("plan itinerary: %w", err)
	}

	candidates, err := listSlotCandidates(ctx, repo, city, req.PriceCategory, numDays*len(domain.Slots))
	if err != nil {
		return nil, fmt.Errorf("plan itinerary: %w", err)
	}

	days := SelectDailyPlaces(numDays, candidates)

	routes, routeErrs := PlanDailyRoutes(ctx, DayPlacesFrom(days), opts)
	if len(routeErrs) > 0 {
		zap.L().Warn("itinerary planned with missing day routes",
			zap.String("req_id", obs.RequestID(ctx)),
			zap.Int("failed_days", len(routeErrs)),
		)
	}

	it := &domain.Itinerary{
		ID:            uuid.NewString(),
		City:          city,
		PriceCategory: req.PriceCategory,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Days:          days,
		Routes:        routes,
		CreatedAt:     time.Now().UTC(),
	}

	res := &PlanItineraryResult{Itinerary: it}
	if store == nil {
		return res, nil
	}

	id, saveErr := store.Save(ctx, it)
	if saveErr != nil {
		zap.L().Error("itinerary save failed",
			zap.String("req_id", obs.RequestID(ctx)),
			zap.Error(saveErr),
		)
		return res, nil
	}
	res.DocumentID = id

	return res, nil
}

// listSlotCandidates fetches one ranked candidate list per slot concurrently.
func listSlotCandidates(
	ctx context.Context,
	repo ports.PlaceRepository,
	city string,
	price domain.PriceCategory,
	limit int,
) (map[domain.Slot][]domain.CatalogPlace, error) {
	lists := make([][]domain.CatalogPlace, len(domain.Slots))

	g, gctx := errgroup.WithContext(ctx)
	for i, slot := range domain.Slots {
		g.Go(func() error {
			places, err := repo.ListCandidates(gctx, ports.CandidateFilter{
				City:          city,
				PriceCategory: price,
				Hour:          slot.Hour(),
				Limit:         limit,
			})
			if err != nil {
				return fmt.Errorf("list %s candidates: %w", slot, err)
			}
			lists[i] = places
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[domain.Slot][]domain.CatalogPlace, len(domain.Slots))
	for i, slot := range domain.Slots {
		out[slot] = lists[i]
	}
	return out, nil
}
