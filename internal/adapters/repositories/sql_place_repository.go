package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/platform/obs"
	"itinerary-route-service/internal/ports"
	"strings"
)

// SQLPlaceRepository is the Postgres (pgx) PlaceRepository.
type SQLPlaceRepository struct {
	DB *sql.DB
}

func NewSQLPlaceRepository(db *sql.DB) *SQLPlaceRepository {
	return &SQLPlaceRepository{DB: db}
}

func (s *SQLPlaceRepository) ListCandidates(
	ctx context.Context,
	filter ports.CandidateFilter,
) (_ []domain.CatalogPlace, err error) {
	defer obs.Time(ctx, "places.sql.ListCandidates")(&err)

	if s.DB == nil {
		return nil, errors.New("sql place repository: db is nil")
	}

	// Unbounded values stand in for a missing price category or limit,
	// keeping the statement text fixed.
	lo, hi := 0, -1
	if filter.PriceCategory != "" {
		lo, hi = filter.PriceCategory.PriceBounds()
	}
	var limit any
	if filter.Limit > 0 {
		limit = filter.Limit
	}

	q := `
	SELECT
		place_id, name, city, category, description, rating,
		price, lat, lon, opening_hour, closing_hour
	FROM places
	WHERE city ILIKE '%' || $1 || '%'
		AND opening_hour <= $2
		AND closing_hour >= $2
		AND price >= $3
		AND ($4 < 0 OR price <= $4)
	ORDER BY rating DESC, name ASC
	LIMIT $5;
	`

	rows, err := s.DB.QueryContext(ctx, q, strings.TrimSpace(filter.City), filter.Hour, lo, hi, limit)
	if err != nil {
		return nil, fmt.Errorf("list candidates: query places table: %w", err)
	}
	defer rows.Close()

	return scanPlaces(rows)
}
