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

// SQLite-backed implementation of the PlaceRepository port.
// Candidates are ranked by rating, then name.
type SqlitePlaceRepository struct{ DB *sql.DB }

func NewSqlitePlaceRepository(db *sql.DB) *SqlitePlaceRepository {
	return &SqlitePlaceRepository{DB: db}
}

func (s *SqlitePlaceRepository) ListCandidates(
	ctx context.Context,
	filter ports.CandidateFilter,
) (_ []domain.CatalogPlace, err error) {
	defer obs.Time(ctx, "places.sqlite.ListCandidates")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite place repository: DB is nil")
	}

	where := []string{
		"LOWER(city) LIKE '%' || LOWER(?) || '%'",
		"opening_hour <= ?",
		"closing_hour >= ?",
	}
	args := []any{strings.TrimSpace(filter.City), filter.Hour, filter.Hour}

	if filter.PriceCategory != "" {
		lo, hi := filter.PriceCategory.PriceBounds()
		where = append(where, "price >= ?")
		args = append(args, lo)
		if hi >= 0 {
			where = append(where, "price <= ?")
			args = append(args, hi)
		}
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = -1 // no limit in SQLite
	}
	args = append(args, limit)

	// Only the fixed clause list is interpolated; all values remain parameterized.
	q := fmt.Sprintf(`
	SELECT
		place_id, name, city, category, description, rating,
		price, lat, lon, opening_hour, closing_hour
	FROM places
	WHERE %s
	ORDER BY rating DESC, name ASC
	LIMIT ?;
	`, strings.Join(where, " AND "))

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list candidates: query places table: %w", err)
	}
	defer rows.Close()

	return scanPlaces(rows)
}

// scanPlaces reads rows in the column order used by the place repositories.
func scanPlaces(rows *sql.Rows) ([]domain.CatalogPlace, error) {
	places := make([]domain.CatalogPlace, 0, 32)
	for rows.Next() {
		var p domain.CatalogPlace
		if err := rows.Scan(
			&p.ID, &p.Name, &p.City, &p.Category, &p.Description, &p.Rating,
			&p.Price, &p.Lat, &p.Lon, &p.OpeningHour, &p.ClosingHour,
		); err != nil {
			return nil, fmt.Errorf("list candidates: scan row: %w", err)
		}
		places = append(places, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list candidates: row iteration: %w", err)
	}

	return places, nil
}
