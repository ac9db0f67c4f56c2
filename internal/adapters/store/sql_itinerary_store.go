package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/platform/obs"
)

// SQLItineraryStore keeps itinerary documents in a Postgres JSONB column.
type SQLItineraryStore struct {
	DB *sql.DB
}

func NewSQLItineraryStore(db *sql.DB) *SQLItineraryStore {
	return &SQLItineraryStore{DB: db}
}

func (s *SQLItineraryStore) Save(ctx context.Context, it *domain.Itinerary) (_ string, err error) {
	defer obs.Time(ctx, "itinerary.sql.Save")(&err)

	if s.DB == nil {
		return "", errors.New("itinerary store: db is nil")
	}
	if it == nil {
		return "", errors.New("save itinerary: itinerary is nil")
	}

	ensureID(it)
	doc, err := encodeItinerary(it)
	if err != nil {
		return "", fmt.Errorf("save itinerary: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO itineraries (itinerary_id, city, document, created_at)
	VALUES ($1, $2, $3::jsonb, $4)
	ON CONFLICT (itinerary_id) DO UPDATE
	SET city = EXCLUDED.city,
		document = EXCLUDED.document,
		created_at = EXCLUDED.created_at;
	`, it.ID, it.City, string(doc), it.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("save itinerary id=%q: %w", it.ID, err)
	}

	return it.ID, nil
}

func (s *SQLItineraryStore) Get(ctx context.Context, id string) (_ *domain.Itinerary, err error) {
	defer obs.Time(ctx, "itinerary.sql.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("itinerary store: db is nil")
	}

	var doc []byte
	err = s.DB.QueryRowContext(ctx, `
	SELECT document
	FROM itineraries
	WHERE itinerary_id = $1;
	`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get itinerary id=%q: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get itinerary id=%q: %w", id, err)
	}

	return decodeItinerary(doc)
}
