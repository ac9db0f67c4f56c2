package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/platform/obs"
	"time"
)

// SQLite backed itinerary store. Itineraries are kept as JSON documents
// in the itineraries table created by repositories.InitSchema.
type SqliteItineraryStore struct {
	DB *sql.DB
}

func NewSqliteItineraryStore(db *sql.DB) *SqliteItineraryStore {
	return &SqliteItineraryStore{DB: db}
}

func (s *SqliteItineraryStore) Save(ctx context.Context, it *domain.Itinerary) (_ string, err error) {
	defer obs.Time(ctx, "itinerary.sqlite.Save")(&err)

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
	INSERT OR REPLACE INTO itineraries (
		itinerary_id,
		city,
		document,
		created_at
	)
	VALUES (?, ?, ?, ?);
	`, it.ID, it.City, string(doc), it.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return "", fmt.Errorf("save itinerary id=%q: %w", it.ID, err)
	}

	return it.ID, nil
}

func (s *SqliteItineraryStore) Get(ctx context.Context, id string) (_ *domain.Itinerary, err error) {
	defer obs.Time(ctx, "itinerary.sqlite.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("itinerary store: db is nil")
	}

	var doc string
	err = s.DB.QueryRowContext(ctx, `
	SELECT document
	FROM itineraries
	WHERE itinerary_id = ?;
	`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get itinerary id=%q: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get itinerary id=%q: %w", id, err)
	}

	return decodeItinerary([]byte(doc))
}
