package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// InitPostgresSchema creates the catalogue and itinerary tables in Postgres.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`
		CREATE TABLE IF NOT EXISTS places (
			place_id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			city TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			price INTEGER NOT NULL DEFAULT 0,
			lat DOUBLE PRECISION NOT NULL,
			lon DOUBLE PRECISION NOT NULL,
			opening_hour INTEGER NOT NULL DEFAULT 0,
			closing_hour INTEGER NOT NULL DEFAULT 24
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS itineraries (
			itinerary_id TEXT PRIMARY KEY,
			city TEXT NOT NULL,
			document JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		`,
		`
		CREATE INDEX IF NOT EXISTS idx_places_city_rating
		ON places(city, rating DESC);
		`,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}

// SeedPostgresFromJSON upserts the catalogue from a JSON file.
func SeedPostgresFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	rows, err := readPlaceSeeds(jsonPath)
	if err != nil {
		return fmt.Errorf("seed places: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed places: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO places (
		place_id, name, city, category, description, rating,
		price, lat, lon, opening_hour, closing_hour
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (place_id) DO UPDATE
	SET name = EXCLUDED.name,
		city = EXCLUDED.city,
		category = EXCLUDED.category,
		description = EXCLUDED.description,
		rating = EXCLUDED.rating,
		price = EXCLUDED.price,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		opening_hour = EXCLUDED.opening_hour,
		closing_hour = EXCLUDED.closing_hour;
	`)
	if err != nil {
		return fmt.Errorf("seed places: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range rows {
		if _, err := stmt.ExecContext(ctx,
			p.PlaceID, p.Name, p.City, p.Category, p.Description,
			p.Rating, p.Price, p.Lat, p.Lon, p.OpeningHour, p.ClosingHour,
		); err != nil {
			return fmt.Errorf("seed places: insert place_id=%d: %w", p.PlaceID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed places: commit tx: %w", err)
	}

	return nil
}
