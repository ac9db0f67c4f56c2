package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"itinerary-route-service/internal/domain"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPlacesQuery := `
	CREATE TABLE IF NOT EXISTS places (
		place_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		city TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		rating REAL NOT NULL DEFAULT 0,
		price INTEGER NOT NULL DEFAULT 0,
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		opening_hour INTEGER NOT NULL DEFAULT 0,
		closing_hour INTEGER NOT NULL DEFAULT 24
	);
	`

	createItinerariesQuery := `
	CREATE TABLE IF NOT EXISTS itineraries (
		itinerary_id TEXT PRIMARY KEY,
		city TEXT NOT NULL,
		document TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_places_city_rating
	ON places(city, rating DESC);
	`

	statements := []string{
		createPlacesQuery,
		createItinerariesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type PlaceSeed struct {
	PlaceID     int     `json:"place_id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Price       int     `json:"price"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	OpeningHour int     `json:"opening_hour"`
	ClosingHour int     `json:"closing_hour"`
}

// readPlaceSeeds parses and validates a catalogue seed file.
func readPlaceSeeds(jsonPath string) ([]PlaceSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", jsonPath, err)
	}

	var data []PlaceSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	rows := make([]PlaceSeed, 0, len(data))
	for i, item := range data {
		if item.PlaceID <= 0 {
			return nil, fmt.Errorf("invalid place_id at index %d: %d", i+1, item.PlaceID)
		}

		item.Name = strings.TrimSpace(item.Name)
		item.City = strings.TrimSpace(item.City)
		if item.Name == "" || item.City == "" {
			return nil, fmt.Errorf("place at index %d: name and city cannot be empty", i+1)
		}

		if err := (domain.Coordinates{Lat: item.Lat, Lon: item.Lon}).Validate(); err != nil {
			return nil, fmt.Errorf("place %q: %w", item.Name, err)
		}

		// No hours given means open all day.
		if item.OpeningHour == 0 && item.ClosingHour == 0 {
			item.ClosingHour = 24
		}
		if item.OpeningHour < 0 || item.ClosingHour > 24 || item.OpeningHour > item.ClosingHour {
			return nil, fmt.Errorf("place %q: invalid opening hours %d-%d", item.Name, item.OpeningHour, item.ClosingHour)
		}
		rows = append(rows, item)
	}

	return rows, nil
}

// Populate the places table from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	rows, err := readPlaceSeeds(jsonPath)
	if err != nil {
		return fmt.Errorf("seed places: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed places: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO places (
		place_id,
		name,
		city,
		category,
		description,
		rating,
		price,
		lat,
		lon,
		opening_hour,
		closing_hour
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed places: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range rows {
		if _, err := stmt.Exec(
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
