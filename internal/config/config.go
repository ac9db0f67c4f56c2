package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends accepted by STORE_BACKEND.
const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type Config struct {
	Env         string
	Port        string
	DBPath      string
	DatabaseURL string
	SeedPath    string

	StoreBackend string
	RedisURL     string
	ItineraryTTL time.Duration

	TwoOptMaxPasses int
	DaySolveTimeout time.Duration
	RouteWorkers    int
	MaxTripDays     int
	MaxRoutePlaces  int
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

// GetDuration accepts Go duration strings ("30s", "2m").
func GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

// Load reads the service configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Env:          Get("APP_ENV", "production"),
		Port:         Get("PORT", "8080"),
		DBPath:       Get("DB_PATH", "data/app.db"),
		DatabaseURL:  Get("DATABASE_URL", ""),
		SeedPath:     Get("SEED_PATH", "data/seeds/places.json"),
		StoreBackend: strings.ToLower(Get("STORE_BACKEND", StoreSQLite)),
		RedisURL:     Get("REDIS_URL", "redis://localhost:6379/0"),
	}

	var err error
	if cfg.ItineraryTTL, err = GetDuration("ITINERARY_TTL", 7*24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.TwoOptMaxPasses, err = GetInt("TWO_OPT_MAX_PASSES", 1000); err != nil {
		return Config{}, err
	}
	if cfg.DaySolveTimeout, err = GetDuration("DAY_SOLVE_TIMEOUT", 2*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.RouteWorkers, err = GetInt("ROUTE_WORKERS", 0); err != nil {
		return Config{}, err
	}
	if cfg.MaxTripDays, err = GetInt("MAX_TRIP_DAYS", 14); err != nil {
		return Config{}, err
	}
	if cfg.MaxRoutePlaces, err = GetInt("MAX_ROUTE_PLACES", 50); err != nil {
		return Config{}, err
	}

	switch cfg.StoreBackend {
	case StoreSQLite:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("config: DATABASE_URL is required for store backend %q", cfg.StoreBackend)
		}
	case StoreRedis:
		if cfg.RedisURL == "" {
			return Config{}, fmt.Errorf("config: REDIS_URL is required for store backend %q", cfg.StoreBackend)
		}
	default:
		return Config{}, fmt.Errorf("config: unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	if cfg.MaxTripDays <= 0 {
		return Config{}, fmt.Errorf("config: MAX_TRIP_DAYS must be positive, got %d", cfg.MaxTripDays)
	}

	if cfg.MaxRoutePlaces <= 0 {
		return Config{}, fmt.Errorf("config: MAX_ROUTE_PLACES must be positive, got %d", cfg.MaxRoutePlaces)
	}

	return cfg, nil
}
