package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"itinerary-route-service/internal/adapters/repositories"
	"itinerary-route-service/internal/adapters/store"
	"itinerary-route-service/internal/api"
	"itinerary-route-service/internal/config"
	"itinerary-route-service/internal/platform/db"
	"itinerary-route-service/internal/platform/obs"
	"itinerary-route-service/internal/ports"
	"itinerary-route-service/internal/services"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Postgres, Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := obs.NewLogger(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if err := run(cfg); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	places, itineraries, closeAll, err := wireAdapters(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeAll()

	router := api.NewRouter(places, itineraries, api.Options{
		Routes: services.DailyRouteOptions{
			MaxPasses:  cfg.TwoOptMaxPasses,
			Workers:    cfg.RouteWorkers,
			DayTimeout: cfg.DaySolveTimeout,
		},
		MaxTripDays:    cfg.MaxTripDays,
		MaxRoutePlaces: cfg.MaxRoutePlaces,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("store", cfg.StoreBackend),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	zap.L().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// wireAdapters opens the catalogue and itinerary store selected by cfg.
// The catalogue lives in SQLite unless STORE_BACKEND is postgres.
func wireAdapters(ctx context.Context, cfg config.Config) (ports.PlaceRepository, ports.ItineraryStore, func(), error) {
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.StoreBackend == config.StorePostgres {
		pg, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		closers = append(closers, func() { _ = pg.Close() })

		if err := repositories.InitPostgresSchema(ctx, pg); err != nil {
			closeAll()
			return nil, nil, nil, err
		}
		return repositories.NewSQLPlaceRepository(pg), store.NewSQLItineraryStore(pg), closeAll, nil
	}

	sqlite, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, nil, err
	}
	closers = append(closers, func() { _ = sqlite.Close() })

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(sqlite, cfg.SeedPath); err != nil {
		closeAll()
		return nil, nil, nil, err
	}
	places := repositories.NewSqlitePlaceRepository(sqlite)

	if cfg.StoreBackend == config.StoreRedis {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			closeAll()
			return nil, nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		closers = append(closers, func() { _ = client.Close() })

		if err := client.Ping(ctx).Err(); err != nil {
			closeAll()
			return nil, nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		return places, store.NewRedisItineraryStore(client, cfg.ItineraryTTL), closeAll, nil
	}

	return places, store.NewSqliteItineraryStore(sqlite), closeAll, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
