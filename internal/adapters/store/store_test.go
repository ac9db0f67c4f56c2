package store

import (
	"context"
	"itinerary-route-service/internal/adapters/repositories"
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/platform/db"
	"itinerary-route-service/internal/ports"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ ports.ItineraryStore = (*SqliteItineraryStore)(nil)
	_ ports.ItineraryStore = (*SQLItineraryStore)(nil)
	_ ports.ItineraryStore = (*RedisItineraryStore)(nil)
)

func sampleItinerary() *domain.Itinerary {
	tugu := domain.CatalogPlace{ID: 1, Name: "Tugu Pahlawan", City: "Surabaya", Category: "Budaya", Rating: 4.6, Price: 5000, Lat: -7.2458, Lon: 112.7378, OpeningHour: 8, ClosingHour: 17}
	bungkul := domain.CatalogPlace{ID: 3, Name: "Taman Bungkul", City: "Surabaya", Category: "Taman", Rating: 4.5, Lat: -7.2911, Lon: 112.7398, ClosingHour: 24}

	return &domain.Itinerary{
		City:          "Surabaya",
		PriceCategory: domain.PriceCheap,
		StartDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Days: []domain.DayPlan{{
			Day: "Day 1",
			Places: map[domain.Slot]domain.CatalogPlace{
				domain.SlotMorning:   tugu,
				domain.SlotAfternoon: bungkul,
			},
		}},
		Routes: []domain.DayRoute{{
			Day: "Day 1",
			Solution: &domain.RouteSolution{
				Route:           []string{"Tugu Pahlawan", "Taman Bungkul"},
				Tour:            []int{0, 1},
				TotalMeters:     10040,
				TotalDistanceKm: 10.04,
				Converged:       true,
			},
		}},
		CreatedAt: time.Date(2026, 2, 20, 9, 30, 0, 0, time.UTC),
	}
}

func exerciseStore(t *testing.T, s ports.ItineraryStore) {
	t.Helper()
	ctx := context.Background()

	it := sampleItinerary()
	id, err := s.Save(ctx, it)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, id, it.ID)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, it, got)

	// Saving again under the same id replaces the document.
	it.City = "Kota Surabaya"
	_, err = s.Save(ctx, it)
	require.NoError(t, err)
	got, err = s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Kota Surabaya", got.City)

	_, err = s.Get(ctx, "does-not-exist")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSqliteItineraryStore(t *testing.T) {
	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, repositories.InitSchema(conn))

	exerciseStore(t, NewSqliteItineraryStore(conn))
}

func newMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisItineraryStore(t *testing.T) {
	_, client := newMiniredis(t)
	exerciseStore(t, NewRedisItineraryStore(client, time.Hour))
}

func TestRedisItineraryStoreExpires(t *testing.T) {
	mr, client := newMiniredis(t)
	s := NewRedisItineraryStore(client, time.Minute)
	ctx := context.Background()

	id, err := s.Save(ctx, sampleItinerary())
	require.NoError(t, err)
	assert.True(t, mr.Exists(redisKeyPrefix+id))
	assert.Equal(t, time.Minute, mr.TTL(redisKeyPrefix+id))

	mr.FastForward(2 * time.Minute)

	_, err = s.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRedisItineraryStoreUnavailable(t *testing.T) {
	mr, client := newMiniredis(t)
	mr.Close()

	_, err := NewRedisItineraryStore(client, 0).Save(context.Background(), sampleItinerary())
	assert.Error(t, err)
}

func TestDocumentSkipsMissingSolutions(t *testing.T) {
	it := sampleItinerary()
	it.ID = "fixed"
	it.Routes = append(it.Routes, domain.DayRoute{Day: "Day 2"})

	b, err := encodeItinerary(it)
	require.NoError(t, err)

	got, err := decodeItinerary(b)
	require.NoError(t, err)
	assert.Len(t, got.Routes, 1)
	assert.Equal(t, "fixed", got.ID)
}
