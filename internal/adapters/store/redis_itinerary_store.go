package store

import (
	"context"
	"errors"
	"fmt"
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/platform/obs"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "itinerary:"

// RedisItineraryStore keeps itinerary documents as Redis strings that expire
// after TTL. A zero TTL keeps them forever.
type RedisItineraryStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisItineraryStore(client *redis.Client, ttl time.Duration) *RedisItineraryStore {
	return &RedisItineraryStore{Client: client, TTL: ttl}
}

func (s *RedisItineraryStore) Save(ctx context.Context, it *domain.Itinerary) (_ string, err error) {
	defer obs.Time(ctx, "itinerary.redis.Save")(&err)

	if s.Client == nil {
		return "", errors.New("itinerary store: redis client is nil")
	}
	if it == nil {
		return "", errors.New("save itinerary: itinerary is nil")
	}

	ensureID(it)
	doc, err := encodeItinerary(it)
	if err != nil {
		return "", fmt.Errorf("save itinerary: %w", err)
	}

	if err := s.Client.Set(ctx, redisKeyPrefix+it.ID, doc, s.TTL).Err(); err != nil {
		return "", fmt.Errorf("save itinerary id=%q: %w", it.ID, err)
	}

	return it.ID, nil
}

func (s *RedisItineraryStore) Get(ctx context.Context, id string) (_ *domain.Itinerary, err error) {
	defer obs.Time(ctx, "itinerary.redis.Get")(&err)

	if s.Client == nil {
		return nil, errors.New("itinerary store: redis client is nil")
	}

	doc, err := s.Client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("get itinerary id=%q: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get itinerary id=%q: %w", id, err)
	}

	return decodeItinerary(doc)
}
