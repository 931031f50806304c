package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/reelrecs/recommendation-engine/internal/catalog"
	"github.com/reelrecs/recommendation-engine/internal/domain"
)

// Cache stores ranked recommendation lists in Redis, keyed by user and limit.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func buildKey(userID catalog.UserID, limit int) string {
	return fmt.Sprintf("rec:user:%d:limit:%d", userID, limit)
}

// Get returns the cached recommendations for a user and limit, or
// (nil, false, nil) on a miss.
func (c *Cache) Get(ctx context.Context, userID catalog.UserID, limit int) ([]domain.Recommendation, bool, error) {
	key := buildKey(userID, limit)
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key, err)
	}

	var recs []domain.Recommendation
	if err := json.Unmarshal([]byte(val), &recs); err != nil {
		return nil, false, fmt.Errorf("cache unmarshal %s: %w", key, err)
	}
	return recs, true, nil
}

func (c *Cache) Set(ctx context.Context, userID catalog.UserID, limit int, recs []domain.Recommendation) error {
	key := buildKey(userID, limit)
	val, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("cache marshal %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Ping checks connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
