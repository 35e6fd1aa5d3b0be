package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/parths301/aib-hub/internal/logger"
)

const (
	cityCacheKey = "aibhub:cities"
	cityCacheTTL = 5 * time.Minute
)

// CityCache caches the distinct-city list in redis. A nil client
// disables caching and every lookup falls through to the database.
type CityCache struct {
	client *redis.Client
}

func NewCityCache(client *redis.Client) *CityCache {
	return &CityCache{client: client}
}

// Get returns the cached city list and whether it was present.
func (c *CityCache) Get(ctx context.Context) ([]string, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, cityCacheKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.CtxWarn(ctx, "city cache read failed", "error", err)
		}
		return nil, false
	}

	var cities []string
	if err := json.Unmarshal([]byte(raw), &cities); err != nil {
		logger.CtxWarn(ctx, "city cache payload corrupt", "error", err)
		return nil, false
	}
	return cities, true
}

// Set stores the city list. Failures are logged and swallowed, the
// cache is never load-bearing.
func (c *CityCache) Set(ctx context.Context, cities []string) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(cities)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cityCacheKey, raw, cityCacheTTL).Err(); err != nil {
		logger.CtxWarn(ctx, "city cache write failed", "error", err)
	}
}

// Invalidate drops the cached list after a write that may change it.
func (c *CityCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, cityCacheKey).Err(); err != nil {
		logger.CtxWarn(ctx, "city cache invalidation failed", "error", err)
	}
}
