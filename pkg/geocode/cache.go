package geocode

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "geocode:"

// RedisCache caches forward-geocode results in Redis. Addresses rarely move,
// so entries carry a long TTL. Cache misses and Redis errors both read as
// "not cached".
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &RedisCache{client: client, ttl: ttl}
}

func cacheKey(address string) string {
	return cacheKeyPrefix + strings.ToLower(strings.TrimSpace(address))
}

func (c *RedisCache) Get(ctx context.Context, address string) (*Result, bool) {
	raw, err := c.client.Get(ctx, cacheKey(address)).Bytes()
	if err != nil {
		return nil, false
	}
	var r Result
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, false
	}
	return &r, true
}

func (c *RedisCache) Set(ctx context.Context, address string, r *Result) {
	raw, err := json.Marshal(r)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, cacheKey(address), raw, c.ttl).Err()
}
