// Package cache provides the optional Redis-backed catalog cache.
// The service runs without it; a nil cache simply means every list
// request reads straight from Postgres.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps a Redis client for catalog caching.
type Cache struct {
	client *redis.Client
}

// New connects to Redis and verifies the connection. The pool is kept
// small: the only cached object is the serialized catalog list, so a
// handful of connections covers the read traffic.
func New(ctx context.Context, redisURL string) (*Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.PoolSize = 10
	opt.MinIdleConns = 2
	opt.PoolTimeout = 4 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return &Cache{client: client}, nil
}

// Ping checks Redis connectivity for the readiness probe.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}

// Client exposes the underlying client so test setup can flush the
// database between cases. Production code goes through the typed
// methods on Cache.
func (c *Cache) Client() *redis.Client {
	return c.client
}
