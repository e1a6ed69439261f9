package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devhub/devhub/internal/model"
)

const (
	// appListKey stores the serialized full catalog.
	appListKey = "apps:all"

	// DefaultAppListTTL bounds staleness when an invalidation is missed.
	DefaultAppListTTL = 5 * time.Minute
)

// ErrCacheMiss indicates the requested key is not cached.
var ErrCacheMiss = errors.New("cache miss")

// GetAppList retrieves the cached catalog.
// Returns ErrCacheMiss if not cached.
func (c *Cache) GetAppList(ctx context.Context) ([]*model.App, error) {
	data, err := c.client.Get(ctx, appListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var apps []*model.App
	if err := json.Unmarshal(data, &apps); err != nil {
		// Treat corrupt payloads as a miss; the caller repopulates.
		return nil, ErrCacheMiss
	}

	return apps, nil
}

// SetAppList caches the full catalog with the default TTL.
func (c *Cache) SetAppList(ctx context.Context, apps []*model.App) error {
	data, err := json.Marshal(apps)
	if err != nil {
		return fmt.Errorf("marshal app list: %w", err)
	}

	if err := c.client.Set(ctx, appListKey, data, DefaultAppListTTL).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

// InvalidateAppList drops the cached catalog after a mutation.
func (c *Cache) InvalidateAppList(ctx context.Context) error {
	if err := c.client.Del(ctx, appListKey).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}
