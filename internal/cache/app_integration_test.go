//go:build integration

package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/devhub/devhub/internal/model"
	"github.com/devhub/devhub/internal/testutil"
)

func TestIntegrationAppCache_RoundTrip(t *testing.T) {
	ctx, c := newCacheTestEnv(t)

	now := time.Now().UTC().Truncate(time.Second)
	apps := []*model.App{
		{ID: 1, Name: "Alpha", URL: "https://alpha.cpdemo.ca", IsLive: true, CreatedAt: now},
		{ID: 2, Name: "Beta", Category: "AI Chat", CreatedAt: now},
	}

	if err := c.SetAppList(ctx, apps); err != nil {
		t.Fatalf("SetAppList failed: %v", err)
	}

	cached, err := c.GetAppList(ctx)
	if err != nil {
		t.Fatalf("GetAppList failed: %v", err)
	}

	if len(cached) != 2 {
		t.Fatalf("expected 2 cached apps, got %d", len(cached))
	}
	if cached[0].Name != "Alpha" || cached[1].Name != "Beta" {
		t.Errorf("unexpected names: %q, %q", cached[0].Name, cached[1].Name)
	}
	if !cached[0].IsLive {
		t.Error("cached[0] should be live")
	}
	if cached[1].UpdatedAt != nil {
		t.Errorf("cached[1].UpdatedAt should be nil, got %v", cached[1].UpdatedAt)
	}
}

func TestIntegrationAppCache_MissWhenEmpty(t *testing.T) {
	ctx, c := newCacheTestEnv(t)

	_, err := c.GetAppList(ctx)
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Expected ErrCacheMiss, got: %v", err)
	}
}

func TestIntegrationAppCache_Invalidate(t *testing.T) {
	ctx, c := newCacheTestEnv(t)

	apps := []*model.App{{ID: 1, Name: "Alpha", CreatedAt: time.Now().UTC()}}
	if err := c.SetAppList(ctx, apps); err != nil {
		t.Fatalf("SetAppList failed: %v", err)
	}

	if err := c.InvalidateAppList(ctx); err != nil {
		t.Fatalf("InvalidateAppList failed: %v", err)
	}

	_, err := c.GetAppList(ctx)
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Expected ErrCacheMiss after invalidation, got: %v", err)
	}
}

func TestIntegrationAppCache_CorruptPayloadIsMiss(t *testing.T) {
	ctx, c := newCacheTestEnv(t)

	if err := c.client.Set(ctx, appListKey, "{not-json", DefaultAppListTTL).Err(); err != nil {
		t.Fatalf("seed corrupt payload: %v", err)
	}

	_, err := c.GetAppList(ctx)
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Expected ErrCacheMiss for corrupt payload, got: %v", err)
	}
}

func newCacheTestEnv(t *testing.T) (context.Context, *Cache) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	redisURL := testutil.RequireEnv(t, "REDIS_URL")

	c, err := New(ctx, redisURL)
	if err != nil {
		t.Fatalf("connect redis: %v", err)
	}
	t.Cleanup(func() {
		_ = c.Close()
	})

	if err := testutil.FlushRedis(ctx, c.Client()); err != nil {
		t.Fatalf("flush redis: %v", err)
	}

	return ctx, c
}
