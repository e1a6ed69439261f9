package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devhub/devhub/internal/cache"
	"github.com/devhub/devhub/internal/metrics"
	"github.com/devhub/devhub/internal/model"
	"github.com/devhub/devhub/internal/repository"
)

// Service errors.
var (
	ErrAppNotFound  = errors.New("application not found")
	ErrNameRequired = errors.New("application name is required")
)

// AppStore is the persistence capability the catalog service needs.
type AppStore interface {
	CreateApp(ctx context.Context, app *model.App) error
	GetAppByID(ctx context.Context, id int64) (*model.App, error)
	ListApps(ctx context.Context) ([]*model.App, error)
	UpdateApp(ctx context.Context, id int64, patch model.AppPatch) (*model.App, error)
	DeleteApp(ctx context.Context, id int64) error
}

// AppCache caches the catalog list. Optional; a nil cache disables it.
type AppCache interface {
	GetAppList(ctx context.Context) ([]*model.App, error)
	SetAppList(ctx context.Context, apps []*model.App) error
	InvalidateAppList(ctx context.Context) error
}

// AppService handles catalog business logic.
type AppService struct {
	store   AppStore
	cache   AppCache
	metrics metrics.Recorder
}

// NewAppService creates a new AppService. cache may be nil.
func NewAppService(store AppStore, appCache AppCache, recorder metrics.Recorder) *AppService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AppService{
		store:   store,
		cache:   appCache,
		metrics: recorder,
	}
}

// CreateAppInput defines input for creating a catalog entry.
// IsLive defaults to true when omitted.
type CreateAppInput struct {
	Name        string
	Description string
	URL         string
	GithubURL   string
	Category    string
	Icon        string
	IsLive      *bool
}

// CreateApp creates a new catalog entry.
func (s *AppService) CreateApp(ctx context.Context, input CreateAppInput) (*model.App, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}

	isLive := true
	if input.IsLive != nil {
		isLive = *input.IsLive
	}

	app := &model.App{
		Name:        input.Name,
		Description: input.Description,
		URL:         input.URL,
		GithubURL:   input.GithubURL,
		Category:    input.Category,
		Icon:        input.Icon,
		IsLive:      isLive,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.store.CreateApp(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	s.metrics.IncAppCreated()
	s.invalidateListCache(ctx)

	return app, nil
}

// ListApps returns every catalog entry, cache-first when a cache is
// wired. The liveness flag is informational; nothing is filtered out.
func (s *AppService) ListApps(ctx context.Context) ([]*model.App, error) {
	if s.cache != nil {
		apps, err := s.cache.GetAppList(ctx)
		if err == nil {
			s.metrics.IncAppListCacheHit()
			return apps, nil
		}
		if errors.Is(err, cache.ErrCacheMiss) {
			s.metrics.IncAppListCacheMiss()
		}
	}

	apps, err := s.store.ListApps(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	if s.cache != nil {
		// Best effort - a failed cache write must not fail the read.
		_ = s.cache.SetAppList(ctx, apps)
	}

	return apps, nil
}

// UpdateApp applies a partial update to a catalog entry. Fields absent
// from the patch keep their stored value; an empty patch returns the
// entry unchanged without touching updated_at.
func (s *AppService) UpdateApp(ctx context.Context, id int64, patch model.AppPatch) (*model.App, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, ErrNameRequired
	}

	if patch.IsEmpty() {
		app, err := s.store.GetAppByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAppNotFound) {
				return nil, ErrAppNotFound
			}
			return nil, fmt.Errorf("failed to get application: %w", err)
		}
		return app, nil
	}

	app, err := s.store.UpdateApp(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrAppNotFound) {
			return nil, ErrAppNotFound
		}
		return nil, fmt.Errorf("failed to update application: %w", err)
	}

	s.metrics.IncAppUpdated()
	s.invalidateListCache(ctx)

	return app, nil
}

// DeleteApp physically removes a catalog entry.
func (s *AppService) DeleteApp(ctx context.Context, id int64) error {
	if err := s.store.DeleteApp(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAppNotFound) {
			return ErrAppNotFound
		}
		return fmt.Errorf("failed to delete application: %w", err)
	}

	s.metrics.IncAppDeleted()
	s.invalidateListCache(ctx)

	return nil
}

// invalidateListCache drops the cached catalog after a mutation.
// Best effort - eventual consistency within the cache TTL is acceptable.
func (s *AppService) invalidateListCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.InvalidateAppList(ctx)
}
