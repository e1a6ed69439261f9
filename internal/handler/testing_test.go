package handler

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/devhub/devhub/internal/auth"
	"github.com/devhub/devhub/internal/metrics"
	"github.com/devhub/devhub/internal/middleware"
	"github.com/devhub/devhub/internal/model"
	"github.com/devhub/devhub/internal/repository"
	"github.com/devhub/devhub/internal/service"
)

// memStore is an in-memory stand-in for the repository, good enough for
// the user and catalog capabilities the services and seeder need.
type memStore struct {
	users  map[string]*model.User
	apps   map[int64]*model.App
	nextID int64
}

func newMemStore() *memStore {
	return &memStore{
		users:  make(map[string]*model.User),
		apps:   make(map[int64]*model.App),
		nextID: 1,
	}
}

func (m *memStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (m *memStore) CreateUser(ctx context.Context, user *model.User) error {
	if _, exists := m.users[user.Email]; exists {
		return repository.ErrEmailExists
	}
	user.ID = int64(len(m.users) + 1)
	m.users[user.Email] = user
	return nil
}

func (m *memStore) CreateApp(ctx context.Context, app *model.App) error {
	app.ID = m.nextID
	m.nextID++
	clone := *app
	m.apps[app.ID] = &clone
	return nil
}

func (m *memStore) CreateApps(ctx context.Context, apps []*model.App) error {
	for _, app := range apps {
		if err := m.CreateApp(ctx, app); err != nil {
			return err
		}
	}
	return nil
}

func (m *memStore) GetAppByID(ctx context.Context, id int64) (*model.App, error) {
	app, ok := m.apps[id]
	if !ok {
		return nil, repository.ErrAppNotFound
	}
	clone := *app
	return &clone, nil
}

func (m *memStore) ListApps(ctx context.Context) ([]*model.App, error) {
	apps := make([]*model.App, 0, len(m.apps))
	for _, app := range m.apps {
		clone := *app
		apps = append(apps, &clone)
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].ID < apps[j].ID })
	return apps, nil
}

func (m *memStore) CountApps(ctx context.Context) (int64, error) {
	return int64(len(m.apps)), nil
}

func (m *memStore) UpdateApp(ctx context.Context, id int64, patch model.AppPatch) (*model.App, error) {
	app, ok := m.apps[id]
	if !ok {
		return nil, repository.ErrAppNotFound
	}
	patch.Apply(app)
	now := time.Now().UTC()
	app.UpdatedAt = &now
	clone := *app
	return &clone, nil
}

func (m *memStore) DeleteApp(ctx context.Context, id int64) error {
	if _, ok := m.apps[id]; !ok {
		return repository.ErrAppNotFound
	}
	delete(m.apps, id)
	return nil
}

// addUser seeds an account with a freshly hashed password.
func (m *memStore) addUser(t *testing.T, email, password string) {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	m.users[email] = &model.User{
		ID:             int64(len(m.users) + 1),
		Email:          email,
		HashedPassword: hash,
		IsAdmin:        true,
		CreatedAt:      time.Now().UTC(),
	}
}

// testApp builds a minimal live catalog entry.
func testApp(name string) *model.App {
	return &model.App{
		Name:      name,
		IsLive:    true,
		CreatedAt: time.Now().UTC(),
	}
}

// testEnv bundles a router wired against an in-memory store.
type testEnv struct {
	store  *memStore
	router *chi.Mux
	auth   *service.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := newMemStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	issuer := auth.NewTokenIssuer("test-secret", 30*time.Minute)
	authService := service.NewAuthService(store, issuer, metrics.NewNoop())
	appService := service.NewAppService(store, nil, metrics.NewNoop())

	authHandler := NewAuthHandler(authService, logger)
	appHandler := NewAppHandler(appService, logger)

	requireAuth := middleware.Auth(middleware.AuthConfig{
		Logger: logger,
		Auth:   authService,
	})

	r := chi.NewRouter()
	r.Post("/auth/login", authHandler.Login)
	r.Route("/apps", func(r chi.Router) {
		r.Get("/", appHandler.List)
		r.With(requireAuth).Post("/", appHandler.Create)
		r.With(requireAuth).Put("/{id}", appHandler.Update)
		r.With(requireAuth).Delete("/{id}", appHandler.Delete)
	})

	return &testEnv{
		store:  store,
		router: r,
		auth:   authService,
	}
}
