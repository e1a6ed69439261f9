// Package seed bootstraps the database with the admin principal and a
// default catalog. Both steps are idempotent against persisted data, so
// running them on every process start is safe.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/devhub/devhub/internal/auth"
	"github.com/devhub/devhub/internal/model"
	"github.com/devhub/devhub/internal/repository"
)

// UserStore is the persistence capability needed to seed the admin.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
}

// AppStore is the persistence capability needed to seed the catalog.
type AppStore interface {
	CountApps(ctx context.Context) (int64, error)
	CreateApps(ctx context.Context, apps []*model.App) error
}

// Seeder performs the one-time bootstrap of default data.
type Seeder struct {
	users  UserStore
	apps   AppStore
	logger *slog.Logger

	adminEmail    string
	adminPassword string
	domain        string
}

// New creates a Seeder.
func New(users UserStore, apps AppStore, logger *slog.Logger, adminEmail, adminPassword, domain string) *Seeder {
	return &Seeder{
		users:         users,
		apps:          apps,
		logger:        logger,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		domain:        domain,
	}
}

// Run seeds the admin principal and the default catalog. Each step
// checks persisted state first, so reruns never create duplicates.
// Callers treat a returned error as non-fatal: bootstrap failure must
// not prevent the service from starting.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedAdmin(ctx); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := s.seedApps(ctx); err != nil {
		return fmt.Errorf("seed applications: %w", err)
	}
	return nil
}

// seedAdmin inserts the administrative principal if no user with the
// configured email exists.
func (s *Seeder) seedAdmin(ctx context.Context) error {
	_, err := s.users.GetUserByEmail(ctx, s.adminEmail)
	if err == nil {
		s.logger.Info("admin user already exists", "email", s.adminEmail)
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("look up admin user: %w", err)
	}

	hash, err := auth.HashPassword(s.adminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	user := &model.User{
		Email:          s.adminEmail,
		HashedPassword: hash,
		IsAdmin:        true,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		// Another instance won the race; the unique email index makes
		// this equivalent to "already seeded".
		if errors.Is(err, repository.ErrEmailExists) {
			s.logger.Info("admin user seeded concurrently", "email", s.adminEmail)
			return nil
		}
		return fmt.Errorf("create admin user: %w", err)
	}

	s.logger.Info("seeded admin user", "email", s.adminEmail)
	return nil
}

// seedApps bulk-inserts the default catalog when no entries exist at
// all. The check is "any row exists", so a catalog with user-created
// entries is never re-seeded.
func (s *Seeder) seedApps(ctx context.Context) error {
	count, err := s.apps.CountApps(ctx)
	if err != nil {
		return fmt.Errorf("count applications: %w", err)
	}
	if count > 0 {
		s.logger.Info("applications already exist, skipping seed", "count", count)
		return nil
	}

	apps := DefaultApps(s.domain, time.Now().UTC())
	if err := s.apps.CreateApps(ctx, apps); err != nil {
		return fmt.Errorf("insert default applications: %w", err)
	}

	s.logger.Info("seeded default applications", "count", len(apps))
	return nil
}

// DefaultApps returns the default catalog for a deployment domain.
func DefaultApps(domain string, now time.Time) []*model.App {
	entries := []struct {
		name        string
		description string
		subdomain   string
		githubURL   string
		category    string
		icon        string
	}{
		{
			name:        "Lakera Guard Demo",
			description: "AI security guardrails",
			subdomain:   "lakera",
			githubURL:   "https://github.com/alshawwaf/Lakera-Demo",
			category:    "AI Security",
			icon:        "security",
		},
		{
			name:        "Training Portal",
			description: "AI development training platform",
			subdomain:   "training",
			githubURL:   "https://github.com/alshawwaf/training-portal",
			category:    "Training",
			icon:        "training",
		},
		{
			name:        "Docs to Swagger",
			description: "Convert API docs to OpenAPI",
			subdomain:   "swagger",
			githubURL:   "https://github.com/alshawwaf/cp-docs-to-swagger",
			category:    "Developer Tools",
			icon:        "swagger",
		},
		{
			name:        "n8n Workflow",
			description: "AI workflow automation platform",
			subdomain:   "workflow",
			githubURL:   "https://github.com/alshawwaf/cp-agentic-mcp-playground",
			category:    "Automation",
			icon:        "n8n",
		},
		{
			name:        "Open WebUI",
			description: "Chat interface for AI models",
			subdomain:   "chat",
			githubURL:   "https://github.com/alshawwaf/cp-agentic-mcp-playground",
			category:    "AI Chat",
			icon:        "chat",
		},
		{
			name:        "Flowise",
			description: "Visual LLM flow builder",
			subdomain:   "flowise",
			githubURL:   "https://github.com/alshawwaf/cp-agentic-mcp-playground",
			category:    "AI Development",
			icon:        "flowise",
		},
		{
			name:        "Langflow",
			description: "Visual AI pipeline designer",
			subdomain:   "langflow",
			githubURL:   "https://github.com/alshawwaf/cp-agentic-mcp-playground",
			category:    "AI Development",
			icon:        "langflow",
		},
	}

	apps := make([]*model.App, 0, len(entries))
	for _, e := range entries {
		apps = append(apps, &model.App{
			Name:        e.name,
			Description: e.description,
			URL:         fmt.Sprintf("https://%s.%s", e.subdomain, domain),
			GithubURL:   e.githubURL,
			Category:    e.category,
			Icon:        e.icon,
			IsLive:      true,
			CreatedAt:   now,
		})
	}

	return apps
}
