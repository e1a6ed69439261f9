package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/devhub/devhub/internal/model"
)

// ErrAppNotFound indicates no catalog entry exists with the given ID.
var ErrAppNotFound = errors.New("application not found")

const appColumns = "id, name, description, url, github_url, category, icon, is_live, created_at, updated_at"

// CreateApp inserts a new catalog entry and assigns its generated ID.
func (r *Repository) CreateApp(ctx context.Context, app *model.App) error {
	query := `
		INSERT INTO applications (name, description, url, github_url, category, icon, is_live, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		app.Name,
		app.Description,
		app.URL,
		app.GithubURL,
		app.Category,
		app.Icon,
		app.IsLive,
		app.CreatedAt,
	).Scan(&app.ID)

	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	return nil
}

// CreateApps bulk-inserts catalog entries in a single batch.
// Used by the bootstrap seeder.
func (r *Repository) CreateApps(ctx context.Context, apps []*model.App) error {
	if len(apps) == 0 {
		return nil
	}

	query := `
		INSERT INTO applications (name, description, url, github_url, category, icon, is_live, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	batch := &pgx.Batch{}
	for _, app := range apps {
		batch.Queue(query,
			app.Name,
			app.Description,
			app.URL,
			app.GithubURL,
			app.Category,
			app.Icon,
			app.IsLive,
			app.CreatedAt,
		).QueryRow(func(row pgx.Row) error {
			return row.Scan(&app.ID)
		})
	}

	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to bulk-insert applications: %w", err)
	}

	return nil
}

// GetAppByID retrieves a catalog entry by its ID.
func (r *Repository) GetAppByID(ctx context.Context, id int64) (*model.App, error) {
	query := `SELECT ` + appColumns + ` FROM applications WHERE id = $1`

	app, err := scanApp(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAppNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	return app, nil
}

// ListApps returns every catalog entry ordered by ID.
// No filtering is applied; is_live is informational only.
func (r *Repository) ListApps(ctx context.Context) ([]*model.App, error) {
	query := `SELECT ` + appColumns + ` FROM applications ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	apps := make([]*model.App, 0)
	for rows.Next() {
		app, err := scanApp(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate applications: %w", err)
	}

	return apps, nil
}

// CountApps returns the number of catalog entries.
func (r *Repository) CountApps(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM applications`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return count, nil
}

// UpdateApp applies a partial update to a catalog entry inside a single
// transaction. The row is locked for the read-modify-write cycle, only
// fields present in the patch are changed, and updated_at is refreshed.
// Returns the updated entry, or ErrAppNotFound.
func (r *Repository) UpdateApp(ctx context.Context, id int64, patch model.AppPatch) (*model.App, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `SELECT ` + appColumns + ` FROM applications WHERE id = $1 FOR UPDATE`

	app, err := scanApp(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAppNotFound
		}
		return nil, fmt.Errorf("failed to lock application: %w", err)
	}

	patch.Apply(app)
	now := time.Now().UTC()
	app.UpdatedAt = &now

	_, err = tx.Exec(ctx, `
		UPDATE applications
		SET name = $2, description = $3, url = $4, github_url = $5,
		    category = $6, icon = $7, is_live = $8, updated_at = $9
		WHERE id = $1
	`,
		app.ID,
		app.Name,
		app.Description,
		app.URL,
		app.GithubURL,
		app.Category,
		app.Icon,
		app.IsLive,
		app.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit update: %w", err)
	}

	return app, nil
}

// DeleteApp physically removes a catalog entry.
// Returns ErrAppNotFound if no row was deleted.
func (r *Repository) DeleteApp(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrAppNotFound
	}

	return nil
}

// scanApp reads one application row.
func scanApp(row pgx.Row) (*model.App, error) {
	var app model.App
	err := row.Scan(
		&app.ID,
		&app.Name,
		&app.Description,
		&app.URL,
		&app.GithubURL,
		&app.Category,
		&app.Icon,
		&app.IsLive,
		&app.CreatedAt,
		&app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// isUniqueViolation checks if the error is a PostgreSQL unique
// constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
