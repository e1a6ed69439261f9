package model

import "time"

// App represents one application entry in the catalog.
// UpdatedAt is nil until the entry is mutated for the first time.
type App struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	GithubURL   string     `json:"github_url"`
	Category    string     `json:"category"`
	Icon        string     `json:"icon"`
	IsLive      bool       `json:"is_live"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// AppPatch describes a partial update to an App. A nil field means
// "leave the stored value untouched"; a non-nil pointer to the zero
// value means "explicitly clear". Name may never be cleared to empty.
type AppPatch struct {
	Name        *string
	Description *string
	URL         *string
	GithubURL   *string
	Category    *string
	Icon        *string
	IsLive      *bool
}

// IsEmpty returns true if the patch carries no fields at all.
func (p AppPatch) IsEmpty() bool {
	return p.Name == nil &&
		p.Description == nil &&
		p.URL == nil &&
		p.GithubURL == nil &&
		p.Category == nil &&
		p.Icon == nil &&
		p.IsLive == nil
}

// Apply copies every present patch field onto the app.
func (p AppPatch) Apply(app *App) {
	if p.Name != nil {
		app.Name = *p.Name
	}
	if p.Description != nil {
		app.Description = *p.Description
	}
	if p.URL != nil {
		app.URL = *p.URL
	}
	if p.GithubURL != nil {
		app.GithubURL = *p.GithubURL
	}
	if p.Category != nil {
		app.Category = *p.Category
	}
	if p.Icon != nil {
		app.Icon = *p.Icon
	}
	if p.IsLive != nil {
		app.IsLive = *p.IsLive
	}
}
