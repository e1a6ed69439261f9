// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/devhub/devhub/internal/model"
)

// CreateAppRequest represents the request body for creating a catalog entry.
// IsLive defaults to true when omitted.
type CreateAppRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	GithubURL   string `json:"github_url,omitempty"`
	Category    string `json:"category,omitempty"`
	Icon        string `json:"icon,omitempty"`
	IsLive      *bool  `json:"is_live,omitempty"`
}

// UpdateAppRequest represents the request body for partially updating a
// catalog entry. Every field is optional: absent fields keep their
// stored value, while a field present with an empty value clears it.
type UpdateAppRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	URL         *string `json:"url,omitempty"`
	GithubURL   *string `json:"github_url,omitempty"`
	Category    *string `json:"category,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	IsLive      *bool   `json:"is_live,omitempty"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateAppRequest) ToPatch() model.AppPatch {
	return model.AppPatch{
		Name:        r.Name,
		Description: r.Description,
		URL:         r.URL,
		GithubURL:   r.GithubURL,
		Category:    r.Category,
		Icon:        r.Icon,
		IsLive:      r.IsLive,
	}
}

// AppResponse represents a catalog entry in API responses.
// UpdatedAt is null until the entry has been mutated.
type AppResponse struct {
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

// DeleteAppResponse confirms a deletion.
type DeleteAppResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToAppResponse converts an App model to AppResponse DTO.
func ToAppResponse(app *model.App) *AppResponse {
	return &AppResponse{
		ID:          app.ID,
		Name:        app.Name,
		Description: app.Description,
		URL:         app.URL,
		GithubURL:   app.GithubURL,
		Category:    app.Category,
		Icon:        app.Icon,
		IsLive:      app.IsLive,
		CreatedAt:   app.CreatedAt,
		UpdatedAt:   app.UpdatedAt,
	}
}

// ToAppListResponse converts a slice of App models to response DTOs.
func ToAppListResponse(apps []*model.App) []AppResponse {
	responses := make([]AppResponse, len(apps))
	for i, app := range apps {
		responses[i] = *ToAppResponse(app)
	}
	return responses
}
