package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/devhub/devhub/internal/handler/dto"
	"github.com/devhub/devhub/internal/service"
)

// AppHandler handles HTTP requests for catalog operations.
type AppHandler struct {
	svc    *service.AppService
	logger *slog.Logger
}

// NewAppHandler creates a new AppHandler.
func NewAppHandler(svc *service.AppService, logger *slog.Logger) *AppHandler {
	return &AppHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /apps/.
// The full catalog is returned; is_live is informational only.
func (h *AppHandler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.svc.ListApps(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAppListResponse(apps))
}

// Create handles POST /apps/.
func (h *AppHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	input := service.CreateAppInput{
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
		GithubURL:   req.GithubURL,
		Category:    req.Category,
		Icon:        req.Icon,
		IsLive:      req.IsLive,
	}

	app, err := h.svc.CreateApp(r.Context(), input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("application_created",
		"app_id", app.ID,
		"name", app.Name,
	)

	writeJSON(w, http.StatusCreated, dto.ToAppResponse(app))
}

// Update handles PUT /apps/{id}.
// Only fields present in the body are changed; omitted fields keep
// their stored value.
func (h *AppHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateAppRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	app, err := h.svc.UpdateApp(r.Context(), id, req.ToPatch())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("application_updated",
		"app_id", app.ID,
		"name", app.Name,
	)

	writeJSON(w, http.StatusOK, dto.ToAppResponse(app))
}

// Delete handles DELETE /apps/{id}.
func (h *AppHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteApp(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("application_deleted", "app_id", id)

	writeJSON(w, http.StatusOK, dto.DeleteAppResponse{Message: "Application deleted"})
}

// parseID extracts the numeric entry ID from the URL. Any integer is
// accepted; non-positive values simply match no row and surface as 404
// from the lookup. Only non-numeric input is a client syntax error.
func (h *AppHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_ID", "Application ID must be an integer")
		return 0, false
	}
	return id, true
}

// handleServiceError maps service errors to HTTP responses.
func (h *AppHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrAppNotFound):
		h.writeError(w, http.StatusNotFound, "APP_NOT_FOUND", "Application not found")
	case errors.Is(err, service.ErrNameRequired):
		h.writeError(w, http.StatusUnprocessableEntity, "NAME_REQUIRED", "Application name must not be empty")
	default:
		// Anything unexpected here is a storage failure; the request is
		// retryable once the database is reachable again.
		h.logger.Error("storage_error", "error", err)
		h.writeError(w, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "Service temporarily unavailable, retry later")
	}
}

// writeError writes an error response.
func (h *AppHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
