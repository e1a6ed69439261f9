package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/devhub/devhub/internal/handler/dto"
	"github.com/devhub/devhub/internal/service"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	svc    *service.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:    svc,
		logger: logger,
	}
}

// Login handles POST /auth/login.
// Every authentication failure, whatever the cause, gets the same
// response, so callers cannot enumerate accounts.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		h.writeInvalidCredentials(w)
		return
	}

	token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.logger.Warn("login failed",
				"ip", r.RemoteAddr,
			)
			h.writeInvalidCredentials(w)
			return
		}

		h.logger.Error("login unavailable", "error", err)
		h.writeError(w, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "Service temporarily unavailable, retry later")
		return
	}

	h.logger.Info("login succeeded", "email", req.Email)

	writeJSON(w, http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

func (h *AuthHandler) writeInvalidCredentials(w http.ResponseWriter) {
	h.writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
}

func (h *AuthHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
