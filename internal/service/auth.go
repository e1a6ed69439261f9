// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/devhub/devhub/internal/auth"
	"github.com/devhub/devhub/internal/metrics"
	"github.com/devhub/devhub/internal/model"
	"github.com/devhub/devhub/internal/repository"
)

// ErrInvalidCredentials is the uniform login failure. Callers must not
// be able to tell an unknown email from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserStore is the persistence capability the auth service needs.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthService authenticates the administrative principal and issues
// bearer tokens for it.
type AuthService struct {
	users   UserStore
	tokens  *auth.TokenIssuer
	metrics metrics.Recorder

	// dummyHash is verified against when the email is unknown, so the
	// failure path costs a hash either way.
	dummyHash string
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, tokens *auth.TokenIssuer, recorder metrics.Recorder) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	dummyHash, err := auth.HashPassword("devhub-dummy-credential")
	if err != nil {
		dummyHash = ""
	}

	return &AuthService{
		users:     users,
		tokens:    tokens,
		metrics:   recorder,
		dummyHash: dummyHash,
	}
}

// Login verifies the submitted credentials and returns a signed bearer
// token. Unknown email, wrong password, and a malformed stored hash all
// collapse to ErrInvalidCredentials; storage outages are returned
// wrapped so handlers can surface a retryable failure instead.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			if s.dummyHash != "" {
				_, _ = auth.VerifyPassword(password, s.dummyHash)
			}
			s.metrics.IncLoginFailure()
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	ok, err := auth.VerifyPassword(password, user.HashedPassword)
	if err != nil || !ok {
		s.metrics.IncLoginFailure()
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.metrics.IncLoginSuccess()

	return token, nil
}

// Authenticate validates a bearer token and returns the principal email
// it is bound to. Token errors (auth.ErrTokenExpired,
// auth.ErrTokenMalformed) pass through; a token whose subject no longer
// exists fails with ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	email, err := s.tokens.Validate(token)
	if err != nil {
		return "", err
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up principal: %w", err)
	}

	return email, nil
}
