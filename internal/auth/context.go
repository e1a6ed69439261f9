package auth

import "context"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// principalKey is the context key for the authenticated principal email.
const principalKey contextKey = "principal_email"

// ContextWithPrincipal adds the authenticated principal's email to the context.
func ContextWithPrincipal(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, principalKey, email)
}

// PrincipalFromContext retrieves the authenticated principal's email.
// Returns empty string if not authenticated.
func PrincipalFromContext(ctx context.Context) string {
	email, ok := ctx.Value(principalKey).(string)
	if !ok {
		return ""
	}
	return email
}
