package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/grocerybill/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// ClerkIDKey is the context key for storing the authenticated clerk ID.
	ClerkIDKey contextKey = "clerk_id"
	// ClerkNameKey is the context key for storing the authenticated clerk's name.
	ClerkNameKey contextKey = "clerk_name"
)

// GetClerkID extracts the clerk ID from the context.
// Returns empty string if not found.
func GetClerkID(ctx context.Context) string {
	id, _ := ctx.Value(ClerkIDKey).(string)
	return id
}

// GetClerkName extracts the clerk name from the context.
// Returns empty string if not found.
func GetClerkName(ctx context.Context) string {
	name, _ := ctx.Value(ClerkNameKey).(string)
	return name
}

// WithClerk returns a context carrying the given clerk identity.
func WithClerk(ctx context.Context, id, name string) context.Context {
	ctx = context.WithValue(ctx, ClerkIDKey, id)
	return context.WithValue(ctx, ClerkNameKey, name)
}

// RequireAuth returns an interceptor that validates the bearer token and adds
// the clerk's identity to the request context.
func RequireAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(parts[1])
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			return next(WithClerk(ctx, claims.ClerkID(), claims.ClerkName), req)
		}
	}
}
