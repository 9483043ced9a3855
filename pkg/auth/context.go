package auth

import (
	"context"

	"todo-backend/pkg/errors"
)

// UserContext carries the authenticated caller's identity through a request.
type UserContext struct {
	UserID string
	Email  string
	Roles  []string
}

// contextKey is unexported so no other package can collide with our keys.
type contextKey string

const userContextKey contextKey = "user_context"

// SetUserInContext adds the user context to a request context
func SetUserInContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUserFromContext extracts the user context set by the auth middleware.
// Returns an Unauthorized error when no user is present.
func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	if !ok || user == nil || user.UserID == "" {
		return nil, errors.NewUnauthorizedError("no authenticated user in context")
	}
	return user, nil
}
