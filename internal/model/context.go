package model

import "context"

type contextKey string

const actingUserKey contextKey = "acting_user"

// DefaultActingUser is recorded when the request carries no identity.
const DefaultActingUser = "api_user"

// WithActingUser stores the acting user on the context.
func WithActingUser(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, actingUserKey, user)
}

// ActingUserFromContext returns the acting user, falling back to
// DefaultActingUser when none was resolved.
func ActingUserFromContext(ctx context.Context) string {
	if user, ok := ctx.Value(actingUserKey).(string); ok && user != "" {
		return user
	}
	return DefaultActingUser
}
