package auth

import "context"

// Principal is the authenticated actor derived from a verified token.
type Principal struct {
	UserID string
	Role   Role
}

type contextKey string

const principalKey contextKey = "principal"

// WithPrincipal attaches the principal to ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext returns the principal attached by the auth middleware.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}
