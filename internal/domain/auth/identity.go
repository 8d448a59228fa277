package auth

import (
	"context"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/user"
)

// Identity is the authenticated user resolved from a session token.
type Identity struct {
	UserID   string
	Username string
	Email    string
	Role     user.Role
}

func NewIdentity(u user.User) Identity {
	return Identity{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

type identityKey struct{}

// WithIdentity stores id in ctx.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity stored by the auth middleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
