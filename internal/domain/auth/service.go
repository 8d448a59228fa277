package auth

import (
	"context"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/user"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	Me(ctx context.Context, userID string) (user.UserResponse, error)
	// Authorizer is the access policy applied to protected routes.
	Authorizer
}

// Authorizer resolves a bearer token into an Identity. An empty allowedRoles
// admits any active user.
type Authorizer interface {
	Authorize(ctx context.Context, token string, allowedRoles ...user.Role) (Identity, error)
}
