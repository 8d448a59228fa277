package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/auth"
	"github.com/cmlabs-hris/hr-admin-api/internal/domain/user"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/database"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/jwt"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/password"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	hasher *password.Hasher
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service, hasher *password.Hasher) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
		hasher:         hasher,
	}
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	role := user.RoleEmployee
	if req.Role != "" {
		role = user.Role(req.Role)
	}

	exists, err := a.UserRepository.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return auth.AuthResponse{}, user.ErrUserExists
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.UserRepository.Create(ctx, user.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		// Lost the race against a concurrent registration.
		var dup *database.DuplicateKeyError
		if errors.As(err, &dup) {
			return auth.AuthResponse{}, user.ErrUserExists
		}
		return auth.AuthResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return a.issue(created)
}

// Login implements auth.AuthService. The username field matches either the
// username or the email address.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	found, err := a.UserRepository.GetByLogin(ctx, req.Username)
	if err != nil {
		// Unknown logins share the inactive-account message.
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AuthResponse{}, auth.ErrAccountInactive
		}
		return auth.AuthResponse{}, fmt.Errorf("failed to get user by login: %w", err)
	}
	if !found.IsActive {
		return auth.AuthResponse{}, auth.ErrAccountInactive
	}

	if !a.hasher.Verify(req.Password, found.PasswordHash) {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	resp, err := a.issue(found)
	if err != nil {
		return auth.AuthResponse{}, err
	}

	if err := a.UserRepository.UpdateLastLogin(ctx, found.ID); err != nil {
		slog.Warn("failed to record last login", "user_id", found.ID, "error", err)
	}

	return resp, nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, userID string) (user.UserResponse, error) {
	found, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, err
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	return found.ToResponse(), nil
}

// Authorize implements auth.Authorizer.
func (a *AuthServiceImpl) Authorize(ctx context.Context, token string, allowedRoles ...user.Role) (auth.Identity, error) {
	if token == "" {
		return auth.Identity{}, auth.ErrMissingToken
	}

	userID, err := a.Service.VerifyToken(token)
	if err != nil {
		return auth.Identity{}, err
	}

	found, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.Identity{}, auth.ErrInvalidToken
		}
		return auth.Identity{}, fmt.Errorf("failed to resolve token owner: %w", err)
	}
	if !found.IsActive {
		return auth.Identity{}, auth.ErrInvalidToken
	}

	if !user.HasRole(found.Role, allowedRoles...) {
		return auth.Identity{}, auth.ErrForbidden
	}

	return auth.NewIdentity(found), nil
}

func (a *AuthServiceImpl) issue(u user.User) (auth.AuthResponse, error) {
	token, expiresAt, err := a.Service.IssueToken(u.ID)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	return auth.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      u.ToResponse(),
	}, nil
}
