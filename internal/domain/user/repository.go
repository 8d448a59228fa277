package user

import (
	"context"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	// GetByLogin finds a user whose username or email equals login.
	GetByLogin(ctx context.Context, login string) (User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Create(ctx context.Context, newUser User) (User, error)
	UpdateLastLogin(ctx context.Context, id string) error
}
