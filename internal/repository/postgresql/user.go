package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/user"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, username, email, password_hash, role, is_active, last_login, created_at, updated_at`

var userConstraintFields = map[string]string{
	"users_username_key": "username",
	"users_email_key":    "email",
	"users_role_check":   "role",
}

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func scanUser(row pgx.Row) (user.User, error) {
	var (
		found user.User
		role  string
	)
	err := row.Scan(
		&found.ID,
		&found.Username,
		&found.Email,
		&found.PasswordHash,
		&role,
		&found.IsActive,
		&found.LastLogin,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if isNotFound(err) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	found.Role = user.Role(role)
	return found, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	found, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return found, err
}

// GetByLogin implements user.UserRepository.
func (r *userRepositoryImpl) GetByLogin(ctx context.Context, login string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1 OR email = LOWER($1)
		ORDER BY (username = $1) DESC
		LIMIT 1
	`

	found, err := scanUser(q.QueryRow(ctx, query, login))
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, fmt.Errorf("failed to get user by login: %w", err)
	}
	return found, err
}

// ExistsByUsernameOrEmail implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 OR email = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, username, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (username, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	created, err := scanUser(q.QueryRow(ctx, query,
		newUser.Username,
		newUser.Email,
		newUser.PasswordHash,
		string(newUser.Role),
		newUser.IsActive,
	))
	if err != nil {
		return user.User{}, database.TranslateError(err, userConstraintFields)
	}
	return created, nil
}

// UpdateLastLogin implements user.UserRepository.
func (r *userRepositoryImpl) UpdateLastLogin(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET last_login = NOW(), updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
