package auth

import (
	"strings"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/user"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/password"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/validator"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Username = strings.TrimSpace(r.Username)
	r.Email = validator.NormalizeEmail(r.Email)
	r.Role = strings.TrimSpace(r.Role)

	if validator.IsEmpty(r.Username) {
		errs.Add("username", "Username is required")
	} else if !validator.IsValidUsername(r.Username) {
		errs.Add("username", "Username must be 3-30 characters and contain only letters, numbers and underscores")
	}

	if validator.IsEmpty(r.Email) {
		errs.Add("email", "Email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "Please provide a valid email")
	}

	if r.Password == "" {
		errs.Add("password", "Password is required")
	} else if len(r.Password) < 6 {
		errs.Add("password", "Password must be at least 6 characters")
	} else if len(r.Password) > password.MaxBytes {
		errs.Add("password", "Password must not exceed 72 bytes")
	}

	if r.Role != "" && !user.Role(r.Role).IsValid() {
		errs.Add("role", "Invalid role")
	}

	return errs.Err()
}

type LoginRequest struct {
	// Username accepts either the username or the email address.
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Username = strings.TrimSpace(r.Username)

	if validator.IsEmpty(r.Username) {
		errs.Add("username", "Username or email is required")
	}
	if r.Password == "" {
		errs.Add("password", "Password is required")
	}

	return errs.Err()
}

type AuthResponse struct {
	Token     string            `json:"token"`
	ExpiresAt int64             `json:"expiresAt"`
	User      user.UserResponse `json:"user"`
}
