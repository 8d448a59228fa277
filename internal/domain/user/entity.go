package user

import (
	"time"

	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/validator"
)

type Role string

const (
	RoleAdmin         Role = "admin"
	RoleAdministrator Role = "administrator"
	RoleHR            Role = "hr"
	RoleManager       Role = "manager"
	RoleEmployee      Role = "employee" // default for self registration
)

// Roles lists every valid role.
var Roles = []Role{RoleAdmin, RoleAdministrator, RoleHR, RoleManager, RoleEmployee}

func (r Role) IsValid() bool {
	return validator.IsInSlice(r, Roles)
}

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ToResponse strips credentials.
func (u User) ToResponse() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
	}
}
