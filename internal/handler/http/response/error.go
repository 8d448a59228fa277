package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/application"
	"github.com/cmlabs-hris/hr-admin-api/internal/domain/auth"
	"github.com/cmlabs-hris/hr-admin-api/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-api/internal/domain/user"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/database"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs)
		return
	}

	// Storage integrity errors
	var dupErr *database.DuplicateKeyError
	if errors.As(err, &dupErr) {
		DuplicateField(w, dupErr.Field)
		return
	}
	var constraintErr *database.ConstraintError
	if errors.As(err, &constraintErr) {
		StorageValidationError(w, constraintErr.Messages)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrMissingToken):
		Unauthorized(w, "No token, authorization denied")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Token is not valid")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token has expired")
	case errors.Is(err, auth.ErrAccountInactive):
		Unauthorized(w, "Invalid credentials or account inactive")
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, "Access denied. Insufficient permissions.")

	// User domain errors
	case errors.Is(err, user.ErrUserExists):
		BadRequest(w, "User with this email or username already exists")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		BadRequest(w, "Employee with this email already exists")

	// Application domain errors
	case errors.Is(err, application.ErrApplicationNotFound):
		NotFound(w, "Application not found")
	case errors.Is(err, application.ErrReviewerRequired):
		Unauthorized(w, "No token, authorization denied")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, err)
	}
}
