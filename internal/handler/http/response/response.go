package response

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/validator"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
	Field   string      `json:"field,omitempty"`
	Path    string      `json:"path,omitempty"`
	Error   string      `json:"error,omitempty"`
}

var development atomic.Bool

// SetDevelopment toggles exposure of internal error details in 500 bodies.
func SetDevelopment(enabled bool) {
	development.Store(enabled)
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(ErrorResponse{Message: "Failed to encode response"})
	}
}

// JSON writes payload as-is with status.
func JSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	writeJSON(w, statusCode, payload)
}

// Success responses
func Success(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

// SuccessWithMessage writes {"message": message, key: data}.
func SuccessWithMessage(w http.ResponseWriter, message string, key string, data interface{}) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": message,
		key:       data,
	})
}

func Created(w http.ResponseWriter, message string, key string, data interface{}) {
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": message,
		key:       data,
	})
}

// Error responses
func BadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: message})
}

func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Message: "Validation failed",
		Errors:  []validator.ValidationError(errs),
	})
}

// StorageValidationError reports constraint violations raised by the database.
func StorageValidationError(w http.ResponseWriter, messages []string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Message: "Validation Error",
		Errors:  messages,
	})
}

func DuplicateField(w http.ResponseWriter, field string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Message: "Duplicate field value",
		Field:   field,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, ErrorResponse{Message: message})
}

func Forbidden(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusForbidden, ErrorResponse{Message: message})
}

func NotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{Message: message})
}

func RouteNotFound(w http.ResponseWriter, path string) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{Message: "Route not found", Path: path})
}

func MethodNotAllowed(w http.ResponseWriter, path string) {
	writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Message: "Method not allowed", Path: path})
}

func TooManyRequests(w http.ResponseWriter) {
	writeJSON(w, http.StatusTooManyRequests, ErrorResponse{
		Message: "Too many requests from this IP, please try again later.",
	})
}

// InternalServerError hides err unless development mode is on.
func InternalServerError(w http.ResponseWriter, err error) {
	detail := "Something went wrong"
	if development.Load() && err != nil {
		detail = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Message: "Internal server error",
		Error:   detail,
	})
}
