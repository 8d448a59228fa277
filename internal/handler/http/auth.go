package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/auth"
	"github.com/cmlabs-hris/hr-admin-api/internal/domain/user"
	"github.com/cmlabs-hris/hr-admin-api/internal/handler/http/response"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
	}
}

type authPayload struct {
	Message   string            `json:"message"`
	Token     string            `json:"token"`
	ExpiresAt int64             `json:"expiresAt"`
	User      user.UserResponse `json:"user"`
}

// Register implements AuthHandler.
func (a *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	result, err := a.authService.Register(r.Context(), registerReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("User registered", "user_id", result.User.ID, "role", result.User.Role)
	writeAuthPayload(w, http.StatusCreated, "User registered successfully", result)
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	result, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeAuthPayload(w, http.StatusOK, "Login successful", result)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrMissingToken)
		return
	}

	me, err := a.authService.Me(r.Context(), identity.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"user": me})
}

func writeAuthPayload(w http.ResponseWriter, status int, message string, result auth.AuthResponse) {
	response.JSON(w, status, authPayload{
		Message:   message,
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      result.User,
	})
}
