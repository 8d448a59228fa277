package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("invalid credentials or account inactive")
	ErrMissingToken       = errors.New("no token, authorization denied")
	ErrInvalidToken       = errors.New("token is not valid")
	ErrTokenExpired       = errors.New("token has expired")
	ErrForbidden          = errors.New("access denied: insufficient permissions")
)
