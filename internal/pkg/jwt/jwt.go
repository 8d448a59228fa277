package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// DefaultExpiration is the session token lifetime: 7 days.
const DefaultExpiration = 7 * 24 * time.Hour

type Service interface {
	IssueToken(userID string) (token string, expiresAt int64, err error)
	VerifyToken(tokenString string) (userID string, err error)
}

type JWTService struct {
	expiration time.Duration
	tokenAuth  *jwtauth.JWTAuth
	now        func() time.Time
}

// NewJWTService builds an HS256 signer. expiration is a time.ParseDuration
// string; empty means DefaultExpiration. A missing secret is an error so the
// process cannot start without one.
func NewJWTService(secretKey string, expiration string) (Service, error) {
	if secretKey == "" {
		return nil, errors.New("jwt secret key is required")
	}

	exp := DefaultExpiration
	if expiration != "" {
		d, err := time.ParseDuration(expiration)
		if err != nil {
			return nil, fmt.Errorf("invalid jwt expiration %q: %w", expiration, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("jwt expiration must be positive, got %s", expiration)
		}
		exp = d
	}

	return &JWTService{
		expiration: exp,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil,
			jwt.WithAcceptableSkew(30*time.Second),
			jwt.WithRequiredClaim("exp"),
		),
		now: time.Now,
	}, nil
}

func (j *JWTService) IssueToken(userID string) (token string, expiresAt int64, err error) {
	if userID == "" {
		return "", 0, errors.New("user id is required")
	}

	now := j.now()
	exp := now.Add(j.expiration)

	claims := map[string]interface{}{
		"user_id": userID,
		"type":    "access",
	}
	jwtauth.SetIssuedAt(claims, now)
	jwtauth.SetExpiry(claims, exp)

	_, tokenString, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, exp.Unix(), nil
}

// VerifyToken checks signature and expiry and returns the user id claim.
func (j *JWTService) VerifyToken(tokenString string) (userID string, err error) {
	if tokenString == "" {
		return "", auth.ErrMissingToken
	}

	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		if errors.Is(err, jwtauth.ErrExpired) {
			return "", auth.ErrTokenExpired
		}
		return "", auth.ErrInvalidToken
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "access" {
		return "", auth.ErrInvalidToken
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return "", auth.ErrInvalidToken
	}

	userID, ok = userIDVal.(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}

	return userID, nil
}
