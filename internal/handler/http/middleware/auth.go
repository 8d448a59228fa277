package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/auth"
	"github.com/cmlabs-hris/hr-admin-api/internal/domain/user"
	"github.com/cmlabs-hris/hr-admin-api/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// Authorize rejects requests whose bearer token does not resolve to an
// active user holding one of roles. With no roles any authenticated user
// passes. The resolved identity is stored in the request context.
func Authorize(authorizer auth.Authorizer, roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token := jwtauth.TokenFromHeader(r)

			identity, err := authorizer.Authorize(r.Context(), token, roles...)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		}
		return http.HandlerFunc(hfn)
	}
}
