package middleware

import (
	"net/http"
	"time"

	"github.com/cmlabs-hris/hr-admin-api/internal/handler/http/response"
	"github.com/go-chi/httprate"
)

// RateLimit allows requests per window for each client IP.
func RateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			response.TooManyRequests(w)
		}),
	)
}
