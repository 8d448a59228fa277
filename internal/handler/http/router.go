package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/auth"
	"github.com/cmlabs-hris/hr-admin-api/internal/domain/user"
	"github.com/cmlabs-hris/hr-admin-api/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hr-admin-api/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// MaxBodyBytes caps request bodies at 10MB.
const MaxBodyBytes = 10 << 20

type RouterConfig struct {
	Logger            *slog.Logger
	AllowedOrigins    []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

func NewRouter(cfg RouterConfig, authorizer auth.Authorizer, authHandler AuthHandler, employeeHandler EmployeeHandler, applicationHandler ApplicationHandler) *chi.Mux {
	r := chi.NewRouter()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.RouteNotFound(w, r.URL.RequestURI())
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w, r.URL.RequestURI())
	})

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: false,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.SetHeader("X-Content-Type-Options", "nosniff"))
	r.Use(chiMiddleware.SetHeader("X-Frame-Options", "SAMEORIGIN"))
	r.Use(chiMiddleware.SetHeader("Referrer-Policy", "no-referrer"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestSize(MaxBodyBytes))

	// One counter per client address across every path, unknown ones included.
	if cfg.RateLimitRequests > 0 {
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	requireIdentity := middleware.Authorize(authorizer)
	requireRecordManager := middleware.Authorize(authorizer, user.RecordManagers...)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", Health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.With(requireIdentity).Get("/me", authHandler.Me)
		})

		r.Route("/employees", func(r chi.Router) {
			// Any authenticated user may read
			r.Group(func(r chi.Router) {
				r.Use(requireIdentity)
				r.Get("/", employeeHandler.ListEmployees)
				r.Get("/{id}", employeeHandler.GetEmployee)
			})

			r.Group(func(r chi.Router) {
				r.Use(requireRecordManager)
				r.Post("/", employeeHandler.CreateEmployee)
				r.Put("/{id}", employeeHandler.UpdateEmployee)
				r.Delete("/{id}", employeeHandler.DeleteEmployee)
			})
		})

		r.Route("/applications", func(r chi.Router) {
			// Public
			r.Post("/", applicationHandler.SubmitApplication)

			r.Group(func(r chi.Router) {
				r.Use(requireRecordManager)
				r.Get("/", applicationHandler.ListApplications)
				r.Get("/{id}", applicationHandler.GetApplication)
				r.Put("/{id}/status", applicationHandler.UpdateStatus)
			})
		})
	})

	return r
}
