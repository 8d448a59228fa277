package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hr-admin-api/internal/config"
	appHTTP "github.com/cmlabs-hris/hr-admin-api/internal/handler/http"
	"github.com/cmlabs-hris/hr-admin-api/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/database"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/jwt"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/password"
	"github.com/cmlabs-hris/hr-admin-api/internal/repository/postgresql"
	applicationService "github.com/cmlabs-hris/hr-admin-api/internal/service/application"
	serviceAuth "github.com/cmlabs-hris/hr-admin-api/internal/service/auth"
	employeeService "github.com/cmlabs-hris/hr-admin-api/internal/service/employee"
	"github.com/go-chi/httplog/v3"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(!cfg.IsDevelopment())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
		Level:       cfg.SlogLevel(),
	})).With(
		slog.String("app", "hr-admin-api"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	response.SetDevelopment(cfg.IsDevelopment())
	decimal.MarshalJSONWithoutQuotes = true

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()
	logger.Info("database connected")

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	applicationRepo := postgresql.NewApplicationRepository(db)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	if err != nil {
		return fmt.Errorf("jwt service: %w", err)
	}
	hasher := password.NewHasher(cfg.Security.BcryptCost)

	authService := serviceAuth.NewAuthService(userRepo, JWTService, hasher)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	applicationSvc := applicationService.NewApplicationService(applicationRepo)

	authHandler := appHTTP.NewAuthHandler(authService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	applicationHandler := appHTTP.NewApplicationHandler(applicationSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Logger:            logger,
			AllowedOrigins:    cfg.Security.AllowedOrigins,
			RateLimitRequests: cfg.RateLimit.Requests,
			RateLimitWindow:   cfg.RateLimit.Window,
		},
		authService,
		authHandler,
		employeeHandler,
		applicationHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server running", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
