package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cmlabs-hris/hr-admin-api/internal/config"
	"github.com/cmlabs-hris/hr-admin-api/internal/fixtures"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/database"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/password"
	"github.com/cmlabs-hris/hr-admin-api/internal/repository/postgresql"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		slog.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	seeder := fixtures.NewSeeder(
		db,
		postgresql.NewUserRepository(db),
		postgresql.NewEmployeeRepository(db),
		postgresql.NewApplicationRepository(db),
		password.NewHasher(cfg.Security.BcryptCost),
	)

	result, err := seeder.Run(ctx)
	if err != nil {
		slog.Error("seeding failed", slog.Any("error", err))
		db.Close()
		os.Exit(1)
	}

	slog.Info("demo data seeded",
		slog.Int("users", result.Users),
		slog.Int("employees", result.Employees),
		slog.Int("applications", result.Applications),
	)

	fmt.Println("Demo login credentials:")
	for _, u := range fixtures.GetDemoUsers() {
		fmt.Printf("  %s: username=%s, password=%s\n", u.Role, u.Username, u.Password)
	}
}
