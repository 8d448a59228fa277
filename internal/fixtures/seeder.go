package fixtures

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/application"
	"github.com/cmlabs-hris/hr-admin-api/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-api/internal/domain/user"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/database"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/password"
	"github.com/cmlabs-hris/hr-admin-api/internal/repository/postgresql"
)

const clearTablesQuery = `TRUNCATE applications, employees, users RESTART IDENTITY CASCADE`

// SeedResult counts the rows written by a seed run.
type SeedResult struct {
	Users        int
	Employees    int
	Applications int
}

type Seeder struct {
	db                    *database.DB
	userRepository        user.UserRepository
	employeeRepository    employee.EmployeeRepository
	applicationRepository application.ApplicationRepository
	hasher                *password.Hasher
	now                   func() time.Time
}

func NewSeeder(
	db *database.DB,
	userRepository user.UserRepository,
	employeeRepository employee.EmployeeRepository,
	applicationRepository application.ApplicationRepository,
	hasher *password.Hasher,
) *Seeder {
	return &Seeder{
		db:                    db,
		userRepository:        userRepository,
		employeeRepository:    employeeRepository,
		applicationRepository: applicationRepository,
		hasher:                hasher,
		now:                   time.Now,
	}
}

// Run replaces all existing data with the demo data set in one transaction.
func (s *Seeder) Run(ctx context.Context) (SeedResult, error) {
	var result SeedResult

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		result = SeedResult{}

		if _, err := postgresql.GetQuerier(txCtx, s.db).Exec(txCtx, clearTablesQuery); err != nil {
			return fmt.Errorf("clear tables: %w", err)
		}
		slog.Info("existing data cleared")

		usersByName := make(map[string]user.User)
		for _, demo := range GetDemoUsers() {
			hash, err := s.hasher.Hash(demo.Password)
			if err != nil {
				return fmt.Errorf("hash password for %s: %w", demo.Username, err)
			}
			created, err := s.userRepository.Create(txCtx, user.User{
				Username:     demo.Username,
				Email:        demo.Email,
				PasswordHash: hash,
				Role:         demo.Role,
				IsActive:     true,
			})
			if err != nil {
				return fmt.Errorf("create user %s: %w", demo.Username, err)
			}
			usersByName[created.Username] = created
			result.Users++
		}

		for _, emp := range GetDemoEmployees() {
			if _, err := s.employeeRepository.Create(txCtx, emp); err != nil {
				return fmt.Errorf("create employee %s: %w", emp.Email, err)
			}
			result.Employees++
		}

		reviewer, ok := usersByName[HRManagerUsername]
		if !ok {
			return fmt.Errorf("reviewer %s was not seeded", HRManagerUsername)
		}

		for _, demo := range GetDemoApplications(s.now().UTC()) {
			created, err := s.applicationRepository.Create(txCtx, demo.Application)
			if err != nil {
				return fmt.Errorf("create application %s: %w", demo.Application.Email, err)
			}
			if demo.Review != nil {
				review := *demo.Review
				review.ReviewedBy = reviewer.ID
				if _, err := s.applicationRepository.UpdateStatus(txCtx, created.ID, review); err != nil {
					return fmt.Errorf("review application %s: %w", demo.Application.Email, err)
				}
			}
			result.Applications++
		}

		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}

	return result, nil
}
