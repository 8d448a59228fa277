package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/query"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	filter.Normalize()

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	items := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		items = append(items, emp.ToResponse())
	}

	return query.NewResult(items, total, filter.Pagination), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.get(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return emp.ToResponse(), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.EmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email, "")
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee email: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	created, err := s.employeeRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created.ToResponse(), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.EmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.get(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Email != current.Email {
		exists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email, current.ID)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee email: %w", err)
		}
		if exists {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
	}

	req.Apply(&current)

	updated, err := s.employeeRepo.Update(ctx, current)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return updated.ToResponse(), nil
}

// TerminateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) TerminateEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	terminated, err := s.employeeRepo.UpdateStatus(ctx, id, employee.StatusTerminated)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to terminate employee: %w", err)
	}
	return terminated.ToResponse(), nil
}

func (s *EmployeeServiceImpl) get(ctx context.Context, id string) (employee.Employee, error) {
	if _, err := uuid.Parse(id); err != nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}
