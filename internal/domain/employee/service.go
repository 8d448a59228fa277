package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees lists employees; status defaults to active
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID, terminated ones included
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee creates a new employee, rejecting a duplicate email
	CreateEmployee(ctx context.Context, req EmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee replaces the editable fields of an employee
	UpdateEmployee(ctx context.Context, id string, req EmployeeRequest) (EmployeeResponse, error)

	// TerminateEmployee soft deletes an employee by setting status terminated
	TerminateEmployee(ctx context.Context, id string) (EmployeeResponse, error)
}
