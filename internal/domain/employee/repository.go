package employee

import "context"

type EmployeeRepository interface {
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Employee, error)
}
