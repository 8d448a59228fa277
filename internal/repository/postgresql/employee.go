package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/department"
	"github.com/cmlabs-hris/hr-admin-api/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/database"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/query"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

const employeeColumns = `id, name, email, phone, position, department, salary, hire_date, status,
	address, emergency_contact, created_at, updated_at`

var employeeConstraintFields = map[string]string{
	"employees_email_key":        "email",
	"employees_department_check": "department",
	"employees_status_check":     "status",
	"employees_salary_check":     "salary",
}

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var (
		emp              employee.Employee
		dept, status     string
		address, contact []byte
	)
	err := row.Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.Phone, &emp.Position, &dept,
		&emp.Salary, &emp.HireDate, &status, &address, &contact,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	emp.Department = department.Department(dept)
	emp.Status = employee.Status(status)

	if len(address) > 0 {
		if err := json.Unmarshal(address, &emp.Address); err != nil {
			return employee.Employee{}, fmt.Errorf("decode address: %w", err)
		}
	}
	if len(contact) > 0 {
		if err := json.Unmarshal(contact, &emp.EmergencyContact); err != nil {
			return employee.Employee{}, fmt.Errorf("decode emergency contact: %w", err)
		}
	}
	return emp, nil
}

func encodeEmployeeDocuments(emp employee.Employee) (string, string, error) {
	address, err := json.Marshal(emp.Address)
	if err != nil {
		return "", "", fmt.Errorf("encode address: %w", err)
	}
	contact, err := json.Marshal(emp.EmergencyContact)
	if err != nil {
		return "", "", fmt.Errorf("encode emergency contact: %w", err)
	}
	return string(address), string(contact), nil
}

// isNotFound reports a missing row or an id that is not a valid uuid.
func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || database.IsInvalidInput(err)
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	builder := query.NewBuilder().
		Eq("status", filter.Status).
		Eq("department", filter.Department).
		Search(filter.Search, "name", "email", "position")
	where := builder.Where()
	page, pageArgs := builder.Page(filter.Pagination)

	var (
		employees []employee.Employee
		total     int64
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		countQuery := `SELECT COUNT(*) FROM employees ` + where
		if err := q.QueryRow(gCtx, countQuery, builder.Args()...).Scan(&total); err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		listQuery := fmt.Sprintf(`SELECT %s FROM employees %s %s %s`,
			employeeColumns, where, query.OrderBy(query.Desc("created_at"), query.Asc("seq")), page)

		rows, err := q.Query(gCtx, listQuery, pageArgs...)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		defer rows.Close()

		result := make([]employee.Employee, 0, filter.Pagination.Limit)
		for rows.Next() {
			emp, err := scanEmployee(rows)
			if err != nil {
				return fmt.Errorf("failed to scan employee: %w", err)
			}
			result = append(result, emp)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed to iterate employees: %w", err)
		}
		employees = result
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if isNotFound(err) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}
	return emp, nil
}

// ExistsByEmail implements employee.EmployeeRepository. excludeID may be
// empty.
func (e *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1 AND ($2 = '' OR id::text <> $2))`

	var exists bool
	if err := q.QueryRow(ctx, query, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee email: %w", err)
	}
	return exists, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	address, contact, err := encodeEmployeeDocuments(newEmployee)
	if err != nil {
		return employee.Employee{}, err
	}

	query := `
		INSERT INTO employees (name, email, phone, position, department, salary, hire_date, status,
			address, emergency_contact)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.Name,
		newEmployee.Email,
		newEmployee.Phone,
		newEmployee.Position,
		string(newEmployee.Department),
		newEmployee.Salary,
		newEmployee.HireDate,
		string(newEmployee.Status),
		address,
		contact,
	))
	if err != nil {
		return employee.Employee{}, database.TranslateError(err, employeeConstraintFields)
	}
	return created, nil
}

// Update implements employee.EmployeeRepository. Every mutable column is
// written from emp.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	address, contact, err := encodeEmployeeDocuments(emp)
	if err != nil {
		return employee.Employee{}, err
	}

	query := `
		UPDATE employees
		SET name = $1, email = $2, phone = $3, position = $4, department = $5, salary = $6,
			hire_date = $7, status = $8, address = $9, emergency_contact = $10, updated_at = NOW()
		WHERE id = $11
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		emp.Name,
		emp.Email,
		emp.Phone,
		emp.Position,
		string(emp.Department),
		emp.Salary,
		emp.HireDate,
		string(emp.Status),
		address,
		contact,
		emp.ID,
	))
	if err != nil {
		if isNotFound(err) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, database.TranslateError(err, employeeConstraintFields)
	}
	return updated, nil
}

// UpdateStatus implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdateStatus(ctx context.Context, id string, status employee.Status) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query, string(status), id))
	if err != nil {
		if isNotFound(err) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee status: %w", err)
	}
	return updated, nil
}
