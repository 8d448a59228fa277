package employee

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/department"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/query"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Column widths of the backing table.
const (
	maxNameLength     = 100
	maxEmailLength    = 255
	maxPhoneLength    = 50
	maxPositionLength = 255
)

// EmployeeRequest is the payload of both create and update. Optional fields
// left out of an update keep their stored value.
type EmployeeRequest struct {
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	Position         string            `json:"position"`
	Department       string            `json:"department"`
	Salary           json.RawMessage   `json:"salary,omitempty"`
	HireDate         string            `json:"hireDate,omitempty"`
	Status           string            `json:"status,omitempty"`
	Address          *Address          `json:"address,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`

	salary   decimal.NullDecimal
	hireDate *time.Time
}

func (r *EmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	r.Email = validator.NormalizeEmail(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Position = strings.TrimSpace(r.Position)
	r.Status = strings.TrimSpace(r.Status)

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "Name is required")
	} else if !validator.MaxLength(r.Name, maxNameLength) {
		errs.Add("name", "Name must not exceed 100 characters")
	}

	if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "Please provide a valid email")
	} else if !validator.MaxLength(r.Email, maxEmailLength) {
		errs.Add("email", "Email must not exceed 255 characters")
	}

	if validator.IsEmpty(r.Phone) {
		errs.Add("phone", "Phone number is required")
	} else if !validator.MaxLength(r.Phone, maxPhoneLength) {
		errs.Add("phone", "Phone number must not exceed 50 characters")
	}

	if validator.IsEmpty(r.Position) {
		errs.Add("position", "Position is required")
	} else if !validator.MaxLength(r.Position, maxPositionLength) {
		errs.Add("position", "Position must not exceed 255 characters")
	}

	if !department.Department(r.Department).IsValid() {
		errs.Add("department", "Invalid department")
	}

	amount, present, ok := validator.ParseAmount(r.Salary)
	switch {
	case !ok:
		errs.Add("salary", "Salary must be a number")
	case present && amount.IsNegative():
		errs.Add("salary", "Salary must be positive")
	case present:
		r.salary = decimal.NullDecimal{Decimal: amount, Valid: true}
	}

	if r.HireDate != "" {
		t, ok := parseDate(r.HireDate)
		if !ok {
			errs.Add("hireDate", "Hire date must be a valid date")
		} else {
			r.hireDate = &t
		}
	}

	if r.Status != "" && !Status(r.Status).IsValid() {
		errs.Add("status", "Invalid status")
	}

	return errs.Err()
}

// ToEntity builds a new employee from a validated request.
func (r *EmployeeRequest) ToEntity() Employee {
	emp := Employee{
		HireDate: time.Now().UTC(),
		Status:   StatusActive,
	}
	r.Apply(&emp)
	return emp
}

// Apply copies a validated request onto emp. Required fields are always
// overwritten; optional ones only when sent.
func (r *EmployeeRequest) Apply(emp *Employee) {
	emp.Name = r.Name
	emp.Email = r.Email
	emp.Phone = r.Phone
	emp.Position = r.Position
	emp.Department = department.Department(r.Department)

	if r.salary.Valid {
		emp.Salary = r.salary
	}
	if r.hireDate != nil {
		emp.HireDate = *r.hireDate
	}
	if r.Status != "" {
		emp.Status = Status(r.Status)
	}
	if r.Address != nil {
		emp.Address = *r.Address
	}
	if r.EmergencyContact != nil {
		emp.EmergencyContact = *r.EmergencyContact
	}
}

func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

type EmployeeResponse struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	Position         string           `json:"position"`
	Department       string           `json:"department"`
	Salary           *decimal.Decimal `json:"salary,omitempty"`
	HireDate         time.Time        `json:"hireDate"`
	Status           string           `json:"status"`
	Address          Address          `json:"address"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

func (e Employee) ToResponse() EmployeeResponse {
	resp := EmployeeResponse{
		ID:               e.ID,
		Name:             e.Name,
		Email:            e.Email,
		Phone:            e.Phone,
		Position:         e.Position,
		Department:       string(e.Department),
		HireDate:         e.HireDate,
		Status:           string(e.Status),
		Address:          e.Address,
		EmergencyContact: e.EmergencyContact,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	if e.Salary.Valid {
		salary := e.Salary.Decimal
		resp.Salary = &salary
	}
	return resp
}

// EmployeeFilter holds the list parameters after coercion.
type EmployeeFilter struct {
	Pagination query.Pagination
	Status     string
	Department string
	Search     string
}

// Normalize applies the listing defaults: page/limit coercion and
// status=active unless a status was requested.
func (f *EmployeeFilter) Normalize() {
	f.Pagination = query.NewPagination(f.Pagination.Page, f.Pagination.Limit)
	f.Status = strings.TrimSpace(f.Status)
	f.Department = strings.TrimSpace(f.Department)
	f.Search = strings.TrimSpace(f.Search)
	if f.Status == "" {
		f.Status = string(StatusActive)
	}
}

type ListEmployeeResponse = query.Result[EmployeeResponse]
