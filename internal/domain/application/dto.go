package application

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/department"
	"github.com/cmlabs-hris/hr-admin-api/internal/domain/user"
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

type CreateApplicationRequest struct {
	FullName       string          `json:"fullName"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address,omitempty"`
	Position       string          `json:"position"`
	Department     string          `json:"department"`
	Experience     string          `json:"experience"`
	Education      string          `json:"education"`
	Skills         string          `json:"skills,omitempty"`
	CoverLetter    string          `json:"coverLetter,omitempty"`
	ExpectedSalary json.RawMessage `json:"expectedSalary,omitempty"`

	expectedSalary decimal.NullDecimal
}

func (r *CreateApplicationRequest) Validate() error {
	var errs validator.ValidationErrors

	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = validator.NormalizeEmail(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
	r.Position = strings.TrimSpace(r.Position)
	r.Experience = strings.TrimSpace(r.Experience)
	r.Education = strings.TrimSpace(r.Education)
	r.Skills = strings.TrimSpace(r.Skills)
	r.CoverLetter = strings.TrimSpace(r.CoverLetter)

	if validator.IsEmpty(r.FullName) {
		errs.Add("fullName", "Full name is required")
	} else if !validator.MaxLength(r.FullName, maxNameLength) {
		errs.Add("fullName", "Name must not exceed 100 characters")
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

	if validator.IsEmpty(r.Experience) {
		errs.Add("experience", "Experience is required")
	}

	if validator.IsEmpty(r.Education) {
		errs.Add("education", "Education is required")
	}

	amount, present, ok := validator.ParseAmount(r.ExpectedSalary)
	switch {
	case !ok:
		errs.Add("expectedSalary", "Expected salary must be a number")
	case present && amount.IsNegative():
		errs.Add("expectedSalary", "Expected salary must be positive")
	case present:
		r.expectedSalary = decimal.NullDecimal{Decimal: amount, Valid: true}
	}

	return errs.Err()
}

// ToEntity builds a pending application. Applicants cannot choose status or
// reviewer fields.
func (r *CreateApplicationRequest) ToEntity(now time.Time) Application {
	return Application{
		FullName:       r.FullName,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
		Position:       r.Position,
		Department:     department.Department(r.Department),
		Experience:     r.Experience,
		Education:      r.Education,
		Skills:         r.Skills,
		CoverLetter:    r.CoverLetter,
		ExpectedSalary: r.expectedSalary,
		Status:         StatusPending,
		AppliedDate:    now,
	}
}

type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Status = strings.TrimSpace(r.Status)
	if !Status(r.Status).IsValid() {
		errs.Add("status", "Invalid status")
	}
	if r.Notes != nil {
		trimmed := strings.TrimSpace(*r.Notes)
		r.Notes = &trimmed
	}

	return errs.Err()
}

type ApplicationResponse struct {
	ID             string           `json:"id"`
	FullName       string           `json:"fullName"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Address        string           `json:"address,omitempty"`
	Position       string           `json:"position"`
	Department     string           `json:"department"`
	Experience     string           `json:"experience"`
	Education      string           `json:"education"`
	Skills         string           `json:"skills,omitempty"`
	CoverLetter    string           `json:"coverLetter,omitempty"`
	ExpectedSalary *decimal.Decimal `json:"expectedSalary,omitempty"`
	Status         string           `json:"status"`
	AppliedDate    time.Time        `json:"appliedDate"`
	ReviewedBy     *user.Summary    `json:"reviewedBy,omitempty"`
	ReviewDate     *time.Time       `json:"reviewDate,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

func (a Application) ToResponse() ApplicationResponse {
	resp := ApplicationResponse{
		ID:          a.ID,
		FullName:    a.FullName,
		Email:       a.Email,
		Phone:       a.Phone,
		Address:     a.Address,
		Position:    a.Position,
		Department:  string(a.Department),
		Experience:  a.Experience,
		Education:   a.Education,
		Skills:      a.Skills,
		CoverLetter: a.CoverLetter,
		Status:      string(a.Status),
		AppliedDate: a.AppliedDate,
		ReviewDate:  a.ReviewDate,
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.ExpectedSalary.Valid {
		salary := a.ExpectedSalary.Decimal
		resp.ExpectedSalary = &salary
	}
	switch {
	case a.Reviewer != nil:
		resp.ReviewedBy = a.Reviewer
	case a.ReviewedBy != nil:
		resp.ReviewedBy = &user.Summary{ID: *a.ReviewedBy}
	}
	return resp
}

type ApplicationFilter struct {
	Pagination query.Pagination
	Status     string
	Department string
	Search     string
}

func (f *ApplicationFilter) Normalize() {
	f.Pagination = query.NewPagination(f.Pagination.Page, f.Pagination.Limit)
	f.Status = strings.TrimSpace(f.Status)
	f.Department = strings.TrimSpace(f.Department)
	f.Search = strings.TrimSpace(f.Search)
}

type ListApplicationResponse = query.Result[ApplicationResponse]
