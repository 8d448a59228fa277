package application

import (
	"time"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/department"
	"github.com/cmlabs-hris/hr-admin-api/internal/domain/user"
	"github.com/cmlabs-hris/hr-admin-api/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type Application struct {
	ID             string
	FullName       string
	Email          string
	Phone          string
	Address        string
	Position       string
	Department     department.Department
	Experience     string
	Education      string
	Skills         string
	CoverLetter    string
	ExpectedSalary decimal.NullDecimal
	Status         Status
	AppliedDate    time.Time
	ReviewedBy     *string
	ReviewDate     *time.Time
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Join
	Reviewer *user.Summary
}

// Status transitions are unconstrained: any status may follow any other.
type Status string

const (
	StatusPending     Status = "pending"
	StatusReviewing   Status = "reviewing"
	StatusInterviewed Status = "interviewed"
	StatusAccepted    Status = "accepted"
	StatusRejected    Status = "rejected"
)

var Statuses = []Status{StatusPending, StatusReviewing, StatusInterviewed, StatusAccepted, StatusRejected}

func (s Status) IsValid() bool {
	return validator.IsInSlice(s, Statuses)
}

// Review is the reviewer stamp written by a status update.
type Review struct {
	Status     Status
	Notes      *string
	ReviewedBy string
	ReviewDate time.Time
}
