package employee

import (
	"time"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/department"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	Name             string
	Email            string
	Phone            string
	Position         string
	Department       department.Department
	Salary           decimal.NullDecimal
	HireDate         time.Time
	Status           Status
	Address          Address
	EmergencyContact EmergencyContact
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Status string

const (
	StatusActive     Status = "active"
	StatusTerminated Status = "terminated"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusTerminated
}

type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

type EmergencyContact struct {
	Name         string `json:"name,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Phone        string `json:"phone,omitempty"`
}
