package department

import "github.com/cmlabs-hris/hr-admin-api/internal/pkg/validator"

// Department is the closed set of organisational units shared by employees
// and job applications. The database carries the same list as a CHECK
// constraint.
type Department string

const (
	Engineering Department = "Engineering"
	Marketing   Department = "Marketing"
	Sales       Department = "Sales"
	HR          Department = "HR"
	Finance     Department = "Finance"
	Operations  Department = "Operations"
	Design      Department = "Design"
	Product     Department = "Product"
)

var All = []Department{Engineering, Marketing, Sales, HR, Finance, Operations, Design, Product}

func (d Department) IsValid() bool {
	return validator.IsInSlice(d, All)
}

func (d Department) String() string {
	return string(d)
}
