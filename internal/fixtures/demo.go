package fixtures

import (
	"time"

	"github.com/cmlabs-hris/hr-admin-api/internal/domain/application"
	"github.com/cmlabs-hris/hr-admin-api/internal/domain/department"
	"github.com/cmlabs-hris/hr-admin-api/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-api/internal/domain/user"
	"github.com/shopspring/decimal"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func salary(amount int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(amount))
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ==========================================
// DEMO USERS
// ==========================================

// DemoUser is a login account with its plain-text password.
type DemoUser struct {
	Username string
	Email    string
	Password string
	Role     user.Role
}

// HRManagerUsername identifies the account that reviews seeded applications.
const HRManagerUsername = "hr_manager"

// GetDemoUsers returns one account per access tier.
func GetDemoUsers() []DemoUser {
	return []DemoUser{
		{Username: "admin", Email: "admin@company.com", Password: "admin123", Role: user.RoleAdmin},
		{Username: HRManagerUsername, Email: "hr@company.com", Password: "hrmanager123", Role: user.RoleHR},
		{Username: "employee1", Email: "john.doe@company.com", Password: "employee123", Role: user.RoleEmployee},
	}
}

// ==========================================
// DEMO EMPLOYEES
// ==========================================

// GetDemoEmployees returns the active staff roster.
func GetDemoEmployees() []employee.Employee {
	return []employee.Employee{
		{
			Name:       "John Doe",
			Email:      "john.doe@company.com",
			Phone:      "+1 (555) 123-4567",
			Position:   "Senior Software Engineer",
			Department: department.Engineering,
			Salary:     salary(95000),
			HireDate:   date(2022, time.January, 15),
			Status:     employee.StatusActive,
			Address: employee.Address{
				Street: "123 Main St", City: "San Francisco", State: "CA", ZipCode: "94105", Country: "USA",
			},
			EmergencyContact: employee.EmergencyContact{
				Name: "Jane Doe", Relationship: "Spouse", Phone: "+1 (555) 123-4568",
			},
		},
		{
			Name:       "Sarah Johnson",
			Email:      "sarah.johnson@company.com",
			Phone:      "+1 (555) 234-5678",
			Position:   "Marketing Manager",
			Department: department.Marketing,
			Salary:     salary(75000),
			HireDate:   date(2021, time.August, 20),
			Status:     employee.StatusActive,
			Address: employee.Address{
				Street: "456 Oak Ave", City: "Los Angeles", State: "CA", ZipCode: "90210", Country: "USA",
			},
		},
		{
			Name:       "Michael Chen",
			Email:      "michael.chen@company.com",
			Phone:      "+1 (555) 345-6789",
			Position:   "Product Designer",
			Department: department.Design,
			Salary:     salary(80000),
			HireDate:   date(2023, time.March, 10),
			Status:     employee.StatusActive,
			Address: employee.Address{
				Street: "789 Pine St", City: "Seattle", State: "WA", ZipCode: "98101", Country: "USA",
			},
		},
		{
			Name:       "Emily Rodriguez",
			Email:      "emily.rodriguez@company.com",
			Phone:      "+1 (555) 456-7890",
			Position:   "Sales Representative",
			Department: department.Sales,
			Salary:     salary(65000),
			HireDate:   date(2022, time.November, 5),
			Status:     employee.StatusActive,
			Address: employee.Address{
				Street: "321 Elm St", City: "Austin", State: "TX", ZipCode: "73301", Country: "USA",
			},
		},
		{
			Name:       "David Wilson",
			Email:      "david.wilson@company.com",
			Phone:      "+1 (555) 567-8901",
			Position:   "HR Specialist",
			Department: department.HR,
			Salary:     salary(60000),
			HireDate:   date(2021, time.June, 15),
			Status:     employee.StatusActive,
			Address: employee.Address{
				Street: "654 Maple Ave", City: "Denver", State: "CO", ZipCode: "80202", Country: "USA",
			},
		},
	}
}

// ==========================================
// DEMO APPLICATIONS
// ==========================================

// DemoApplication pairs a submission with the review it receives after
// insert, if any.
type DemoApplication struct {
	Application application.Application
	Review      *application.Review
}

func notes(s string) *string { return &s }

// GetDemoApplications returns candidates in different pipeline stages.
// Reviews carry no reviewer; the seeder stamps the HR manager.
func GetDemoApplications(appliedAt time.Time) []DemoApplication {
	return []DemoApplication{
		{
			Application: application.Application{
				FullName:       "Alice Thompson",
				Email:          "alice.thompson@email.com",
				Phone:          "+1 (555) 678-9012",
				Address:        "987 Cedar St, Portland, OR 97201",
				Position:       "Frontend Developer",
				Department:     department.Engineering,
				Experience:     "3 years in React and JavaScript development",
				Education:      "Bachelor of Science in Computer Science",
				Skills:         "React, JavaScript, TypeScript, CSS, HTML, Git",
				CoverLetter:    "I am excited to apply for the Frontend Developer position. With 3 years of experience in React development, I believe I can contribute significantly to your team.",
				ExpectedSalary: salary(70000),
				Status:         application.StatusPending,
				AppliedDate:    appliedAt,
			},
		},
		{
			Application: application.Application{
				FullName:       "Robert Martinez",
				Email:          "robert.martinez@email.com",
				Phone:          "+1 (555) 789-0123",
				Address:        "147 Birch Ln, Miami, FL 33101",
				Position:       "Digital Marketing Specialist",
				Department:     department.Marketing,
				Experience:     "2 years in digital marketing and social media",
				Education:      "Bachelor of Arts in Marketing",
				Skills:         "SEO, SEM, Social Media Marketing, Google Analytics, Content Creation",
				CoverLetter:    "I am passionate about digital marketing and would love to bring my skills to your marketing team.",
				ExpectedSalary: salary(55000),
				Status:         application.StatusPending,
				AppliedDate:    appliedAt,
			},
			Review: &application.Review{
				Status:     application.StatusReviewing,
				Notes:      notes("Strong portfolio, scheduling interview"),
				ReviewDate: appliedAt,
			},
		},
		{
			Application: application.Application{
				FullName:       "Lisa Chang",
				Email:          "lisa.chang@email.com",
				Phone:          "+1 (555) 890-1234",
				Address:        "258 Spruce St, Boston, MA 02101",
				Position:       "UX Designer",
				Department:     department.Design,
				Experience:     "4 years in UX/UI design",
				Education:      "Master of Fine Arts in Design",
				Skills:         "Figma, Sketch, Adobe Creative Suite, User Research, Prototyping",
				CoverLetter:    "With 4 years of UX design experience, I am excited about the opportunity to create user-centered designs for your products.",
				ExpectedSalary: salary(75000),
				Status:         application.StatusInterviewed,
				AppliedDate:    appliedAt,
			},
		},
	}
}
