package user

import "github.com/cmlabs-hris/hr-admin-api/internal/pkg/validator"

// RecordManagers may create, update and terminate employees and review
// job applications.
var RecordManagers = []Role{RoleAdmin, RoleAdministrator, RoleHR, RoleManager}

// HasRole checks if role is one of allowed. An empty allowed set admits any role.
func HasRole(role Role, allowed ...Role) bool {
	if len(allowed) == 0 {
		return true
	}

	return validator.IsInSlice(role, allowed)
}
