package user

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"    // Full access, settings and manual entries
	RoleHR       Role = "HR"       // Manual entries and monthly reports
	RoleDirector Role = "DIRECTOR" // Read-only reporting across departments
	RoleManager  Role = "MANAGER"  // Reports scoped to own department
	RoleEmployee Role = "EMPLOYEE" // Punch and own history only
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	_, ok := RolePermissions[r]
	return ok
}

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeID   *string
	DepartmentID *string
}

// Caller is the authenticated identity an engine operation runs as.
// The HTTP layer resolves it from token claims; services never read it from context.
type Caller struct {
	UserID       string
	EmployeeID   string
	Role         Role
	DepartmentID string
}

// Can reports whether the caller's role grants permission.
func (c Caller) Can(permission Permission) bool {
	return HasPermission(c.Role, permission)
}

// IsDepartmentScoped reports whether reports for this caller are restricted
// to employees of the caller's own department.
func (c Caller) IsDepartmentScoped() bool {
	return c.Role == RoleManager
}

// InScope reports whether an employee in departmentID is visible to the caller.
func (c Caller) InScope(departmentID *string) bool {
	if !c.IsDepartmentScoped() {
		return true
	}
	return departmentID != nil && c.DepartmentID != "" && *departmentID == c.DepartmentID
}
