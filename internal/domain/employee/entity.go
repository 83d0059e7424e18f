package employee

import (
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/user"
)

// Employee is the read-only profile the attendance engine consults.
type Employee struct {
	ID                       string
	UserID                   *string
	EmployeeCode             string
	FullName                 string
	DepartmentID             *string
	DepartmentName           *string
	Position                 *string
	Role                     user.Role
	WorkOutsideOfficeAllowed bool
	AttendanceRequired       bool
	CreatedAt                time.Time
	UpdatedAt                time.Time
}
