package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	// List returns every employee, optionally restricted to one department.
	List(ctx context.Context, departmentID *string) ([]Employee, error)
}
