package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const employeeSelect = `
	SELECT e.id, e.user_id, e.employee_code, e.full_name, e.department_id, d.name, e.position,
		COALESCE(u.role, 'EMPLOYEE'), e.work_outside_office_allowed, e.attendance_required,
		e.created_at, e.updated_at
	FROM employees e
	LEFT JOIN departments d ON d.id = e.department_id
	LEFT JOIN users u ON u.id = e.user_id`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.UserID, &emp.EmployeeCode, &emp.FullName, &emp.DepartmentID, &emp.DepartmentName, &emp.Position,
		&emp.Role, &emp.WorkOutsideOfficeAllowed, &emp.AttendanceRequired,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// GetByID implements employee.EmployeeRepository.
// Malformed ids are reported as not found rather than as a driver error.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if err := uuid.Validate(id); err != nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	q := GetQuerier(ctx, e.db)

	emp, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", id, err)
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, departmentID *string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := employeeSelect
	var args []interface{}
	if departmentID != nil {
		query += ` WHERE e.department_id = $1`
		args = append(args, *departmentID)
	}
	query += ` ORDER BY e.full_name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
