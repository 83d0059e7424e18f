package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new record. A second open PUNCH session for the same
	// employee and day is rejected with ErrAlreadyPunchedIn.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// LockEmployee serializes punch operations for one employee until the
	// surrounding transaction ends.
	LockEmployee(ctx context.Context, employeeID string) error

	// FindOpenSince returns an open record with date >= since, or nil.
	FindOpenSince(ctx context.Context, employeeID string, since time.Time) (*Attendance, error)

	// GetLatestOpen returns the open record with the newest check-in time.
	// Returns ErrAttendanceNotFound when none exists.
	GetLatestOpen(ctx context.Context, employeeID string) (Attendance, error)

	// CheckOut writes the check-out fields of an open record.
	CheckOut(ctx context.Context, attendance Attendance) (Attendance, error)

	// ListOverlapping returns records with checkIn <= to AND (checkOut >= from OR checkOut IS NULL).
	// A nil employeeIDs slice matches every employee.
	ListOverlapping(ctx context.Context, employeeIDs []string, from, to time.Time) ([]Attendance, error)

	// ListByCheckIn returns an employee's records whose check-in lies in [from, to], oldest first.
	ListByCheckIn(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)

	// ListRecent returns the newest records of an employee, newest first.
	ListRecent(ctx context.Context, employeeID string, limit int) ([]Attendance, error)

	// CloseOpenBefore force-closes every open record that checked in before cutoff.
	CloseOpenBefore(ctx context.Context, cutoff time.Time, closeAt time.Time, notes string) ([]Attendance, error)
}
