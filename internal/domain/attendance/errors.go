package attendance

import "errors"

// Attendance domain errors
var (
	// Punch errors
	ErrAlreadyPunchedIn   = errors.New("you already have an open attendance session today")
	ErrLocationNotAllowed = errors.New("working outside the office is not allowed for this employee")
	ErrIPNotAllowed       = errors.New("your network address is not in the office allow-list")
	ErrNoActiveSession    = errors.New("no active attendance session found")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidDateRange   = errors.New("endDate must not be before startDate")
	ErrDateRangeTooLong   = errors.New("date range must not exceed 62 days")
)
