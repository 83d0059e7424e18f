package attendance

import (
	"context"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/user"
)

// AttendanceService defines business logic for attendance operations.
// Every request-driven method takes the caller explicitly.
type AttendanceService interface {
	// PunchIn opens a new session after the open-session, location and IP checks
	PunchIn(ctx context.Context, caller user.Caller, req PunchRequest) (AttendanceResponse, error)

	// PunchOut closes the caller's most recent open session
	PunchOut(ctx context.Context, caller user.Caller, req PunchRequest) (AttendanceResponse, error)

	// GetMyAttendance returns the caller's last 30 records, newest first
	GetMyAttendance(ctx context.Context, caller user.Caller) ([]AttendanceResponse, error)

	// GetAttendanceStats summarises the caller's current calendar month
	GetAttendanceStats(ctx context.Context, caller user.Caller) (AttendanceStats, error)

	// GetDailyReport classifies every employee in the caller's scope for one day (YYYY-MM-DD, empty = today)
	GetDailyReport(ctx context.Context, caller user.Caller, date string) ([]DailyReportRow, error)

	// AddManualAttendance inserts a record without the open-session check
	AddManualAttendance(ctx context.Context, caller user.Caller, req ManualAttendanceRequest) (AttendanceResponse, error)

	// GetEmployeeMonthlyReport builds a per-day breakdown for one employee
	GetEmployeeMonthlyReport(ctx context.Context, caller user.Caller, req MonthlyReportRequest) (MonthlyReport, error)

	// AutoCloseOpenSessions force-closes sessions left open from previous days
	AutoCloseOpenSessions(ctx context.Context) (SweepResult, error)
}
