package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// PUNCH DTOs
// ========================================

// PunchRequest is shared by punch-in and punch-out.
type PunchRequest struct {
	Location  Location `json:"location" validate:"required,oneof=OFFICE HOME"`
	ProjectID *string  `json:"projectId,omitempty" validate:"omitempty,max=100"`
	Task      *string  `json:"task,omitempty" validate:"omitempty,max=1000"`
	Notes     *string  `json:"notes,omitempty" validate:"omitempty,max=1000"`

	// Taken from the request, never from the body.
	IPAddress string `json:"-"`
}

func (r *PunchRequest) Validate() error {
	return validator.Struct(r)
}

type AttendanceResponse struct {
	ID                string   `json:"id"`
	EmployeeID        string   `json:"employeeId"`
	EmployeeName      *string  `json:"employeeName,omitempty"`
	Date              string   `json:"date"`
	CheckInTime       string   `json:"checkInTime"`
	CheckInLocation   Location `json:"checkInLocation"`
	CheckInIPAddress  *string  `json:"checkInIpAddress,omitempty"`
	CheckInProjectID  *string  `json:"checkInProjectId,omitempty"`
	CheckInTask       *string  `json:"checkInTask,omitempty"`
	CheckInNotes      *string  `json:"checkInNotes,omitempty"`
	CheckOutTime      *string  `json:"checkOutTime"`
	CheckOutLocation  *string  `json:"checkOutLocation,omitempty"`
	CheckOutIPAddress *string  `json:"checkOutIpAddress,omitempty"`
	CheckOutProjectID *string  `json:"checkOutProjectId,omitempty"`
	CheckOutTask      *string  `json:"checkOutTask,omitempty"`
	CheckOutNotes     *string  `json:"checkOutNotes,omitempty"`
	DurationMs        *int64   `json:"durationMs,omitempty"`
	Status            Status   `json:"status"`
	Source            Source   `json:"source"`
	CreatedAt         string   `json:"createdAt"`
	UpdatedAt         string   `json:"updatedAt"`
}

// ========================================
// MANUAL ENTRY DTOs
// ========================================

// ManualAttendanceRequest lets an administrator insert a record directly.
// Times are HH:MM on Date in server local time.
type ManualAttendanceRequest struct {
	// UserID is the employee id of the record's owner, not a login account id.
	// The wire name stays userId for existing clients.
	UserID       string  `json:"userId" validate:"required"`
	Date         string  `json:"date" validate:"required,date"`
	CheckInTime  string  `json:"checkInTime" validate:"required,clock"`
	CheckOutTime *string `json:"checkOutTime,omitempty" validate:"omitempty,clock"`
	Note         *string `json:"note,omitempty" validate:"omitempty,max=1000"`
}

func (r *ManualAttendanceRequest) Validate() error {
	return validator.Struct(r)
}

// ========================================
// REPORT DTOs
// ========================================

type EmployeeSummary struct {
	ID             string  `json:"id"`
	EmployeeCode   string  `json:"employeeCode"`
	FullName       string  `json:"fullName"`
	DepartmentID   *string `json:"departmentId,omitempty"`
	DepartmentName *string `json:"departmentName,omitempty"`
	Position       *string `json:"position,omitempty"`
	Role           string  `json:"role"`
}

type LeaveDetail struct {
	ID        string  `json:"id"`
	LeaveType string  `json:"leaveType"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Reason    *string `json:"reason,omitempty"`
}

// DailyReportRow summarises one employee for one calendar day.
type DailyReportRow struct {
	Employee      EmployeeSummary      `json:"employee"`
	Status        DayStatus            `json:"status"`
	TotalDuration int64                `json:"totalDuration"` // milliseconds
	Records       []AttendanceResponse `json:"records"`
	Leave         *LeaveDetail         `json:"leave,omitempty"`
}

type AttendanceStats struct {
	PresentDays  int `json:"presentDays"`
	Absences     int `json:"absences"`
	LateArrivals int `json:"lateArrivals"`
	Leaves       int `json:"leaves"`
}

type MonthlyReportRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	StartDate  string `json:"startDate" validate:"required,date"`
	EndDate    string `json:"endDate" validate:"required,date"`
}

const maxReportDays = 62

// Validate checks field formats and the range itself.
func (r *MonthlyReportRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}

	start, _ := time.Parse("2006-01-02", r.StartDate)
	end, _ := time.Parse("2006-01-02", r.EndDate)
	if end.Before(start) {
		return ErrInvalidDateRange
	}
	if int(end.Sub(start).Hours()/24)+1 > maxReportDays {
		return ErrDateRangeTooLong
	}
	return nil
}

type MonthlyReport struct {
	Employee    EmployeeSummary      `json:"employee"`
	StartDate   string               `json:"startDate"`
	EndDate     string               `json:"endDate"`
	GeneratedAt string               `json:"generatedAt"`
	Summary     MonthlyReportSummary `json:"summary"`
	Days        []MonthlyReportDay   `json:"days"`
}

type MonthlyReportSummary struct {
	PresentDays     int             `json:"presentDays"`
	LeaveDays       int             `json:"leaveDays"`
	AbsentDays      int             `json:"absentDays"`
	NotRequiredDays int             `json:"notRequiredDays"`
	LateArrivals    int             `json:"lateArrivals"`
	TotalDuration   int64           `json:"totalDuration"` // milliseconds
	TotalHours      decimal.Decimal `json:"totalHours"`
}

type MonthlyReportDay struct {
	Date          string               `json:"date"`
	DayOfWeek     string               `json:"dayOfWeek"`
	Status        DayStatus            `json:"status"`
	FirstCheckIn  *string              `json:"firstCheckIn,omitempty"`
	LastCheckOut  *string              `json:"lastCheckOut,omitempty"`
	IsLate        bool                 `json:"isLate"`
	TotalDuration int64                `json:"totalDuration"` // milliseconds
	Records       []AttendanceResponse `json:"records"`
	Leave         *LeaveDetail         `json:"leave,omitempty"`
}

// ========================================
// SWEEP
// ========================================

type SweepResult struct {
	Processed    int       `json:"processed"`
	PunchOutTime time.Time `json:"punchOutTime"`
}

// ========================================
// LIVE EVENTS
// ========================================

const (
	EventPunchedIn  = "attendance.punched_in"
	EventPunchedOut = "attendance.punched_out"
	EventSwept      = "attendance.swept"

	// LiveTopic is the hub topic dashboards subscribe to.
	LiveTopic = "attendance"
)
