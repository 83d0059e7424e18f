package attendance

import (
	"time"
)

type Location string

const (
	LocationOffice     Location = "OFFICE"
	LocationHome       Location = "HOME"
	LocationSystemAuto Location = "SYSTEM_AUTO"
)

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusLate    Status = "LATE"
)

// Source records how a row was created. Only PUNCH rows take part in the
// one-open-session-per-employee-per-day constraint.
type Source string

const (
	SourcePunch  Source = "PUNCH"
	SourceManual Source = "MANUAL"
)

// DayStatus is the per-employee classification used by reports.
type DayStatus string

const (
	DayStatusPresent     DayStatus = "PRESENT"
	DayStatusOnLeave     DayStatus = "ON_LEAVE"
	DayStatusNotRequired DayStatus = "NOT_REQUIRED"
	DayStatusAbsent      DayStatus = "ABSENT"
)

const AutoCloseNotes = "System Auto Punch-out (Midnight Reset)"

// Attendance is one physical work session. It is open while CheckOutTime is nil.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time

	CheckInTime      time.Time
	CheckInLocation  Location
	CheckInIP        *string
	CheckInProjectID *string
	CheckInTask      *string
	CheckInNotes     *string

	CheckOutTime      *time.Time
	CheckOutLocation  *Location
	CheckOutIP        *string
	CheckOutProjectID *string
	CheckOutTask      *string
	CheckOutNotes     *string

	Status    Status
	Source    Source
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

func (a Attendance) IsOpen() bool {
	return a.CheckOutTime == nil
}

// Duration is derived, never stored. Open sessions contribute zero.
func (a Attendance) Duration() time.Duration {
	if a.CheckOutTime == nil {
		return 0
	}
	return a.CheckOutTime.Sub(a.CheckInTime)
}
