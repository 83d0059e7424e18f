package leave

import (
	"time"
)

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "PENDING"
	LeaveRequestStatusApproved LeaveRequestStatus = "APPROVED"
	LeaveRequestStatusRejected LeaveRequestStatus = "REJECTED"
)

// LeaveRequest entity. StartDate and EndDate are calendar days, both inclusive.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  string
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string
	Status     LeaveRequestStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Covers reports whether the leave spans any part of [from, to].
func (l LeaveRequest) Covers(from, to time.Time) bool {
	return !l.StartDate.After(to) && !l.EndDate.Before(from)
}

// Within reports whether the whole leave lies inside [from, to].
func (l LeaveRequest) Within(from, to time.Time) bool {
	return !l.StartDate.Before(from) && !l.EndDate.After(to)
}
