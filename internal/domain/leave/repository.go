package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	// ListApprovedOverlapping returns approved requests with startDate <= to AND endDate >= from.
	// A nil employeeID matches every employee.
	ListApprovedOverlapping(ctx context.Context, employeeID *string, from, to time.Time) ([]LeaveRequest, error)
}
