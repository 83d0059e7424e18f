package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// ListApprovedOverlapping implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListApprovedOverlapping(ctx context.Context, employeeID *string, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
			   lr.reason, lr.status, lr.created_at, lr.updated_at
		FROM leave_requests lr
		WHERE lr.status = $1
		  AND lr.start_date <= $3::date
		  AND lr.end_date >= $2::date`
	args := []interface{}{leave.LeaveRequestStatusApproved, from.Format("2006-01-02"), to.Format("2006-01-02")}

	if employeeID != nil {
		query += ` AND lr.employee_id = $4`
		args = append(args, *employeeID)
	}
	query += ` ORDER BY lr.start_date ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		err := rows.Scan(
			&lr.ID,
			&lr.EmployeeID,
			&lr.LeaveType,
			&lr.StartDate,
			&lr.EndDate,
			&lr.Reason,
			&lr.Status,
			&lr.CreatedAt,
			&lr.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
