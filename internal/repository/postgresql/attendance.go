package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const attendanceColumns = `
	a.id, a.employee_id, a.date,
	a.check_in_time, a.check_in_location, a.check_in_ip, a.check_in_project_id, a.check_in_task, a.check_in_notes,
	a.check_out_time, a.check_out_location, a.check_out_ip, a.check_out_project_id, a.check_out_task, a.check_out_notes,
	a.status, a.source, a.created_at, a.updated_at,
	e.full_name`

const attendanceFrom = `
	FROM attendances a
	LEFT JOIN employees e ON e.id = a.employee_id`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date,
		&att.CheckInTime, &att.CheckInLocation, &att.CheckInIP, &att.CheckInProjectID, &att.CheckInTask, &att.CheckInNotes,
		&att.CheckOutTime, &att.CheckOutLocation, &att.CheckOutIP, &att.CheckOutProjectID, &att.CheckOutTask, &att.CheckOutNotes,
		&att.Status, &att.Source, &att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName,
	)
	return att, err
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}
	return attendances, nil
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	if newAttendance.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return attendance.Attendance{}, fmt.Errorf("failed to generate attendance id: %w", err)
		}
		newAttendance.ID = id.String()
	}
	if newAttendance.Source == "" {
		newAttendance.Source = attendance.SourcePunch
	}

	query := `
		INSERT INTO attendances (
			id, employee_id, date,
			check_in_time, check_in_location, check_in_ip, check_in_project_id, check_in_task, check_in_notes,
			check_out_time, check_out_location, check_out_ip, check_out_project_id, check_out_task, check_out_notes,
			status, source
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.ID,
		newAttendance.EmployeeID,
		newAttendance.Date,
		newAttendance.CheckInTime,
		newAttendance.CheckInLocation,
		newAttendance.CheckInIP,
		newAttendance.CheckInProjectID,
		newAttendance.CheckInTask,
		newAttendance.CheckInNotes,
		newAttendance.CheckOutTime,
		newAttendance.CheckOutLocation,
		newAttendance.CheckOutIP,
		newAttendance.CheckOutProjectID,
		newAttendance.CheckOutTask,
		newAttendance.CheckOutNotes,
		newAttendance.Status,
		newAttendance.Source,
	).Scan(&newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return attendance.Attendance{}, attendance.ErrAlreadyPunchedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// LockEmployee implements attendance.AttendanceRepository.
// Only meaningful inside a transaction; the lock is released on commit or rollback.
func (a *attendanceRepository) LockEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, a.db)

	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, employeeID); err != nil {
		return fmt.Errorf("failed to lock employee attendance: %w", err)
	}
	return nil
}

// FindOpenSince implements attendance.AttendanceRepository.
func (a *attendanceRepository) FindOpenSince(ctx context.Context, employeeID string, since time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + attendanceFrom + `
		WHERE a.employee_id = $1
		  AND a.date >= $2
		  AND a.check_out_time IS NULL
		ORDER BY a.check_in_time DESC
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, since))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open attendance: %w", err)
	}

	return &att, nil
}

// GetLatestOpen implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetLatestOpen(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + attendanceFrom + `
		WHERE a.employee_id = $1
		  AND a.check_out_time IS NULL
		ORDER BY a.check_in_time DESC
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get open session: %w", err)
	}

	return att, nil
}

// CheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) CheckOut(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_out_time = $1,
			check_out_location = $2,
			check_out_ip = $3,
			check_out_project_id = $4,
			check_out_task = $5,
			check_out_notes = $6,
			updated_at = NOW()
		WHERE id = $7
		  AND check_out_time IS NULL
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		att.CheckOutTime,
		att.CheckOutLocation,
		att.CheckOutIP,
		att.CheckOutProjectID,
		att.CheckOutTask,
		att.CheckOutNotes,
		att.ID,
	).Scan(&att.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNoActiveSession
		}
		return attendance.Attendance{}, fmt.Errorf("failed to check out attendance: %w", err)
	}

	return att, nil
}

// ListOverlapping implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListOverlapping(ctx context.Context, employeeIDs []string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + attendanceFrom + `
		WHERE a.check_in_time <= $2
		  AND (a.check_out_time >= $1 OR a.check_out_time IS NULL)`
	args := []interface{}{from, to}

	if employeeIDs != nil {
		query += ` AND a.employee_id = ANY($3)`
		args = append(args, employeeIDs)
	}
	query += ` ORDER BY a.check_in_time ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping attendances: %w", err)
	}
	return collectAttendances(rows)
}

// ListByCheckIn implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByCheckIn(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + attendanceFrom + `
		WHERE a.employee_id = $1
		  AND a.check_in_time >= $2
		  AND a.check_in_time <= $3
		ORDER BY a.check_in_time ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances by check-in: %w", err)
	}
	return collectAttendances(rows)
}

// ListRecent implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListRecent(ctx context.Context, employeeID string, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + attendanceFrom + `
		WHERE a.employee_id = $1
		ORDER BY a.check_in_time DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent attendances: %w", err)
	}
	return collectAttendances(rows)
}

// CloseOpenBefore implements attendance.AttendanceRepository.
func (a *attendanceRepository) CloseOpenBefore(ctx context.Context, cutoff time.Time, closeAt time.Time, notes string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		WITH closed AS (
			UPDATE attendances
			SET check_out_time = GREATEST($2, check_in_time),
				check_out_location = $3,
				check_out_notes = $4,
				status = $5,
				updated_at = NOW()
			WHERE check_out_time IS NULL
			  AND check_in_time < $1
			RETURNING *
		)
		SELECT ` + attendanceColumns + `
		FROM closed a
		LEFT JOIN employees e ON e.id = a.employee_id
		ORDER BY a.check_in_time ASC
	`

	rows, err := q.Query(ctx, query, cutoff, closeAt, attendance.LocationSystemAuto, notes, attendance.StatusPresent)
	if err != nil {
		return nil, fmt.Errorf("failed to close open attendances: %w", err)
	}
	return collectAttendances(rows)
}
