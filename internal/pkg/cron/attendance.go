package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
)

// DefaultSweepSpec fires at 00:00:01 every day.
const DefaultSweepSpec = "1 0 0 * * *"

type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
	sweepSpec         string
}

func NewAttendanceJobs(attendanceService attendance.AttendanceService, sweepSpec string) *AttendanceJobs {
	if sweepSpec == "" {
		sweepSpec = DefaultSweepSpec
	}
	return &AttendanceJobs{
		attendanceService: attendanceService,
		sweepSpec:         sweepSpec,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) error {
	return scheduler.AddJob(Job{
		Name:    "auto_close_open_attendances",
		Spec:    j.sweepSpec,
		Timeout: 5 * time.Minute,
		Fn:      j.AutoCloseOpenAttendances,
	})
}

// AutoCloseOpenAttendances closes every session left open from a previous day.
func (j *AttendanceJobs) AutoCloseOpenAttendances(ctx context.Context) error {
	slog.Info("Cron: Starting midnight attendance auto-close")

	result, err := j.attendanceService.AutoCloseOpenSessions(ctx)
	if err != nil {
		return fmt.Errorf("auto-close open attendances: %w", err)
	}

	slog.Info("Cron: Auto-closed open attendances",
		"count", result.Processed,
		"punch_out_time", result.PunchOutTime)
	return nil
}
