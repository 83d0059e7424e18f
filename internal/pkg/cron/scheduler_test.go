package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceService struct {
	attendance.AttendanceService
	calls  int
	result attendance.SweepResult
	err    error
}

func (s *stubAttendanceService) AutoCloseOpenSessions(ctx context.Context) (attendance.SweepResult, error) {
	s.calls++
	return s.result, s.err
}

func TestScheduler_AddJobRejectsBadSpec(t *testing.T) {
	s := NewScheduler(time.UTC)
	err := s.AddJob(Job{Name: "bad", Spec: "every day", Fn: func(ctx context.Context) error { return nil }})
	assert.Error(t, err)
}

func TestScheduler_FailedRunDoesNotStopLaterRuns(t *testing.T) {
	stub := &stubAttendanceService{err: errors.New("db down")}
	s := NewScheduler(time.UTC)
	require.NoError(t, NewAttendanceJobs(stub, "").RegisterJobs(s))

	s.RunOnce(context.Background())
	stub.err = nil
	stub.result = attendance.SweepResult{Processed: 3}
	s.RunOnce(context.Background())

	assert.Equal(t, 2, stub.calls)
}

func TestScheduler_PanicInJobIsContained(t *testing.T) {
	s := NewScheduler(time.UTC)
	ran := make(chan struct{}, 1)
	require.NoError(t, s.AddJob(Job{
		Name: "panics",
		Spec: "* * * * * *",
		Fn: func(ctx context.Context) error {
			ran <- struct{}{}
			panic("boom")
		},
	}))

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
}

func TestAttendanceJobs_DefaultSpec(t *testing.T) {
	jobs := NewAttendanceJobs(&stubAttendanceService{}, "")
	assert.Equal(t, DefaultSweepSpec, jobs.sweepSpec)
}
