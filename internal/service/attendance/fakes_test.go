package attendance

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/setting"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// serialTransactor stands in for the advisory lock by running one transaction at a time.
type serialTransactor struct {
	mu sync.Mutex
}

func (t *serialTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(ctx)
}

type memoryAttendanceRepo struct {
	mu       sync.Mutex
	records  []attendance.Attendance
	seq      int
	closeErr error
}

func (m *memoryAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if a.Source == attendance.SourcePunch && a.IsOpen() {
		for _, r := range m.records {
			if r.EmployeeID == a.EmployeeID && r.Source == attendance.SourcePunch && r.IsOpen() && r.Date.Equal(a.Date) {
				return attendance.Attendance{}, attendance.ErrAlreadyPunchedIn
			}
		}
	}

	m.seq++
	a.ID = fmt.Sprintf("att-%03d", m.seq)
	a.CreatedAt = a.CheckInTime
	a.UpdatedAt = a.CheckInTime
	m.records = append(m.records, a)
	return a, nil
}

func (m *memoryAttendanceRepo) LockEmployee(ctx context.Context, employeeID string) error {
	return nil
}

func (m *memoryAttendanceRepo) FindOpenSince(ctx context.Context, employeeID string, since time.Time) (*attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.records {
		if r.EmployeeID == employeeID && r.IsOpen() && !r.Date.Before(since) {
			found := r
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memoryAttendanceRepo) GetLatestOpen(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var latest *attendance.Attendance
	for i := range m.records {
		r := m.records[i]
		if r.EmployeeID == employeeID && r.IsOpen() && (latest == nil || r.CheckInTime.After(latest.CheckInTime)) {
			latest = &r
		}
	}
	if latest == nil {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return *latest, nil
}

func (m *memoryAttendanceRepo) CheckOut(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.records {
		if m.records[i].ID != a.ID {
			continue
		}
		if !m.records[i].IsOpen() {
			return attendance.Attendance{}, attendance.ErrNoActiveSession
		}
		a.UpdatedAt = *a.CheckOutTime
		m.records[i] = a
		return a, nil
	}
	return attendance.Attendance{}, attendance.ErrNoActiveSession
}

func (m *memoryAttendanceRepo) ListOverlapping(ctx context.Context, employeeIDs []string, from, to time.Time) ([]attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []attendance.Attendance
	for _, r := range m.records {
		if employeeIDs != nil && !contains(employeeIDs, r.EmployeeID) {
			continue
		}
		if overlaps(r, from, to) {
			out = append(out, r)
		}
	}
	sortByCheckIn(out)
	return out, nil
}

func (m *memoryAttendanceRepo) ListByCheckIn(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []attendance.Attendance
	for _, r := range m.records {
		if r.EmployeeID == employeeID && !r.CheckInTime.Before(from) && !r.CheckInTime.After(to) {
			out = append(out, r)
		}
	}
	sortByCheckIn(out)
	return out, nil
}

func (m *memoryAttendanceRepo) ListRecent(ctx context.Context, employeeID string, limit int) ([]attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []attendance.Attendance
	for _, r := range m.records {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckInTime.After(out[j].CheckInTime) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryAttendanceRepo) CloseOpenBefore(ctx context.Context, cutoff time.Time, closeAt time.Time, notes string) ([]attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closeErr != nil {
		return nil, m.closeErr
	}

	var closed []attendance.Attendance
	for i := range m.records {
		r := &m.records[i]
		if !r.IsOpen() || !r.CheckInTime.Before(cutoff) {
			continue
		}
		at := closeAt
		loc := attendance.LocationSystemAuto
		n := notes
		r.CheckOutTime = &at
		r.CheckOutLocation = &loc
		r.CheckOutNotes = &n
		r.Status = attendance.StatusPresent
		closed = append(closed, *r)
	}
	return closed, nil
}

func (m *memoryAttendanceRepo) get(id string) attendance.Attendance {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.ID == id {
			return r
		}
	}
	return attendance.Attendance{}
}

func (m *memoryAttendanceRepo) openCount(employeeID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, r := range m.records {
		if r.EmployeeID == employeeID && r.IsOpen() {
			n++
		}
	}
	return n
}

type memoryEmployeeRepo struct {
	employees []employee.Employee
}

func (m *memoryEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range m.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (m *memoryEmployeeRepo) List(ctx context.Context, departmentID *string) ([]employee.Employee, error) {
	if departmentID != nil && *departmentID == "" {
		return nil, errors.New("invalid input syntax for type uuid: \"\"")
	}
	var out []employee.Employee
	for _, e := range m.employees {
		if departmentID != nil && (e.DepartmentID == nil || *e.DepartmentID != *departmentID) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// memoryLeaveRepo returns dates at UTC midnight, as the database driver does.
type memoryLeaveRepo struct {
	requests []leave.LeaveRequest
}

func (m *memoryLeaveRepo) ListApprovedOverlapping(ctx context.Context, employeeID *string, from, to time.Time) ([]leave.LeaveRequest, error) {
	fromDay, toDay := from.Format("2006-01-02"), to.Format("2006-01-02")

	var out []leave.LeaveRequest
	for _, lr := range m.requests {
		if lr.Status != leave.LeaveRequestStatusApproved {
			continue
		}
		if employeeID != nil && lr.EmployeeID != *employeeID {
			continue
		}
		if lr.StartDate.Format("2006-01-02") <= toDay && lr.EndDate.Format("2006-01-02") >= fromDay {
			out = append(out, lr)
		}
	}
	return out, nil
}

type memorySettingRepo struct {
	mu     sync.Mutex
	values map[string]string
}

func (m *memorySettingRepo) Get(ctx context.Context, key string) (setting.Setting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return setting.Setting{}, setting.ErrSettingNotFound
	}
	return setting.Setting{Key: key, Value: v}, nil
}

func (m *memorySettingRepo) List(ctx context.Context) ([]setting.Setting, error) {
	return nil, nil
}

func (m *memorySettingRepo) Upsert(ctx context.Context, s setting.Setting) (setting.Setting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[s.Key] = s.Value
	return s, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func sortByCheckIn(records []attendance.Attendance) {
	sort.Slice(records, func(i, j int) bool { return records[i].CheckInTime.Before(records[j].CheckInTime) })
}
