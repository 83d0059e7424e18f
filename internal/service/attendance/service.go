package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/setting"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/user"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/sse"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"

	recentLimit = 30
)

type AttendanceServiceImpl struct {
	transactor database.Transactor
	attendance.AttendanceRepository
	employee.EmployeeRepository
	leave.LeaveRequestRepository
	settingService setting.SettingService
	hub            *sse.Hub

	loc           *time.Location
	lateAfterMins int
	now           func() time.Time
}

type Option func(*AttendanceServiceImpl)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *AttendanceServiceImpl) { s.now = now }
}

// WithLocation sets the zone that defines calendar days.
func WithLocation(loc *time.Location) Option {
	return func(s *AttendanceServiceImpl) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithLateThreshold sets the local time of day after which a check-in is late.
func WithLateThreshold(hour, minute int) Option {
	return func(s *AttendanceServiceImpl) { s.lateAfterMins = hour*60 + minute }
}

// WithHub publishes punch and sweep events to the live feed.
func WithHub(hub *sse.Hub) Option {
	return func(s *AttendanceServiceImpl) { s.hub = hub }
}

func NewAttendanceService(
	transactor database.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRequestRepository,
	settingService setting.SettingService,
	opts ...Option,
) attendance.AttendanceService {
	s := &AttendanceServiceImpl{
		transactor:             transactor,
		AttendanceRepository:   attendanceRepo,
		EmployeeRepository:     employeeRepo,
		LeaveRequestRepository: leaveRepo,
		settingService:         settingService,
		loc:                    time.Local,
		lateAfterMins:          9*60 + 15,
		now:                    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PunchIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchIn(ctx context.Context, caller user.Caller, req attendance.PunchRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if caller.EmployeeID == "" {
		return attendance.AttendanceResponse{}, user.ErrEmployeeProfileRequired
	}

	now := s.now().In(s.loc)
	today := s.startOfDay(now)

	var created attendance.Attendance
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.AttendanceRepository.LockEmployee(ctx, caller.EmployeeID); err != nil {
			return err
		}

		open, err := s.AttendanceRepository.FindOpenSince(ctx, caller.EmployeeID, today)
		if err != nil {
			return fmt.Errorf("failed to check open session: %w", err)
		}
		if open != nil {
			return attendance.ErrAlreadyPunchedIn
		}

		switch req.Location {
		case attendance.LocationHome:
			emp, err := s.EmployeeRepository.GetByID(ctx, caller.EmployeeID)
			if err != nil {
				return fmt.Errorf("failed to load employee profile: %w", err)
			}
			if !emp.WorkOutsideOfficeAllowed {
				return attendance.ErrLocationNotAllowed
			}
		case attendance.LocationOffice:
			allowed, err := s.settingService.AllowedOfficeIPs(ctx)
			if err != nil {
				return fmt.Errorf("failed to load office allow-list: %w", err)
			}
			if len(allowed) > 0 && !validator.IsInSlice(req.IPAddress, allowed) {
				return attendance.ErrIPNotAllowed
			}
		}

		created, err = s.AttendanceRepository.Create(ctx, attendance.Attendance{
			EmployeeID:       caller.EmployeeID,
			Date:             today,
			CheckInTime:      now,
			CheckInLocation:  req.Location,
			CheckInIP:        optionalString(req.IPAddress),
			CheckInProjectID: req.ProjectID,
			CheckInTask:      req.Task,
			CheckInNotes:     req.Notes,
			Status:           attendance.StatusPresent,
			Source:           attendance.SourcePunch,
		})
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	resp := s.toResponse(created)
	s.publish(attendance.EventPunchedIn, resp)
	return resp, nil
}

// PunchOut implements attendance.AttendanceService.
// Punch-out skips the location and network checks.
func (s *AttendanceServiceImpl) PunchOut(ctx context.Context, caller user.Caller, req attendance.PunchRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if caller.EmployeeID == "" {
		return attendance.AttendanceResponse{}, user.ErrEmployeeProfileRequired
	}

	now := s.now().In(s.loc)

	var closed attendance.Attendance
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.AttendanceRepository.LockEmployee(ctx, caller.EmployeeID); err != nil {
			return err
		}

		open, err := s.AttendanceRepository.GetLatestOpen(ctx, caller.EmployeeID)
		if err != nil {
			if errors.Is(err, attendance.ErrAttendanceNotFound) {
				return attendance.ErrNoActiveSession
			}
			return fmt.Errorf("failed to get open session: %w", err)
		}

		location := req.Location
		open.CheckOutTime = &now
		open.CheckOutLocation = &location
		open.CheckOutIP = optionalString(req.IPAddress)
		open.CheckOutProjectID = req.ProjectID
		open.CheckOutTask = req.Task
		open.CheckOutNotes = req.Notes

		closed, err = s.AttendanceRepository.CheckOut(ctx, open)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	resp := s.toResponse(closed)
	s.publish(attendance.EventPunchedOut, resp)
	return resp, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, caller user.Caller) ([]attendance.AttendanceResponse, error) {
	if caller.EmployeeID == "" {
		return nil, user.ErrEmployeeProfileRequired
	}

	records, err := s.AttendanceRepository.ListRecent(ctx, caller.EmployeeID, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return s.toResponses(records), nil
}

// GetAttendanceStats implements attendance.AttendanceService.
// Absences are not computed yet and always report zero.
func (s *AttendanceServiceImpl) GetAttendanceStats(ctx context.Context, caller user.Caller) (attendance.AttendanceStats, error) {
	if caller.EmployeeID == "" {
		return attendance.AttendanceStats{}, user.ErrEmployeeProfileRequired
	}

	now := s.now().In(s.loc)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.loc)
	monthEnd := endOfDay(monthStart.AddDate(0, 1, -1))

	var (
		records []attendance.Attendance
		leaves  []leave.LeaveRequest
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.AttendanceRepository.ListByCheckIn(gctx, caller.EmployeeID, monthStart, monthEnd)
		if err != nil {
			return fmt.Errorf("failed to list monthly attendance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		employeeID := caller.EmployeeID
		leaves, err = s.LeaveRequestRepository.ListApprovedOverlapping(gctx, &employeeID, monthStart, monthEnd)
		if err != nil {
			return fmt.Errorf("failed to list monthly leaves: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return attendance.AttendanceStats{}, err
	}

	stats := attendance.AttendanceStats{PresentDays: len(records)}
	for _, rec := range records {
		if s.isLate(rec.CheckInTime) {
			stats.LateArrivals++
		}
	}
	for _, lv := range leaves {
		if s.normalizeLeave(lv).Within(monthStart, monthEnd) {
			stats.Leaves++
		}
	}
	return stats, nil
}

// GetDailyReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDailyReport(ctx context.Context, caller user.Caller, date string) ([]attendance.DailyReportRow, error) {
	if !caller.Can(user.PermissionAttendanceReportDaily) {
		return nil, user.ErrInsufficientPermissions
	}

	day, err := s.parseDay("date", date)
	if err != nil {
		return nil, err
	}
	dayEnd := endOfDay(day)

	var departmentID *string
	if caller.IsDepartmentScoped() {
		if caller.DepartmentID == "" {
			return []attendance.DailyReportRow{}, nil
		}
		dept := caller.DepartmentID
		departmentID = &dept
	}

	var (
		employees []employee.Employee
		records   []attendance.Attendance
		leaves    []leave.LeaveRequest
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.EmployeeRepository.List(gctx, departmentID)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = s.AttendanceRepository.ListOverlapping(gctx, nil, day, dayEnd)
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		leaves, err = s.LeaveRequestRepository.ListApprovedOverlapping(gctx, nil, day, dayEnd)
		if err != nil {
			return fmt.Errorf("failed to list leaves: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if day.After(s.startOfDay(s.now().In(s.loc))) {
		records = nil
	}

	recordsByEmployee := make(map[string][]attendance.Attendance)
	for _, rec := range records {
		recordsByEmployee[rec.EmployeeID] = append(recordsByEmployee[rec.EmployeeID], rec)
	}
	leaveByEmployee := make(map[string]leave.LeaveRequest)
	for _, lv := range leaves {
		if _, seen := leaveByEmployee[lv.EmployeeID]; !seen {
			leaveByEmployee[lv.EmployeeID] = s.normalizeLeave(lv)
		}
	}

	rows := make([]attendance.DailyReportRow, 0, len(employees))
	for _, emp := range employees {
		empRecords := recordsByEmployee[emp.ID]
		var lv *leave.LeaveRequest
		if l, ok := leaveByEmployee[emp.ID]; ok {
			lv = &l
		}

		rows = append(rows, attendance.DailyReportRow{
			Employee:      toEmployeeSummary(emp),
			Status:        classifyDay(len(empRecords) > 0, lv != nil, emp.AttendanceRequired),
			TotalDuration: totalDurationMs(empRecords),
			Records:       s.toResponses(empRecords),
			Leave:         toLeaveDetail(lv),
		})
	}
	return rows, nil
}

// AddManualAttendance implements attendance.AttendanceService.
// The open-session check is skipped so historical records can always be inserted.
func (s *AttendanceServiceImpl) AddManualAttendance(ctx context.Context, caller user.Caller, req attendance.ManualAttendanceRequest) (attendance.AttendanceResponse, error) {
	if !caller.Can(user.PermissionAttendanceManual) {
		return attendance.AttendanceResponse{}, user.ErrInsufficientPermissions
	}
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	day, err := s.parseDay("date", req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	checkIn, err := combineDateClock(day, req.CheckInTime)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record := attendance.Attendance{
		EmployeeID:      req.UserID,
		Date:            day,
		CheckInTime:     checkIn,
		CheckInLocation: attendance.LocationOffice,
		CheckInNotes:    req.Note,
		Status:          attendance.StatusPresent,
		Source:          attendance.SourceManual,
	}

	if req.CheckOutTime != nil {
		checkOut, err := combineDateClock(day, *req.CheckOutTime)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		if checkOut.Before(checkIn) {
			return attendance.AttendanceResponse{}, validator.ValidationErrors{{
				Field:   "checkOutTime",
				Message: "checkOutTime must not be before checkInTime",
			}}
		}
		location := attendance.LocationOffice
		record.CheckOutTime = &checkOut
		record.CheckOutLocation = &location
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.UserID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}
	record.EmployeeName = &emp.FullName

	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slog.Info("Manual attendance added",
		"employee_id", created.EmployeeID,
		"attendance_id", created.ID,
		"added_by", caller.UserID)

	return s.toResponse(created), nil
}

// GetEmployeeMonthlyReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeMonthlyReport(ctx context.Context, caller user.Caller, req attendance.MonthlyReportRequest) (attendance.MonthlyReport, error) {
	if !caller.Can(user.PermissionAttendanceReportMonthly) {
		return attendance.MonthlyReport{}, user.ErrInsufficientPermissions
	}
	if err := req.Validate(); err != nil {
		return attendance.MonthlyReport{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.MonthlyReport{}, fmt.Errorf("failed to load employee: %w", err)
	}
	if !caller.InScope(emp.DepartmentID) {
		return attendance.MonthlyReport{}, user.ErrOutOfScope
	}

	start, err := s.parseDay("startDate", req.StartDate)
	if err != nil {
		return attendance.MonthlyReport{}, err
	}
	end, err := s.parseDay("endDate", req.EndDate)
	if err != nil {
		return attendance.MonthlyReport{}, err
	}
	rangeEnd := endOfDay(end)

	var (
		records []attendance.Attendance
		leaves  []leave.LeaveRequest
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.AttendanceRepository.ListOverlapping(gctx, []string{emp.ID}, start, rangeEnd)
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		employeeID := emp.ID
		leaves, err = s.LeaveRequestRepository.ListApprovedOverlapping(gctx, &employeeID, start, rangeEnd)
		if err != nil {
			return fmt.Errorf("failed to list leaves: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return attendance.MonthlyReport{}, err
	}

	sort.Slice(records, func(i, j int) bool { return records[i].CheckInTime.Before(records[j].CheckInTime) })
	for i := range leaves {
		leaves[i] = s.normalizeLeave(leaves[i])
	}

	report := attendance.MonthlyReport{
		Employee:    toEmployeeSummary(emp),
		StartDate:   start.Format(dateLayout),
		EndDate:     end.Format(dateLayout),
		GeneratedAt: s.formatTime(s.now()),
		Days:        make([]attendance.MonthlyReportDay, 0),
	}

	today := s.startOfDay(s.now().In(s.loc))
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dayEnd := endOfDay(d)

		// An open session overlaps every later day; days that have not started yet get none.
		var dayRecords []attendance.Attendance
		for _, rec := range records {
			if !d.After(today) && overlaps(rec, d, dayEnd) {
				dayRecords = append(dayRecords, rec)
			}
		}

		var lv *leave.LeaveRequest
		for i := range leaves {
			if leaves[i].Covers(d, dayEnd) {
				lv = &leaves[i]
				break
			}
		}

		day := attendance.MonthlyReportDay{
			Date:          d.Format(dateLayout),
			DayOfWeek:     d.Weekday().String(),
			Status:        classifyDay(len(dayRecords) > 0, lv != nil, emp.AttendanceRequired),
			TotalDuration: totalDurationMs(dayRecords),
			Records:       s.toResponses(dayRecords),
			Leave:         toLeaveDetail(lv),
		}

		for _, rec := range dayRecords {
			if rec.CheckInTime.Before(d) {
				continue
			}
			if day.FirstCheckIn == nil {
				first := s.formatTime(rec.CheckInTime)
				day.FirstCheckIn = &first
				day.IsLate = s.isLate(rec.CheckInTime)
			}
		}
		var lastOut *time.Time
		for _, rec := range dayRecords {
			if rec.CheckOutTime != nil && (lastOut == nil || rec.CheckOutTime.After(*lastOut)) {
				lastOut = rec.CheckOutTime
			}
		}
		if lastOut != nil {
			last := s.formatTime(*lastOut)
			day.LastCheckOut = &last
		}

		switch day.Status {
		case attendance.DayStatusPresent:
			report.Summary.PresentDays++
		case attendance.DayStatusOnLeave:
			report.Summary.LeaveDays++
		case attendance.DayStatusNotRequired:
			report.Summary.NotRequiredDays++
		case attendance.DayStatusAbsent:
			report.Summary.AbsentDays++
		}
		if day.IsLate {
			report.Summary.LateArrivals++
		}

		report.Days = append(report.Days, day)
	}

	// Sessions spanning midnight appear on two days but count once here.
	report.Summary.TotalDuration = totalDurationMs(records)
	report.Summary.TotalHours = decimal.NewFromInt(report.Summary.TotalDuration).
		Div(decimal.NewFromInt(int64(time.Hour / time.Millisecond))).
		Round(2)

	return report, nil
}

// AutoCloseOpenSessions implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) AutoCloseOpenSessions(ctx context.Context) (attendance.SweepResult, error) {
	now := s.now().In(s.loc)
	today := s.startOfDay(now)
	punchOutTime := today.Add(-time.Millisecond)

	closed, err := s.AttendanceRepository.CloseOpenBefore(ctx, today, punchOutTime, attendance.AutoCloseNotes)
	if err != nil {
		return attendance.SweepResult{}, fmt.Errorf("failed to close open sessions: %w", err)
	}

	result := attendance.SweepResult{
		Processed:    len(closed),
		PunchOutTime: punchOutTime,
	}
	if result.Processed > 0 {
		s.publish(attendance.EventSwept, result)
	}
	return result, nil
}

func (s *AttendanceServiceImpl) publish(event string, data interface{}) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(attendance.LiveTopic, sse.Event{Event: event, Data: data})
}

func (s *AttendanceServiceImpl) startOfDay(t time.Time) time.Time {
	local := t.In(s.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
}

func endOfDay(day time.Time) time.Time {
	return day.AddDate(0, 0, 1).Add(-time.Millisecond)
}

// parseDay reads YYYY-MM-DD as local midnight. Empty means today.
func (s *AttendanceServiceImpl) parseDay(field, value string) (time.Time, error) {
	if value == "" {
		return s.startOfDay(s.now()), nil
	}
	day, err := time.ParseInLocation(dateLayout, value, s.loc)
	if err != nil {
		return time.Time{}, validator.ValidationErrors{{
			Field:   field,
			Message: field + " must be in YYYY-MM-DD format",
		}}
	}
	return day, nil
}

func combineDateClock(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return time.Time{}, validator.ValidationErrors{{Field: "time", Message: "time must be in HH:MM format"}}
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

// normalizeLeave moves calendar dates onto local midnight; the store returns them in UTC.
func (s *AttendanceServiceImpl) normalizeLeave(lv leave.LeaveRequest) leave.LeaveRequest {
	sy, sm, sd := lv.StartDate.Date()
	ey, em, ed := lv.EndDate.Date()
	lv.StartDate = time.Date(sy, sm, sd, 0, 0, 0, 0, s.loc)
	lv.EndDate = time.Date(ey, em, ed, 0, 0, 0, 0, s.loc)
	return lv
}

func (s *AttendanceServiceImpl) isLate(checkIn time.Time) bool {
	local := checkIn.In(s.loc)
	return local.Hour()*60+local.Minute() > s.lateAfterMins
}

func overlaps(rec attendance.Attendance, from, to time.Time) bool {
	if rec.CheckInTime.After(to) {
		return false
	}
	return rec.CheckOutTime == nil || !rec.CheckOutTime.Before(from)
}

// classifyDay applies PRESENT > ON_LEAVE > NOT_REQUIRED > ABSENT.
func classifyDay(hasRecords, onLeave, attendanceRequired bool) attendance.DayStatus {
	switch {
	case hasRecords:
		return attendance.DayStatusPresent
	case onLeave:
		return attendance.DayStatusOnLeave
	case !attendanceRequired:
		return attendance.DayStatusNotRequired
	default:
		return attendance.DayStatusAbsent
	}
}

func totalDurationMs(records []attendance.Attendance) int64 {
	var total int64
	for _, rec := range records {
		total += rec.Duration().Milliseconds()
	}
	return total
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (s *AttendanceServiceImpl) formatTime(t time.Time) string {
	return t.In(s.loc).Format(time.RFC3339)
}

func (s *AttendanceServiceImpl) formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := s.formatTime(*t)
	return &formatted
}

func (s *AttendanceServiceImpl) toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	var checkOutLocation *string
	if att.CheckOutLocation != nil {
		loc := string(*att.CheckOutLocation)
		checkOutLocation = &loc
	}

	var durationMs *int64
	if !att.IsOpen() {
		ms := att.Duration().Milliseconds()
		durationMs = &ms
	}

	return attendance.AttendanceResponse{
		ID:                att.ID,
		EmployeeID:        att.EmployeeID,
		EmployeeName:      att.EmployeeName,
		Date:              att.Date.Format(dateLayout),
		CheckInTime:       s.formatTime(att.CheckInTime),
		CheckInLocation:   att.CheckInLocation,
		CheckInIPAddress:  att.CheckInIP,
		CheckInProjectID:  att.CheckInProjectID,
		CheckInTask:       att.CheckInTask,
		CheckInNotes:      att.CheckInNotes,
		CheckOutTime:      s.formatTimePtr(att.CheckOutTime),
		CheckOutLocation:  checkOutLocation,
		CheckOutIPAddress: att.CheckOutIP,
		CheckOutProjectID: att.CheckOutProjectID,
		CheckOutTask:      att.CheckOutTask,
		CheckOutNotes:     att.CheckOutNotes,
		DurationMs:        durationMs,
		Status:            att.Status,
		Source:            att.Source,
		CreatedAt:         s.formatTime(att.CreatedAt),
		UpdatedAt:         s.formatTime(att.UpdatedAt),
	}
}

func (s *AttendanceServiceImpl) toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, s.toResponse(rec))
	}
	return responses
}

func toEmployeeSummary(emp employee.Employee) attendance.EmployeeSummary {
	return attendance.EmployeeSummary{
		ID:             emp.ID,
		EmployeeCode:   emp.EmployeeCode,
		FullName:       emp.FullName,
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		Position:       emp.Position,
		Role:           string(emp.Role),
	}
}

func toLeaveDetail(lv *leave.LeaveRequest) *attendance.LeaveDetail {
	if lv == nil {
		return nil
	}
	return &attendance.LeaveDetail{
		ID:        lv.ID,
		LeaveType: lv.LeaveType,
		StartDate: lv.StartDate.Format(dateLayout),
		EndDate:   lv.EndDate.Format(dateLayout),
		Reason:    lv.Reason,
	}
}
