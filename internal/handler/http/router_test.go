package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/setting"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/user"
	"github.com/cmlabs-hris/attendance-engine/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/export"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/sse"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	handlerTestSecret    = "test-secret-key-for-jwt"
	handlerTestAccessExp = "1h"
)

type stubAttendanceService struct {
	attendance.AttendanceService

	lastCaller user.Caller
	lastPunch  attendance.PunchRequest
	err        error
	report     attendance.MonthlyReport
}

func (s *stubAttendanceService) PunchIn(ctx context.Context, caller user.Caller, req attendance.PunchRequest) (attendance.AttendanceResponse, error) {
	s.lastCaller, s.lastPunch = caller, req
	if s.err != nil {
		return attendance.AttendanceResponse{}, s.err
	}
	return attendance.AttendanceResponse{ID: "att-1", EmployeeID: caller.EmployeeID, Status: attendance.StatusPresent}, nil
}

func (s *stubAttendanceService) PunchOut(ctx context.Context, caller user.Caller, req attendance.PunchRequest) (attendance.AttendanceResponse, error) {
	s.lastCaller, s.lastPunch = caller, req
	return attendance.AttendanceResponse{}, s.err
}

func (s *stubAttendanceService) GetDailyReport(ctx context.Context, caller user.Caller, date string) ([]attendance.DailyReportRow, error) {
	s.lastCaller = caller
	return []attendance.DailyReportRow{}, s.err
}

func (s *stubAttendanceService) AddManualAttendance(ctx context.Context, caller user.Caller, req attendance.ManualAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.AttendanceResponse{ID: "att-2", Source: attendance.SourceManual}, nil
}

func (s *stubAttendanceService) GetEmployeeMonthlyReport(ctx context.Context, caller user.Caller, req attendance.MonthlyReportRequest) (attendance.MonthlyReport, error) {
	return s.report, s.err
}

type stubAuthService struct{}

func (stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	return auth.LoginResponse{}, auth.ErrInvalidCredentials
}

type stubSettingService struct {
	setting.SettingService
	saved setting.UpsertSettingRequest
}

func (s *stubSettingService) UpsertSetting(ctx context.Context, req setting.UpsertSettingRequest) (setting.SettingResponse, error) {
	s.saved = req
	return setting.SettingResponse{Key: req.Key, Value: req.Value}, nil
}

type testServer struct {
	router     http.Handler
	jwt        jwt.Service
	attendance *stubAttendanceService
	settings   *stubSettingService
	hub        *sse.Hub
}

func newTestServer() *testServer {
	jwtService := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp)
	ts := &testServer{
		jwt:        jwtService,
		attendance: &stubAttendanceService{},
		settings:   &stubSettingService{},
		hub:        sse.NewHub(),
	}
	ts.router = NewRouter(
		RouterConfig{AppName: "attendance-engine-test", Env: "test", AllowedOrigins: []string{"*"}, LogLevel: slog.LevelError},
		jwtService,
		NewAuthHandler(stubAuthService{}),
		NewAttendanceHandler(ts.attendance, ts.hub),
		NewSettingHandler(ts.settings),
	)
	return ts
}

func (ts *testServer) token(t *testing.T, role user.Role, employeeID string) string {
	t.Helper()
	u := user.User{ID: "user-" + string(role), Email: "x@example.com", Role: role}
	if employeeID != "" {
		u.EmployeeID = &employeeID
	}
	token, _, err := ts.jwt.GenerateAccessToken(u)
	require.NoError(t, err)
	return token
}

func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorDetail {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return *resp.Error
}

func TestPunchIn_RequiresToken(t *testing.T) {
	ts := newTestServer()

	rec := ts.do(t, http.MethodPost, "/api/v1/attendance/punch-in", "", map[string]string{"location": "OFFICE"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPunchIn_PassesCallerAndRemoteAddress(t *testing.T) {
	ts := newTestServer()
	token := ts.token(t, user.RoleEmployee, "emp-1")

	rec := ts.do(t, http.MethodPost, "/api/v1/attendance/punch-in", token, map[string]string{
		"location":  "OFFICE",
		"projectId": "PRJ-1",
		"task":      "reviews",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	assert.Equal(t, "emp-1", ts.attendance.lastCaller.EmployeeID)
	assert.Equal(t, user.RoleEmployee, ts.attendance.lastCaller.Role)
	assert.Equal(t, "192.0.2.1", ts.attendance.lastPunch.IPAddress)
	require.NotNil(t, ts.attendance.lastPunch.ProjectID)
	assert.Equal(t, "PRJ-1", *ts.attendance.lastPunch.ProjectID)
}

func TestPunch_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		err      error
		wantCode int
	}{
		{"already punched in", "/api/v1/attendance/punch-in", attendance.ErrAlreadyPunchedIn, http.StatusBadRequest},
		{"home not allowed", "/api/v1/attendance/punch-in", attendance.ErrLocationNotAllowed, http.StatusForbidden},
		{"ip not allowed", "/api/v1/attendance/punch-in", attendance.ErrIPNotAllowed, http.StatusForbidden},
		{"no active session", "/api/v1/attendance/punch-out", attendance.ErrNoActiveSession, http.StatusNotFound},
		{"validation", "/api/v1/attendance/punch-in", validator.ValidationErrors{{Field: "location", Message: "location is required"}}, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer()
			ts.attendance.err = tt.err

			rec := ts.do(t, http.MethodPost, tt.path, ts.token(t, user.RoleEmployee, "emp-1"), map[string]string{"location": "OFFICE"})
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.False(t, strings.Contains(rec.Body.String(), `"success":true`))
		})
	}
}

func TestPunchIn_MalformedBody(t *testing.T) {
	ts := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/punch-in", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+ts.token(t, user.RoleEmployee, "emp-1"))
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", decodeError(t, rec).Code)
}

func TestReport_PermissionEnforcedByRole(t *testing.T) {
	ts := newTestServer()

	rec := ts.do(t, http.MethodGet, "/api/v1/attendance/report?date=2024-03-01", ts.token(t, user.RoleEmployee, "emp-1"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/attendance/report?date=2024-03-01", ts.token(t, user.RoleManager, "emp-2"), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.RoleManager, ts.attendance.lastCaller.Role)

	ts.attendance.err = user.ErrOutOfScope
	rec = ts.do(t, http.MethodGet, "/api/v1/attendance/employee-monthly-report?employeeId=e&startDate=2024-03-01&endDate=2024-03-31", ts.token(t, user.RoleManager, "emp-2"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestManual_OnlyAdminAndHR(t *testing.T) {
	ts := newTestServer()
	body := map[string]string{"userId": "emp-1", "date": "2024-03-01", "checkInTime": "08:00"}

	rec := ts.do(t, http.MethodPost, "/api/v1/attendance/manual", ts.token(t, user.RoleManager, "emp-2"), body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/attendance/manual", ts.token(t, user.RoleHR, ""), body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	body["checkInTime"] = "8am"
	rec = ts.do(t, http.MethodPost, "/api/v1/attendance/manual", ts.token(t, user.RoleAdmin, ""), body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decodeError(t, rec).Details, "checkInTime")
}

func TestMonthlyReport_XLSX(t *testing.T) {
	ts := newTestServer()
	ts.attendance.report = attendance.MonthlyReport{
		Employee:  attendance.EmployeeSummary{ID: "emp-1", EmployeeCode: "EMP-001"},
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
	}

	rec := ts.do(t, http.MethodGet, "/api/v1/attendance/employee-monthly-report?employeeId=emp-1&startDate=2024-03-01&endDate=2024-03-31&format=xlsx", ts.token(t, user.RoleDirector, ""), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.XLSXContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attendance_EMP-001_2024-03-01_2024-03-31.xlsx")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")), "xlsx is a zip archive")
}

func TestSettings_AdminOnly(t *testing.T) {
	ts := newTestServer()
	body := map[string]string{"value": "10.0.0.1,10.0.0.2"}

	rec := ts.do(t, http.MethodPut, "/api/v1/settings/ALLOWED_OFFICE_IPS", ts.token(t, user.RoleHR, ""), body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(t, http.MethodPut, "/api/v1/settings/ALLOWED_OFFICE_IPS", ts.token(t, user.RoleAdmin, ""), body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, setting.UpsertSettingRequest{Key: "ALLOWED_OFFICE_IPS", Value: "10.0.0.1,10.0.0.2"}, ts.settings.saved)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ts := newTestServer()

	rec := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "a@example.com", "password": "x"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLive_StreamsHubEvents(t *testing.T) {
	ts := newTestServer()
	srv := httptest.NewServer(ts.router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/attendance/live?jwt="+ts.token(t, user.RoleAdmin, ""), nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEvent := func() string {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		_, err = reader.ReadString('\n') // data
		require.NoError(t, err)
		_, err = reader.ReadString('\n') // blank
		require.NoError(t, err)
		return strings.TrimSpace(line)
	}

	assert.Equal(t, "event: connected", readEvent())

	ts.hub.Publish(attendance.LiveTopic, sse.Event{Event: attendance.EventPunchedIn, Data: map[string]string{"employeeId": "emp-1"}})
	assert.Equal(t, "event: "+attendance.EventPunchedIn, readEvent())
}

func TestLive_RequiresPermission(t *testing.T) {
	ts := newTestServer()

	rec := ts.do(t, http.MethodGet, "/api/v1/attendance/live?jwt="+ts.token(t, user.RoleEmployee, "emp-1"), "", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLive_EndsWhenHubCloses(t *testing.T) {
	ts := newTestServer()
	srv := httptest.NewServer(ts.router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/attendance/live?jwt="+ts.token(t, user.RoleManager, "emp-2"), nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: connected", strings.TrimSpace(line))

	ts.hub.Close()

	rest, err := io.ReadAll(reader)
	require.NoError(t, err, "stream should end before the client deadline")
	assert.NotContains(t, string(rest), "event: ping")
}
