package user

type Permission string

const (
	PermissionAttendancePunch         Permission = "attendance.punch"
	PermissionAttendanceViewOwn       Permission = "attendance.view_own"
	PermissionAttendanceReportDaily   Permission = "attendance.report_daily"
	PermissionAttendanceReportMonthly Permission = "attendance.report_monthly"
	PermissionAttendanceManual        Permission = "attendance.manual"
	PermissionAttendanceLive          Permission = "attendance.live"

	PermissionSettingsManage Permission = "settings.manage"
)

var selfService = []Permission{
	PermissionAttendancePunch,
	PermissionAttendanceViewOwn,
}

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: append([]Permission{
		PermissionAttendanceReportDaily,
		PermissionAttendanceReportMonthly,
		PermissionAttendanceManual,
		PermissionAttendanceLive,
		PermissionSettingsManage,
	}, selfService...),
	RoleHR: append([]Permission{
		PermissionAttendanceReportMonthly,
		PermissionAttendanceManual,
		PermissionAttendanceLive,
	}, selfService...),
	RoleDirector: append([]Permission{
		PermissionAttendanceReportMonthly,
	}, selfService...),
	RoleManager: append([]Permission{
		PermissionAttendanceReportDaily,
		PermissionAttendanceReportMonthly,
		PermissionAttendanceLive,
	}, selfService...),
	RoleEmployee: selfService,
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
