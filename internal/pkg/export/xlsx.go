package export

import (
	"fmt"
	"io"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/xuri/excelize/v2"
)

const (
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	monthlySheet = "Attendance"
)

var monthlyHeaders = []string{"Date", "Day", "Status", "First Check-in", "Last Check-out", "Late", "Hours", "Leave"}

// MonthlyReportFilename names the workbook after the employee code and range.
func MonthlyReportFilename(report attendance.MonthlyReport) string {
	return fmt.Sprintf("attendance_%s_%s_%s.xlsx", report.Employee.EmployeeCode, report.StartDate, report.EndDate)
}

// WriteMonthlyReport renders report as a single-sheet workbook.
func WriteMonthlyReport(w io.Writer, report attendance.MonthlyReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", monthlySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return fmt.Errorf("create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	cells := []struct {
		cell  string
		value interface{}
	}{
		{"A1", "ATTENDANCE REPORT"},
		{"A2", "Employee"},
		{"B2", fmt.Sprintf("%s (%s)", report.Employee.FullName, report.Employee.EmployeeCode)},
		{"A3", "Period"},
		{"B3", fmt.Sprintf("%s to %s", report.StartDate, report.EndDate)},
		{"A4", "Generated"},
		{"B4", report.GeneratedAt},
	}
	for _, c := range cells {
		if err := f.SetCellValue(monthlySheet, c.cell, c.value); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(monthlySheet, "A1", "A1", titleStyle); err != nil {
		return err
	}

	headerRow := 6
	for i, h := range monthlyHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		if err := f.SetCellValue(monthlySheet, cell, h); err != nil {
			return err
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, headerRow)
	last, _ := excelize.CoordinatesToCellName(len(monthlyHeaders), headerRow)
	if err := f.SetCellStyle(monthlySheet, first, last, headerStyle); err != nil {
		return err
	}

	row := headerRow + 1
	for _, day := range report.Days {
		leaveType := ""
		if day.Leave != nil {
			leaveType = day.Leave.LeaveType
		}
		late := "No"
		if day.IsLate {
			late = "Yes"
		}

		values := []interface{}{
			day.Date,
			day.DayOfWeek,
			string(day.Status),
			clockOf(day.FirstCheckIn),
			clockOf(day.LastCheckOut),
			late,
			hours(day.TotalDuration),
			leaveType,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(monthlySheet, cell, v); err != nil {
				return err
			}
		}
		row++
	}

	row++
	summary := [][]interface{}{
		{"Present days", report.Summary.PresentDays},
		{"Leave days", report.Summary.LeaveDays},
		{"Absent days", report.Summary.AbsentDays},
		{"Not required days", report.Summary.NotRequiredDays},
		{"Late arrivals", report.Summary.LateArrivals},
		{"Total hours", report.Summary.TotalHours.InexactFloat64()},
	}
	for _, s := range summary {
		if err := f.SetCellValue(monthlySheet, fmt.Sprintf("A%d", row), s[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(monthlySheet, fmt.Sprintf("B%d", row), s[1]); err != nil {
			return err
		}
		row++
	}

	_ = f.SetColWidth(monthlySheet, "A", "A", 18)
	_ = f.SetColWidth(monthlySheet, "B", "C", 14)
	_ = f.SetColWidth(monthlySheet, "D", "E", 16)
	_ = f.SetColWidth(monthlySheet, "F", "G", 10)
	_ = f.SetColWidth(monthlySheet, "H", "H", 14)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// clockOf trims an RFC3339 timestamp to its local HH:MM.
func clockOf(ts *string) string {
	if ts == nil {
		return "-"
	}
	t, err := time.Parse(time.RFC3339, *ts)
	if err != nil {
		return *ts
	}
	return t.Format("15:04")
}

func hours(ms int64) float64 {
	return float64(ms/36000) / 100
}
