package payroll

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/guardhq/timesheet-backend-go/internal/domain/employee"
	"github.com/guardhq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/guardhq/timesheet-backend-go/internal/repository/memory"
)

func TestReport(t *testing.T) {
	employees := memory.NewEmployeeRepository()
	timesheets := memory.NewTimesheetRepository()
	ctx := context.Background()

	_, err := employees.Create(ctx, employee.Employee{
		ID: "e1", Code: "001", Name: "A",
		DailyRate: decimal.NewFromInt(300000),
		Bonus:     decimal.NewFromInt(50000),
		Advance:   decimal.NewFromInt(100000),
	})
	require.NoError(t, err)
	require.NoError(t, timesheets.SaveMonth(ctx, 2025, time.March, []timesheet.Entry{
		// 1 + 0.5 + 1 worked days; P and CN contribute nothing
		{EmployeeID: "e1", Attendance: map[int]string{1: "1", 2: "0.5", 3: "P", 4: "CN", 5: "1"}},
	}))

	svc := NewPayrollService(employees, timesheets)
	report, err := svc.Report(ctx, 2025, time.March)
	require.NoError(t, err)
	require.Len(t, report.Payslips, 1)

	p := report.Payslips[0]
	assert.True(t, p.WorkedDays.Equal(decimal.NewFromFloat(2.5)), "got %s", p.WorkedDays)
	assert.True(t, p.Gross.Equal(decimal.NewFromInt(750000)), "got %s", p.Gross)
	// 750000 + 50000 - 100000
	assert.True(t, p.Net.Equal(decimal.NewFromInt(700000)), "got %s", p.Net)
	assert.True(t, report.TotalNet.Equal(decimal.NewFromInt(700000)))
}

func TestReportEmployeeWithoutAttendance(t *testing.T) {
	employees := memory.NewEmployeeRepository()
	timesheets := memory.NewTimesheetRepository()
	ctx := context.Background()

	_, err := employees.Create(ctx, employee.Employee{
		ID: "e1", Code: "001", Name: "A",
		DailyRate: decimal.NewFromInt(300000),
		Deduction: decimal.NewFromInt(20000),
	})
	require.NoError(t, err)

	svc := NewPayrollService(employees, timesheets)
	report, err := svc.Report(ctx, 2025, time.March)
	require.NoError(t, err)
	require.Len(t, report.Payslips, 1)
	assert.True(t, report.Payslips[0].Net.Equal(decimal.NewFromInt(-20000)))
}

func TestExportReport(t *testing.T) {
	employees := memory.NewEmployeeRepository()
	timesheets := memory.NewTimesheetRepository()
	ctx := context.Background()

	_, err := employees.Create(ctx, employee.Employee{
		ID: "e1", Code: "001", Name: "A", DailyRate: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	svc := NewPayrollService(employees, timesheets)
	data, err := svc.ExportReport(ctx, 2025, time.March)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	cells, err := f.GetRows("Payroll")
	require.NoError(t, err)
	require.Len(t, cells, 3, "header, one payslip, total row")
	assert.Equal(t, "Code", cells[0][0])
	assert.Equal(t, "001", cells[1][0])
	assert.Equal(t, "Total", cells[2][0])
}
