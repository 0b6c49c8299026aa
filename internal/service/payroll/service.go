package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/guardhq/timesheet-backend-go/internal/domain/employee"
	"github.com/guardhq/timesheet-backend-go/internal/domain/payroll"
	"github.com/guardhq/timesheet-backend-go/internal/domain/timesheet"
)

type PayrollServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	timesheetRepo timesheet.TimesheetRepository
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	timesheetRepo timesheet.TimesheetRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo:  employeeRepo,
		timesheetRepo: timesheetRepo,
	}
}

// Report implements payroll.PayrollService. Worked days come from the
// month's stored attendance; pay is worked days times the daily rate, plus
// bonus, minus penalty, advances, and deductions.
func (s *PayrollServiceImpl) Report(ctx context.Context, year int, month time.Month) (payroll.ReportResponse, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return payroll.ReportResponse{}, err
	}
	entries, err := s.timesheetRepo.GetMonth(ctx, year, month)
	if err != nil {
		return payroll.ReportResponse{}, err
	}
	attendance := make(map[string]map[int]string, len(entries))
	for _, e := range entries {
		attendance[e.EmployeeID] = e.Attendance
	}

	report := payroll.ReportResponse{
		Year:     year,
		Month:    int(month),
		TotalNet: decimal.Zero,
	}
	for _, emp := range employees {
		workedDays := decimal.NewFromFloat(timesheet.Total(attendance[emp.ID]))
		gross := emp.DailyRate.Mul(workedDays)
		net := gross.Add(emp.Bonus).Sub(emp.Penalty).Sub(emp.Advance).Sub(emp.Deduction)

		report.Payslips = append(report.Payslips, payroll.PayslipResponse{
			EmployeeID: emp.ID,
			Code:       emp.Code,
			Name:       emp.Name,
			Department: emp.Department,
			WorkedDays: workedDays.Round(2),
			DailyRate:  emp.DailyRate,
			Gross:      gross.Round(2),
			Bonus:      emp.Bonus,
			Penalty:    emp.Penalty,
			Advance:    emp.Advance,
			Deduction:  emp.Deduction,
			Net:        net.Round(2),
		})
		report.TotalNet = report.TotalNet.Add(net)
	}
	report.TotalNet = report.TotalNet.Round(2)
	return report, nil
}

// ExportReport implements payroll.PayrollService.
func (s *PayrollServiceImpl) ExportReport(ctx context.Context, year int, month time.Month) ([]byte, error) {
	report, err := s.Report(ctx, year, month)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	f.SetSheetName(sheet, "Payroll")
	sheet = "Payroll"

	header := []interface{}{"Code", "Name", "Department", "Worked Days", "Daily Rate", "Gross", "Bonus", "Penalty", "Advance", "Deduction", "Net"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, p := range report.Payslips {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			p.Code, p.Name, p.Department,
			p.WorkedDays.InexactFloat64(), p.DailyRate.InexactFloat64(),
			p.Gross.InexactFloat64(), p.Bonus.InexactFloat64(),
			p.Penalty.InexactFloat64(), p.Advance.InexactFloat64(),
			p.Deduction.InexactFloat64(), p.Net.InexactFloat64(),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	totalCell, err := excelize.CoordinatesToCellName(1, len(report.Payslips)+2)
	if err != nil {
		return nil, err
	}
	totalRow := []interface{}{"Total", "", "", "", "", "", "", "", "", "", report.TotalNet.InexactFloat64()}
	if err := f.SetSheetRow(sheet, totalCell, &totalRow); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
