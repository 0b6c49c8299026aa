package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PayslipResponse is one employee's computed pay for a month. All amounts
// are rounded to 2 decimals for display.
type PayslipResponse struct {
	EmployeeID string          `json:"employee_id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Department string          `json:"department"`
	WorkedDays decimal.Decimal `json:"worked_days"`
	DailyRate  decimal.Decimal `json:"daily_rate"`
	Gross      decimal.Decimal `json:"gross"`
	Bonus      decimal.Decimal `json:"bonus"`
	Penalty    decimal.Decimal `json:"penalty"`
	Advance    decimal.Decimal `json:"advance"`
	Deduction  decimal.Decimal `json:"deduction"`
	Net        decimal.Decimal `json:"net"`
}

type ReportResponse struct {
	Year     int               `json:"year"`
	Month    int               `json:"month"`
	Payslips []PayslipResponse `json:"payslips"`
	TotalNet decimal.Decimal   `json:"total_net"`
}

type PayrollService interface {
	Report(ctx context.Context, year int, month time.Month) (ReportResponse, error)
	ExportReport(ctx context.Context, year int, month time.Month) ([]byte, error)
}
