package employee

import "github.com/shopspring/decimal"

type CreateEmployeeRequest struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Department string          `json:"department"`
	Shift      string          `json:"shift"`
	Password   string          `json:"password"`
	Role       string          `json:"role"`
	DailyRate  decimal.Decimal `json:"daily_rate"`
	Bonus      decimal.Decimal `json:"bonus"`
	Penalty    decimal.Decimal `json:"penalty"`
	Advance    decimal.Decimal `json:"advance"`
	Deduction  decimal.Decimal `json:"deduction"`
	Note       string          `json:"note"`
}

// UpdateEmployeeRequest is a partial patch; nil fields are left untouched.
type UpdateEmployeeRequest struct {
	Code       *string          `json:"code,omitempty"`
	Name       *string          `json:"name,omitempty"`
	Department *string          `json:"department,omitempty"`
	Shift      *string          `json:"shift,omitempty"`
	Password   *string          `json:"password,omitempty"`
	Role       *string          `json:"role,omitempty"`
	DailyRate  *decimal.Decimal `json:"daily_rate,omitempty"`
	Bonus      *decimal.Decimal `json:"bonus,omitempty"`
	Penalty    *decimal.Decimal `json:"penalty,omitempty"`
	Advance    *decimal.Decimal `json:"advance,omitempty"`
	Deduction  *decimal.Decimal `json:"deduction,omitempty"`
	Note       *string          `json:"note,omitempty"`
}

type EmployeeResponse struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Department string          `json:"department"`
	Shift      string          `json:"shift"`
	Role       string          `json:"role"`
	DailyRate  decimal.Decimal `json:"daily_rate"`
	Bonus      decimal.Decimal `json:"bonus"`
	Penalty    decimal.Decimal `json:"penalty"`
	Advance    decimal.Decimal `json:"advance"`
	Deduction  decimal.Decimal `json:"deduction"`
	Note       string          `json:"note,omitempty"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}
