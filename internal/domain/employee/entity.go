package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepartmentUnassigned is the sentinel department for rows that have not been
// placed on any target yet. Reconciliation never auto-creates a target for it.
const DepartmentUnassigned = "Chưa xác định"

// DefaultShift is the roster shift assigned when an employee is attached to a
// target without an explicit shift.
const DefaultShift = "08:00 - 17:00"

// Employee is a master-list record. Attendance is deliberately absent: it
// lives only in month-scoped timesheet storage and is merged into grid rows
// at load time.
type Employee struct {
	ID         string
	Code       string
	Name       string
	Department string
	Shift      string

	// Credentials
	PasswordHash string
	Role         Role

	// Payroll
	DailyRate decimal.Decimal
	Bonus     decimal.Decimal
	Penalty   decimal.Decimal
	Advance   decimal.Decimal
	Deduction decimal.Decimal
	Note      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)
