package timesheet

import (
	"context"
	"time"
)

// TimesheetRepository stores attendance per (year, month, employee). SaveMonth
// replaces the whole month snapshot; partial writes are not supported so the
// last writer always leaves a consistent grid.
type TimesheetRepository interface {
	GetMonth(ctx context.Context, year int, month time.Month) ([]Entry, error)
	SaveMonth(ctx context.Context, year int, month time.Month, entries []Entry) error
	DeleteEmployee(ctx context.Context, employeeID string) error
}
