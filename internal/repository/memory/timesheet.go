package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/guardhq/timesheet-backend-go/internal/domain/timesheet"
)

type TimesheetRepository struct {
	mu     sync.RWMutex
	months map[string][]timesheet.Entry
}

func NewTimesheetRepository() *TimesheetRepository {
	return &TimesheetRepository{months: make(map[string][]timesheet.Entry)}
}

func monthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

func (r *TimesheetRepository) GetMonth(ctx context.Context, year int, month time.Month) ([]timesheet.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.months[monthKey(year, month)]
	out := make([]timesheet.Entry, len(entries))
	for i, e := range entries {
		att := make(map[int]string, len(e.Attendance))
		for k, v := range e.Attendance {
			att[k] = v
		}
		e.Attendance = att
		out[i] = e
	}
	return out, nil
}

func (r *TimesheetRepository) SaveMonth(ctx context.Context, year int, month time.Month, entries []timesheet.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]timesheet.Entry, len(entries))
	for i, e := range entries {
		att := make(map[int]string, len(e.Attendance))
		for k, v := range e.Attendance {
			att[k] = v
		}
		e.Attendance = att
		e.Year = year
		e.Month = int(month)
		stored[i] = e
	}
	r.months[monthKey(year, month)] = stored
	return nil
}

func (r *TimesheetRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, entries := range r.months {
		kept := entries[:0]
		for _, e := range entries {
			if e.EmployeeID != employeeID {
				kept = append(kept, e)
			}
		}
		r.months[key] = kept
	}
	return nil
}
