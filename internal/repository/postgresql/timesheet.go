package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/guardhq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/guardhq/timesheet-backend-go/internal/pkg/database"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

// GetMonth implements timesheet.TimesheetRepository. A month with no saved
// attendance yields an empty slice, not an error.
func (r *timesheetRepositoryImpl) GetMonth(ctx context.Context, year int, month time.Month) ([]timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, year, month, attendance
		FROM timesheets
		WHERE year = $1 AND month = $2
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query, year, int(month))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []timesheet.Entry
	for rows.Next() {
		var e timesheet.Entry
		var attJSON []byte
		if err := rows.Scan(&e.EmployeeID, &e.Year, &e.Month, &attJSON); err != nil {
			return nil, err
		}
		if len(attJSON) > 0 {
			if err := json.Unmarshal(attJSON, &e.Attendance); err != nil {
				return nil, fmt.Errorf("decode attendance: %w", err)
			}
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// SaveMonth implements timesheet.TimesheetRepository. The whole month is
// replaced in one transaction so a torn write can never leave a mix of old
// and new rows.
func (r *timesheetRepositoryImpl) SaveMonth(ctx context.Context, year int, month time.Month, entries []timesheet.Entry) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM timesheets WHERE year = $1 AND month = $2`, year, int(month)); err != nil {
			return fmt.Errorf("clear month: %w", err)
		}

		for _, e := range entries {
			att := e.Attendance
			if att == nil {
				att = map[int]string{}
			}
			attJSON, err := json.Marshal(att)
			if err != nil {
				return fmt.Errorf("encode attendance: %w", err)
			}
			_, err = tx.Exec(ctx, `
				INSERT INTO timesheets (employee_id, year, month, attendance)
				VALUES ($1, $2, $3, $4)
			`, e.EmployeeID, year, int(month), attJSON)
			if err != nil {
				return fmt.Errorf("insert timesheet row for %s: %w", e.EmployeeID, err)
			}
		}
		return nil
	})
}

// DeleteEmployee implements timesheet.TimesheetRepository. Removes the
// employee's attendance from every stored month.
func (r *timesheetRepositoryImpl) DeleteEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM timesheets WHERE employee_id = $1`, employeeID)
	return err
}
