package timesheet

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/guardhq/timesheet-backend-go/internal/domain/employee"
	"github.com/guardhq/timesheet-backend-go/internal/domain/target"
	"github.com/guardhq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/guardhq/timesheet-backend-go/internal/grid"
	"github.com/guardhq/timesheet-backend-go/internal/pkg/spreadsheet"
)

type TimesheetServiceImpl struct {
	sessions     *grid.SessionManager
	employeeRepo employee.EmployeeRepository
	targetRepo   target.TargetRepository
}

func NewTimesheetService(
	sessions *grid.SessionManager,
	employeeRepo employee.EmployeeRepository,
	targetRepo target.TargetRepository,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		sessions:     sessions,
		employeeRepo: employeeRepo,
		targetRepo:   targetRepo,
	}
}

// GetGrid implements timesheet.TimesheetService. Row order is derived from
// the roster structure on every read; it is never persisted.
func (s *TimesheetServiceImpl) GetGrid(ctx context.Context, year int, month time.Month) (timesheet.GridResponse, error) {
	sess, err := s.sessions.Get(ctx, year, month)
	if err != nil {
		return timesheet.GridResponse{}, err
	}

	rows := sess.Rows()
	master, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return timesheet.GridResponse{}, err
	}
	targets, err := s.targetRepo.GetAll(ctx)
	if err != nil {
		return timesheet.GridResponse{}, err
	}

	return timesheet.GridResponse{
		Year:  year,
		Month: int(month),
		Days:  sess.Days(),
		Rows:  grid.SortRows(rows, targets, master),
	}, nil
}

// CommitGrid implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) CommitGrid(ctx context.Context, year int, month time.Month, req timesheet.CommitGridRequest) (timesheet.CommitResponse, error) {
	sess, err := s.sessions.Get(ctx, year, month)
	if err != nil {
		return timesheet.CommitResponse{}, err
	}

	rows := make([]timesheet.Row, 0, len(req.Rows))
	for _, p := range req.Rows {
		id := p.ID
		if id == "" {
			id = uuid.NewString()
		}
		att := p.Attendance
		if att == nil {
			att = map[int]string{}
		}
		rows = append(rows, timesheet.Row{
			ID:         id,
			Code:       p.Code,
			Name:       p.Name,
			Department: p.Department,
			Shift:      p.Shift,
			Attendance: att,
		})
	}

	res, err := sess.Commit(ctx, rows)
	if err != nil {
		return timesheet.CommitResponse{}, err
	}
	return timesheet.CommitResponse{
		Added:          len(res.Added),
		Changed:        len(res.Changed),
		Removed:        len(res.Removed),
		CreatedTargets: len(res.CreatedTargets),
	}, nil
}

// SetCell implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) SetCell(ctx context.Context, year int, month time.Month, req timesheet.SetCellRequest) error {
	sess, err := s.sessions.Get(ctx, year, month)
	if err != nil {
		return err
	}
	sess.SetCell(req.Row, req.Col, req.Value)
	return nil
}

// Select implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Select(ctx context.Context, year int, month time.Month, req timesheet.SelectionRequest) error {
	sess, err := s.sessions.Get(ctx, year, month)
	if err != nil {
		return err
	}

	sel := sess.Selector()
	switch req.Action {
	case "begin":
		sel.Begin(req.Row, req.Col, grid.Button(req.Button))
	case "extend":
		sel.Extend(req.Row, req.Col)
	case "click":
		sel.Click(req.Row, req.Col)
	case "end":
		sel.EndDrag()
	case "clear":
		sel.Clear()
	default:
		return fmt.Errorf("unknown selection action %q", req.Action)
	}
	return nil
}

// Copy implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Copy(ctx context.Context, year int, month time.Month) (string, error) {
	sess, err := s.sessions.Get(ctx, year, month)
	if err != nil {
		return "", err
	}
	return sess.Copy()
}

// Paste implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Paste(ctx context.Context, year int, month time.Month, text string) error {
	sess, err := s.sessions.Get(ctx, year, month)
	if err != nil {
		return err
	}
	sess.Paste(text)
	return nil
}

// Fill implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Fill(ctx context.Context, year int, month time.Month) error {
	sess, err := s.sessions.Get(ctx, year, month)
	if err != nil {
		return err
	}
	return sess.Fill()
}

// ClearSelection implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ClearSelection(ctx context.Context, year int, month time.Month) error {
	sess, err := s.sessions.Get(ctx, year, month)
	if err != nil {
		return err
	}
	return sess.ClearSelection()
}

// Autocomplete implements timesheet.TimesheetService. Input keystrokes are
// always written through to the row before suggestions are recomputed;
// applying a suggestion rewrites code, name, and department atomically.
func (s *TimesheetServiceImpl) Autocomplete(ctx context.Context, year int, month time.Month, req timesheet.AutocompleteRequest) ([]timesheet.SuggestionResponse, error) {
	sess, err := s.sessions.Get(ctx, year, month)
	if err != nil {
		return nil, err
	}
	sugg := sess.Suggester()
	field := grid.Field(req.Field)

	switch req.Action {
	case "input":
		sess.SetRowField(req.RowID, field, req.Value)
		master, err := s.employeeRepo.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		sugg.OnInput(master, req.RowID, field, req.Value)
	case "focus":
		master, err := s.employeeRepo.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		sugg.OnFocus(master, req.RowID, field, req.Value)
	case "blur":
		sugg.OnBlur(req.RowID, field)
		return nil, nil
	case "composition_start":
		sugg.CompositionStart()
	case "composition_end":
		sugg.CompositionEnd()
	case "dismiss":
		sugg.Dismiss()
		return nil, nil
	case "apply":
		chosen, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return nil, err
		}
		sess.ApplySuggestion(req.RowID, chosen)
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown autocomplete action %q", req.Action)
	}

	matches := sugg.Suggestions(req.RowID, field)
	out := make([]timesheet.SuggestionResponse, 0, len(matches))
	for _, e := range matches {
		out = append(out, timesheet.SuggestionResponse{
			ID:         e.ID,
			Code:       e.Code,
			Name:       e.Name,
			Department: e.Department,
		})
	}
	return out, nil
}

// AddRowsFromTarget implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) AddRowsFromTarget(ctx context.Context, year int, month time.Month, targetID string) error {
	sess, err := s.sessions.Get(ctx, year, month)
	if err != nil {
		return err
	}
	t, err := s.targetRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	rows := sess.Rows()
	present := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		present[r.Code] = struct{}{}
	}

	changed := false
	for _, entry := range t.Roster {
		emp, err := s.employeeRepo.GetByID(ctx, entry.EmployeeID)
		if err != nil {
			// dangling roster reference, skip
			continue
		}
		if _, ok := present[emp.Code]; ok {
			continue
		}
		present[emp.Code] = struct{}{}
		rows = append(rows, timesheet.Row{
			ID:         emp.ID,
			Code:       emp.Code,
			Name:       emp.Name,
			Department: emp.Department,
			Shift:      emp.Shift,
			Attendance: map[int]string{},
		})
		changed = true
	}
	if !changed {
		return nil
	}

	_, err = sess.Commit(ctx, rows)
	return err
}

// Export implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Export(ctx context.Context, year int, month time.Month) ([]byte, error) {
	view, err := s.GetGrid(ctx, year, month)
	if err != nil {
		return nil, err
	}
	return spreadsheet.Export(year, month, view.Rows)
}

// Template implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Template(year int, month time.Month) ([]byte, error) {
	return spreadsheet.Template(year, month)
}

// Import implements timesheet.TimesheetService. Imported rows are merged
// into the grid by code: an existing row gets the imported attendance, an
// unknown code becomes a new row (and, on commit, a new employee).
func (s *TimesheetServiceImpl) Import(ctx context.Context, year int, month time.Month, r io.Reader) (timesheet.ImportResponse, error) {
	sess, err := s.sessions.Get(ctx, year, month)
	if err != nil {
		return timesheet.ImportResponse{}, err
	}

	dayCount := len(timesheet.DaysInMonth(year, month))
	imported, rowErrs, err := spreadsheet.Import(r, dayCount)
	if err != nil {
		return timesheet.ImportResponse{}, err
	}

	rows := sess.Rows()
	byCode := make(map[string]int, len(rows))
	for i, row := range rows {
		byCode[row.Code] = i
	}

	for _, in := range imported {
		if idx, ok := byCode[in.Code]; ok {
			rows[idx].Attendance = in.Attendance
			continue
		}
		in.ID = uuid.NewString()
		if in.Department == "" {
			in.Department = employee.DepartmentUnassigned
		}
		if in.Shift == "" {
			in.Shift = employee.DefaultShift
		}
		byCode[in.Code] = len(rows)
		rows = append(rows, in)
	}

	if _, err := sess.Commit(ctx, rows); err != nil {
		return timesheet.ImportResponse{}, err
	}

	res := timesheet.ImportResponse{Imported: len(imported)}
	for _, re := range rowErrs {
		res.Errors = append(res.Errors, timesheet.ImportError{Row: re.Row, Reason: re.Reason})
	}
	return res, nil
}

// Stats implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Stats(ctx context.Context, year int, month time.Month) (timesheet.StatsResponse, error) {
	sess, err := s.sessions.Get(ctx, year, month)
	if err != nil {
		return timesheet.StatsResponse{}, err
	}

	rows := sess.Rows()
	res := timesheet.StatsResponse{
		RowCount: len(rows),
		DayCount: len(timesheet.DaysInMonth(year, month)),
	}
	var total float64
	for _, row := range rows {
		rowTotal := timesheet.Total(row.Attendance)
		total += rowTotal
		res.PerRow = append(res.PerRow, timesheet.RowTotalResponse{
			ID:    row.ID,
			Code:  row.Code,
			Total: round2(rowTotal),
		})
	}
	res.Total = round2(total)
	return res, nil
}

// Flush implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Flush() {
	s.sessions.FlushAll()
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
