package grid

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/guardhq/timesheet-backend-go/internal/domain/employee"
	"github.com/guardhq/timesheet-backend-go/internal/domain/target"
	"github.com/guardhq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/guardhq/timesheet-backend-go/internal/pkg/debounce"
)

// Session is the in-memory editing state for one (year, month) grid: the
// working snapshot, the active selection, autocomplete state, and the
// debounced attendance saver. The snapshot is only ever replaced whole, so
// concurrent readers never see a half-applied edit.
type Session struct {
	mu        sync.Mutex
	year      int
	month     time.Month
	dayCount  int
	rows      []timesheet.Row
	selector  *Selector
	suggester *Suggester

	reconciler *Reconciler
	store      timesheet.TimesheetRepository
	saver      *debounce.Debouncer
	logger     *slog.Logger
}

// Rows returns a deep copy of the current snapshot.
func (s *Session) Rows() []timesheet.Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return timesheet.CloneRows(s.rows)
}

func (s *Session) Days() []timesheet.Day {
	return timesheet.DaysInMonth(s.year, s.month)
}

func (s *Session) Selector() *Selector   { return s.selector }
func (s *Session) Suggester() *Suggester { return s.suggester }

// SetCell writes one attendance value and schedules a save. Out-of-range
// coordinates are dropped.
func (s *Session) SetCell(row, col int, value string) {
	s.mu.Lock()
	if row < 0 || row >= len(s.rows) || col < 0 || dayOf(col) > s.dayCount {
		s.mu.Unlock()
		return
	}
	next := timesheet.CloneRows(s.rows)
	next[row].Attendance[dayOf(col)] = value
	s.rows = next
	s.mu.Unlock()

	s.scheduleSave()
}

// SetRowField writes a code or name keystroke straight into the snapshot.
// Keystrokes are never withheld pending a suggestion pick; identity fields
// only persist through Commit, so no save is scheduled here.
func (s *Session) SetRowField(rowID string, field Field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := timesheet.CloneRows(s.rows)
	for i := range next {
		if next[i].ID != rowID {
			continue
		}
		switch field {
		case FieldCode:
			next[i].Code = value
		case FieldName:
			next[i].Name = value
		}
		s.rows = next
		return
	}
}

// ApplySuggestion overwrites a row's identity fields from the chosen master
// record and closes the dropdown.
func (s *Session) ApplySuggestion(rowID string, chosen employee.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = s.suggester.ApplySuggestion(s.rows, rowID, chosen)
}

// Copy serializes the active selection for the system clipboard.
func (s *Session) Copy() (string, error) {
	sel, ok := s.selector.Active()
	if !ok {
		return "", timesheet.ErrNoActiveSelect
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return Serialize(s.rows, sel, s.dayCount), nil
}

// Paste writes clipboard text into the grid at the active selection.
func (s *Session) Paste(text string) {
	var sel *Rect
	if r, ok := s.selector.Active(); ok {
		sel = &r
	}
	s.mu.Lock()
	s.rows = Paste(s.rows, sel, text, s.dayCount)
	s.mu.Unlock()

	s.scheduleSave()
}

// Fill broadcasts the selection's top-left value across the selection.
func (s *Session) Fill() error {
	sel, ok := s.selector.Active()
	if !ok {
		return timesheet.ErrNoActiveSelect
	}
	s.mu.Lock()
	s.rows = Fill(s.rows, sel, s.dayCount)
	s.mu.Unlock()

	s.scheduleSave()
	return nil
}

// ClearSelection empties every cell in the active selection.
func (s *Session) ClearSelection() error {
	sel, ok := s.selector.Active()
	if !ok {
		return timesheet.ErrNoActiveSelect
	}
	s.mu.Lock()
	s.rows = Clear(s.rows, sel, s.dayCount)
	s.mu.Unlock()

	s.scheduleSave()
	return nil
}

// Commit replaces the snapshot with an edited grid, reconciles the master
// list and rosters against it, and schedules the attendance save. The save
// is scheduled regardless of reconciliation outcome.
func (s *Session) Commit(ctx context.Context, next []timesheet.Row) (Result, error) {
	s.mu.Lock()
	prev := s.rows
	s.rows = timesheet.CloneRows(next)
	s.mu.Unlock()

	res, err := s.reconciler.Reconcile(ctx, prev, next)
	s.scheduleSave()
	return res, err
}

func (s *Session) scheduleSave() {
	s.mu.Lock()
	snapshot := timesheet.CloneRows(s.rows)
	year, month := s.year, s.month
	s.mu.Unlock()

	s.saver.Schedule(func() {
		entries := make([]timesheet.Entry, 0, len(snapshot))
		for _, row := range snapshot {
			entries = append(entries, timesheet.Entry{
				EmployeeID: row.ID,
				Year:       year,
				Month:      int(month),
				Attendance: row.Attendance,
			})
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.store.SaveMonth(ctx, year, month, entries); err != nil {
			s.logger.Error("attendance save failed",
				slog.Int("year", year),
				slog.Int("month", int(month)),
				slog.Any("error", err))
		}
	})
}

// Flush forces any pending attendance save to run now.
func (s *Session) Flush() {
	s.saver.Flush()
}

// SessionManager hands out one Session per (year, month). A pending save for
// one month is never cancelled by opening another.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	employees  employee.EmployeeRepository
	targets    target.TargetRepository
	store      timesheet.TimesheetRepository
	reconciler *Reconciler
	debounce   time.Duration
	logger     *slog.Logger
}

func NewSessionManager(
	employees employee.EmployeeRepository,
	targets target.TargetRepository,
	store timesheet.TimesheetRepository,
	saveDebounce time.Duration,
	logger *slog.Logger,
) *SessionManager {
	return &SessionManager{
		sessions:   make(map[string]*Session),
		employees:  employees,
		targets:    targets,
		store:      store,
		reconciler: NewReconciler(employees, targets, logger),
		debounce:   saveDebounce,
		logger:     logger,
	}
}

// Get returns the session for a month, loading and sorting the grid on
// first access. The snapshot merges the master list with the month's stored
// attendance; master records never carry attendance themselves.
func (m *SessionManager) Get(ctx context.Context, year int, month time.Month) (*Session, error) {
	if month < time.January || month > time.December {
		return nil, timesheet.ErrInvalidMonth
	}

	key := fmt.Sprintf("%04d-%02d", year, month)

	m.mu.Lock()
	if s, ok := m.sessions[key]; ok {
		m.mu.Unlock()
		return s, nil
	}
	m.mu.Unlock()

	rows, err := m.loadRows(ctx, year, month)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[key]; ok {
		return s, nil
	}
	s := &Session{
		year:       year,
		month:      month,
		dayCount:   len(timesheet.DaysInMonth(year, month)),
		rows:       rows,
		selector:   NewSelector(),
		suggester:  NewSuggester(),
		reconciler: m.reconciler,
		store:      m.store,
		saver:      debounce.New(m.debounce),
		logger:     m.logger,
	}
	m.sessions[key] = s
	return s, nil
}

// FlushAll forces every session's pending save, e.g. on shutdown.
func (m *SessionManager) FlushAll() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.Unlock()

	for _, s := range sessions {
		s.Flush()
	}
}

func (m *SessionManager) loadRows(ctx context.Context, year int, month time.Month) ([]timesheet.Row, error) {
	master, err := m.employees.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := m.store.GetMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	attendance := make(map[string]map[int]string, len(entries))
	for _, e := range entries {
		attendance[e.EmployeeID] = e.Attendance
	}

	rows := make([]timesheet.Row, 0, len(master))
	for _, e := range master {
		att := attendance[e.ID]
		if att == nil {
			att = map[int]string{}
		}
		rows = append(rows, timesheet.Row{
			ID:         e.ID,
			Code:       e.Code,
			Name:       e.Name,
			Department: e.Department,
			Shift:      e.Shift,
			Attendance: att,
		})
	}

	targets, err := m.targets.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return SortRows(timesheet.CloneRows(rows), targets, master), nil
}
