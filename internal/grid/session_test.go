package grid

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardhq/timesheet-backend-go/internal/domain/employee"
	"github.com/guardhq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/guardhq/timesheet-backend-go/internal/repository/memory"
)

type sessionEnv struct {
	manager   *SessionManager
	employees *memory.EmployeeRepository
	targets   *memory.TargetRepository
	store     *memory.TimesheetRepository
}

func newSessionEnv(t *testing.T, seed []employee.Employee) sessionEnv {
	t.Helper()
	env := sessionEnv{
		employees: memory.NewEmployeeRepository(),
		targets:   memory.NewTargetRepository(),
		store:     memory.NewTimesheetRepository(),
	}
	ctx := context.Background()
	for _, e := range seed {
		_, err := env.employees.Create(ctx, e)
		require.NoError(t, err)
	}
	env.manager = NewSessionManager(env.employees, env.targets, env.store, 20*time.Millisecond, testLogger())
	return env
}

func TestSessionManagerRejectsInvalidMonth(t *testing.T) {
	env := newSessionEnv(t, nil)

	_, err := env.manager.Get(context.Background(), 2025, time.Month(0))
	assert.ErrorIs(t, err, timesheet.ErrInvalidMonth)

	_, err = env.manager.Get(context.Background(), 2025, time.Month(13))
	assert.ErrorIs(t, err, timesheet.ErrInvalidMonth)
}

func TestSessionManagerReusesSessionPerMonth(t *testing.T) {
	env := newSessionEnv(t, nil)
	ctx := context.Background()

	a, err := env.manager.Get(ctx, 2025, time.March)
	require.NoError(t, err)
	b, err := env.manager.Get(ctx, 2025, time.March)
	require.NoError(t, err)
	c, err := env.manager.Get(ctx, 2025, time.April)
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestSessionLoadsMasterWithMonthAttendance(t *testing.T) {
	env := newSessionEnv(t, []employee.Employee{
		{ID: "e1", Code: "001", Name: "A", Shift: employee.DefaultShift},
	})
	ctx := context.Background()
	require.NoError(t, env.store.SaveMonth(ctx, 2025, time.March, []timesheet.Entry{
		{EmployeeID: "e1", Attendance: map[int]string{1: "1", 2: "P"}},
	}))

	s, err := env.manager.Get(ctx, 2025, time.March)
	require.NoError(t, err)

	rows := s.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "001", rows[0].Code)
	assert.Equal(t, "1", rows[0].Value(1))
	assert.Equal(t, "P", rows[0].Value(2))
}

func TestSessionSetCellDebouncedSave(t *testing.T) {
	env := newSessionEnv(t, []employee.Employee{{ID: "e1", Code: "001"}})
	ctx := context.Background()

	s, err := env.manager.Get(ctx, 2025, time.March)
	require.NoError(t, err)

	s.SetCell(0, 0, "1")
	s.SetCell(0, 1, "0.5")

	entries, err := env.store.GetMonth(ctx, 2025, time.March)
	require.NoError(t, err)
	assert.Empty(t, entries, "save is debounced, not immediate")

	time.Sleep(80 * time.Millisecond)

	entries, err = env.store.GetMonth(ctx, 2025, time.March)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "1", entries[0].Attendance[1])
	assert.Equal(t, "0.5", entries[0].Attendance[2], "last snapshot wins")
}

func TestSessionSetCellOutOfRangeDropped(t *testing.T) {
	env := newSessionEnv(t, []employee.Employee{{ID: "e1", Code: "001"}})
	ctx := context.Background()

	s, err := env.manager.Get(ctx, 2025, time.February)
	require.NoError(t, err)

	s.SetCell(5, 0, "1")
	s.SetCell(0, 28, "1") // February 2025 has 28 days
	s.SetCell(-1, 0, "1")

	rows := s.Rows()
	assert.Empty(t, rows[0].Attendance)
}

func TestSessionClipboardOps(t *testing.T) {
	env := newSessionEnv(t, []employee.Employee{
		{ID: "e1", Code: "001"},
		{ID: "e2", Code: "002"},
	})
	ctx := context.Background()

	s, err := env.manager.Get(ctx, 2025, time.March)
	require.NoError(t, err)

	_, err = s.Copy()
	assert.ErrorIs(t, err, timesheet.ErrNoActiveSelect)

	s.Selector().Begin(0, 0, ButtonPrimary)
	s.Selector().Extend(1, 1)
	s.Selector().EndDrag()

	s.Paste("1\t0.5\nP\tCN")
	text, err := s.Copy()
	require.NoError(t, err)
	assert.Equal(t, "1\t0.5\nP\tCN", text)

	require.NoError(t, s.Fill())
	text, err = s.Copy()
	require.NoError(t, err)
	assert.Equal(t, "1\t1\n1\t1", text)

	require.NoError(t, s.ClearSelection())
	text, err = s.Copy()
	require.NoError(t, err)
	assert.Equal(t, "\t\n\t", text)
}

func TestSessionCommitReconcilesAndSaves(t *testing.T) {
	env := newSessionEnv(t, []employee.Employee{{ID: "e1", Code: "001", Name: "A"}})
	ctx := context.Background()

	s, err := env.manager.Get(ctx, 2025, time.March)
	require.NoError(t, err)

	next := []timesheet.Row{
		{ID: "e1", Code: "003", Name: "A", Attendance: map[int]string{1: "1"}},
		{ID: "n1", Code: "010", Name: "New", Department: "NewSite", Attendance: map[int]string{}},
	}
	res, err := s.Commit(ctx, next)
	require.NoError(t, err)
	assert.Equal(t, []string{"e1"}, res.Changed)
	assert.Equal(t, []string{"n1"}, res.Added)

	s.Flush()
	entries, err := env.store.GetMonth(ctx, 2025, time.March)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "1", entries[0].Attendance[1])
}

func TestSessionFlushAll(t *testing.T) {
	env := newSessionEnv(t, []employee.Employee{{ID: "e1", Code: "001"}})
	ctx := context.Background()

	s, err := env.manager.Get(ctx, 2025, time.May)
	require.NoError(t, err)
	s.SetCell(0, 0, "1")

	env.manager.FlushAll()

	entries, err := env.store.GetMonth(ctx, 2025, time.May)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "1", entries[0].Attendance[1])
}
