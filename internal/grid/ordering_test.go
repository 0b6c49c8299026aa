package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardhq/timesheet-backend-go/internal/domain/employee"
	"github.com/guardhq/timesheet-backend-go/internal/domain/target"
	"github.com/guardhq/timesheet-backend-go/internal/domain/timesheet"
)

func TestSortRowsByRosterPosition(t *testing.T) {
	master := []employee.Employee{
		{ID: "e1", Code: "001"},
		{ID: "e2", Code: "002"},
		{ID: "e3", Code: "003"},
	}
	targets := []target.Target{
		{ID: "t1", Name: "Alpha", Roster: []target.RosterEntry{
			{EmployeeID: "e3"},
			{EmployeeID: "e1"},
		}},
		{ID: "t2", Name: "Beta", Roster: []target.RosterEntry{
			{EmployeeID: "e2"},
		}},
	}
	rows := []timesheet.Row{
		{ID: "e1", Code: "001"},
		{ID: "e2", Code: "002"},
		{ID: "e3", Code: "003"},
	}

	out := SortRows(rows, targets, master)
	require.Len(t, out, 3)
	assert.Equal(t, "003", out[0].Code, "first roster slot of first target")
	assert.Equal(t, "001", out[1].Code)
	assert.Equal(t, "002", out[2].Code)
}

func TestSortRowsAssignedBeforeUnassigned(t *testing.T) {
	master := []employee.Employee{{ID: "e2", Code: "002"}}
	targets := []target.Target{
		{ID: "t1", Name: "Alpha", Roster: []target.RosterEntry{{EmployeeID: "e2"}}},
	}
	rows := []timesheet.Row{
		{ID: "zz", Code: "999"},
		{ID: "e2", Code: "002"},
		{ID: "aa", Code: "998"},
	}

	out := SortRows(rows, targets, master)
	assert.Equal(t, "002", out[0].Code)
	assert.Equal(t, "aa", out[1].ID, "unassigned tiebroken by row id")
	assert.Equal(t, "zz", out[2].ID)
}

func TestSortRowsUnassignedStableAcrossEdits(t *testing.T) {
	rows := []timesheet.Row{
		{ID: "a", Code: "x"},
		{ID: "b", Code: "y"},
	}

	first := SortRows(rows, nil, nil)

	// editing name/code must not reorder unassigned rows mid-typing
	first[0].Code = "zzz"
	first[1].Name = "edited"
	second := SortRows(first, nil, nil)

	assert.Equal(t, "a", second[0].ID)
	assert.Equal(t, "b", second[1].ID)
}

func TestSortRowsDeadRosterReferenceIgnored(t *testing.T) {
	master := []employee.Employee{{ID: "e1", Code: "001"}}
	targets := []target.Target{
		{ID: "t1", Name: "Alpha", Roster: []target.RosterEntry{
			{EmployeeID: "gone"},
			{EmployeeID: "e1"},
		}},
	}
	rows := []timesheet.Row{{ID: "e1", Code: "001"}}

	out := SortRows(rows, targets, master)
	require.Len(t, out, 1)
	assert.Equal(t, "001", out[0].Code)
}

func TestSortRowsDoesNotMutateInput(t *testing.T) {
	rows := []timesheet.Row{
		{ID: "b", Code: "2"},
		{ID: "a", Code: "1"},
	}
	_ = SortRows(rows, nil, nil)
	assert.Equal(t, "b", rows[0].ID)
}
