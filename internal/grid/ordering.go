package grid

import (
	"sort"

	"github.com/guardhq/timesheet-backend-go/internal/domain/employee"
	"github.com/guardhq/timesheet-backend-go/internal/domain/target"
	"github.com/guardhq/timesheet-backend-go/internal/domain/timesheet"
)

type rosterPos struct {
	targetIdx int
	rosterIdx int
}

// SortRows orders grid rows by each employee's position in the target
// rosters, scanning targets and their rosters in stored order. Rows whose
// code has no roster position sort after assigned rows, tiebroken by row id
// so unassigned rows never jump around while someone is typing into them.
func SortRows(rows []timesheet.Row, targets []target.Target, master []employee.Employee) []timesheet.Row {
	codeByID := make(map[string]string, len(master))
	for _, e := range master {
		codeByID[e.ID] = e.Code
	}

	posByCode := make(map[string]rosterPos)
	for ti, t := range targets {
		for ri, entry := range t.Roster {
			code, ok := codeByID[entry.EmployeeID]
			if !ok {
				continue
			}
			if _, seen := posByCode[code]; !seen {
				posByCode[code] = rosterPos{targetIdx: ti, rosterIdx: ri}
			}
		}
	}

	out := make([]timesheet.Row, len(rows))
	copy(out, rows)

	sort.Slice(out, func(i, j int) bool {
		pi, iAssigned := posByCode[out[i].Code]
		pj, jAssigned := posByCode[out[j].Code]
		switch {
		case iAssigned && !jAssigned:
			return true
		case !iAssigned && jAssigned:
			return false
		case iAssigned && jAssigned:
			if pi.targetIdx != pj.targetIdx {
				return pi.targetIdx < pj.targetIdx
			}
			if pi.rosterIdx != pj.rosterIdx {
				return pi.rosterIdx < pj.rosterIdx
			}
			return out[i].ID < out[j].ID
		default:
			return out[i].ID < out[j].ID
		}
	})
	return out
}
