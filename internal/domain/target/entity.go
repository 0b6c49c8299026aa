package target

import "time"

// Target is a guarded work site. Its name doubles as the canonical
// "department" string on employee records, and its roster order drives the
// timesheet grid row order.
type Target struct {
	ID     string
	Name   string
	Roster []RosterEntry

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RosterEntry assigns one employee to the target for a shift. Order within
// Roster is significant.
type RosterEntry struct {
	EmployeeID string `json:"employee_id"`
	Shift      string `json:"shift"`
}

// HasEmployee reports whether the roster already references the employee id.
func (t Target) HasEmployee(employeeID string) bool {
	for _, entry := range t.Roster {
		if entry.EmployeeID == employeeID {
			return true
		}
	}
	return false
}

// WithoutEmployee returns a copy of the roster with every entry for the
// employee id removed. The receiver is not modified.
func (t Target) WithoutEmployee(employeeID string) []RosterEntry {
	out := make([]RosterEntry, 0, len(t.Roster))
	for _, entry := range t.Roster {
		if entry.EmployeeID != employeeID {
			out = append(out, entry)
		}
	}
	return out
}
