package timesheet

// Row is one grid line for the selected month. It shares the employee shape
// but is a distinct working copy: Attendance comes from month-scoped storage,
// never from the master record.
type Row struct {
	ID         string         `json:"id"`
	Code       string         `json:"code"`
	Name       string         `json:"name"`
	Department string         `json:"department"`
	Shift      string         `json:"shift"`
	Attendance map[int]string `json:"attendance"`
}

// Value returns the attendance code for a day, or "" when unset.
func (r Row) Value(day int) string {
	return r.Attendance[day]
}

// WithValue returns a copy of the row with the day set to value. The
// attendance map is copied so the original row is never mutated.
func (r Row) WithValue(day int, value string) Row {
	att := make(map[int]string, len(r.Attendance)+1)
	for k, v := range r.Attendance {
		att[k] = v
	}
	att[day] = value
	r.Attendance = att
	return r
}

// CloneRows deep-copies a grid snapshot, attendance maps included.
func CloneRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		att := make(map[int]string, len(r.Attendance))
		for k, v := range r.Attendance {
			att[k] = v
		}
		r.Attendance = att
		out[i] = r
	}
	return out
}

// Entry is the month-scoped persistence shape for one employee.
type Entry struct {
	EmployeeID string         `json:"employee_id"`
	Year       int            `json:"year"`
	Month      int            `json:"month"`
	Attendance map[int]string `json:"attendance"`
}
