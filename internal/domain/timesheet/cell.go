package timesheet

import "strconv"

// CellKind classifies a raw attendance value for display and payroll.
type CellKind string

const (
	CellFullDay      CellKind = "full_day"
	CellHalfDay      CellKind = "half_day"
	CellPaidLeave    CellKind = "paid_leave"
	CellSundayOff    CellKind = "sunday_off"
	CellAbsent       CellKind = "absent"
	CellNumeric      CellKind = "numeric"
	CellEmpty        CellKind = "empty"
	CellUnrecognized CellKind = "unrecognized"
)

// Marker codes carried verbatim from the paper timesheets.
const (
	MarkerFullDay   = "1"
	MarkerHalfDay   = "0.5"
	MarkerPaidLeave = "P"
	MarkerSundayOff = "CN"
	MarkerAbsent    = "Red"
)

// Cell is the classified view of one attendance value.
type Cell struct {
	Raw       string
	Kind      CellKind
	Credit    float64
	IsWeekend bool
}

// Classify resolves a raw value into a cell. Exact marker codes win over
// the numeric parse so "1" and "0.5" keep their marker identity.
func Classify(value string, isWeekend bool) Cell {
	c := Cell{Raw: value, IsWeekend: isWeekend}
	switch value {
	case "":
		c.Kind = CellEmpty
		return c
	case MarkerFullDay:
		c.Kind = CellFullDay
		c.Credit = 1
		return c
	case MarkerHalfDay:
		c.Kind = CellHalfDay
		c.Credit = 0.5
		return c
	case MarkerPaidLeave:
		c.Kind = CellPaidLeave
		return c
	case MarkerSundayOff:
		c.Kind = CellSundayOff
		return c
	case MarkerAbsent:
		c.Kind = CellAbsent
		return c
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		c.Kind = CellNumeric
		c.Credit = f
		return c
	}
	c.Kind = CellUnrecognized
	return c
}

// Total sums every value that parses as a number. Markers that are not
// numeric ("P", "CN", "Red") contribute nothing.
func Total(attendance map[int]string) float64 {
	var sum float64
	for _, v := range attendance {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			sum += f
		}
	}
	return sum
}
