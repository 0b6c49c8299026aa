package grid

import (
	"strings"
	"sync"
	"time"

	"github.com/guardhq/timesheet-backend-go/internal/domain/employee"
	"github.com/guardhq/timesheet-backend-go/internal/domain/timesheet"
)

// MaxSuggestions caps the autocomplete dropdown size.
const MaxSuggestions = 5

// DefaultBlurDelay is the grace period before a blur closes suggestions,
// long enough for a pointer-down on a suggestion item to land first.
const DefaultBlurDelay = 200 * time.Millisecond

// Field names an editable identity column of a grid row.
type Field string

const (
	FieldCode Field = "code"
	FieldName Field = "name"
)

// SearchEmployees does a case-insensitive substring match on code or name,
// capped at MaxSuggestions. A blank term yields nothing.
func SearchEmployees(master []employee.Employee, term string, field Field) []employee.Employee {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	needle := strings.ToLower(term)

	var out []employee.Employee
	for _, e := range master {
		var haystack string
		switch field {
		case FieldCode:
			haystack = e.Code
		case FieldName:
			haystack = e.Name
		default:
			continue
		}
		if strings.Contains(strings.ToLower(haystack), needle) {
			out = append(out, e)
			if len(out) == MaxSuggestions {
				break
			}
		}
	}
	return out
}

// Suggester holds autocomplete state for one grid session: which field owns
// the open dropdown, the current suggestions, and whether a composed-text
// input sequence is in progress (suggestions are frozen during composition
// so multi-keystroke characters are not corrupted).
type Suggester struct {
	mu          sync.Mutex
	activeKey   string
	suggestions []employee.Employee
	composing   bool
	blurDelay   time.Duration
	blurTimer   *time.Timer
}

func NewSuggester() *Suggester {
	return &Suggester{blurDelay: DefaultBlurDelay}
}

// NewSuggesterWithDelay exists for tests that cannot wait out the default
// grace period.
func NewSuggesterWithDelay(delay time.Duration) *Suggester {
	return &Suggester{blurDelay: delay}
}

func fieldKey(rowID string, field Field) string {
	return rowID + "-" + string(field)
}

// OnInput recomputes suggestions for the typed value. During composition the
// dropdown is left as-is; the caller still writes the raw value through.
func (s *Suggester) OnInput(master []employee.Employee, rowID string, field Field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.composing {
		return
	}
	s.open(fieldKey(rowID, field), SearchEmployees(master, value, field))
}

// OnFocus reopens suggestions for the field's current value without retyping.
func (s *Suggester) OnFocus(master []employee.Employee, rowID string, field Field, currentValue string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open(fieldKey(rowID, field), SearchEmployees(master, currentValue, field))
}

// OnBlur schedules a delayed close. The close is dropped if another field
// took over the dropdown in the interim.
func (s *Suggester) OnBlur(rowID string, field Field) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := fieldKey(rowID, field)
	s.blurTimer = time.AfterFunc(s.blurDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.activeKey == key {
			s.activeKey = ""
			s.suggestions = nil
		}
	})
}

func (s *Suggester) CompositionStart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.composing = true
}

func (s *Suggester) CompositionEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.composing = false
}

// Dismiss closes any open dropdown immediately (pointer-down outside).
func (s *Suggester) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeKey = ""
	s.suggestions = nil
}

// Suggestions returns the open dropdown for the field, if it owns one.
func (s *Suggester) Suggestions(rowID string, field Field) []employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeKey != fieldKey(rowID, field) {
		return nil
	}
	out := make([]employee.Employee, len(s.suggestions))
	copy(out, s.suggestions)
	return out
}

func (s *Suggester) open(key string, suggestions []employee.Employee) {
	if s.blurTimer != nil {
		s.blurTimer.Stop()
		s.blurTimer = nil
	}
	s.activeKey = key
	s.suggestions = suggestions
}

// ApplySuggestion overwrites the row's code, name, and department from the
// chosen record in one atomic update and closes the dropdown. Returns a new
// snapshot; the input rows are untouched.
func (s *Suggester) ApplySuggestion(rows []timesheet.Row, rowID string, chosen employee.Employee) []timesheet.Row {
	out := timesheet.CloneRows(rows)
	for i := range out {
		if out[i].ID == rowID {
			out[i].Code = chosen.Code
			out[i].Name = chosen.Name
			out[i].Department = chosen.Department
			break
		}
	}
	s.Dismiss()
	return out
}
