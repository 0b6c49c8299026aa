package timesheet

// GridResponse is the full month view the editor renders from.
type GridResponse struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Days  []Day `json:"days"`
	Rows  []Row `json:"rows"`
}

// RowPatch is one incoming row from the editor. The id binds it to the
// master record; everything else is the edited state.
type RowPatch struct {
	ID         string         `json:"id"`
	Code       string         `json:"code"`
	Name       string         `json:"name"`
	Department string         `json:"department"`
	Shift      string         `json:"shift"`
	Attendance map[int]string `json:"attendance"`
}

// CommitGridRequest carries the complete edited grid back to the server.
type CommitGridRequest struct {
	Rows []RowPatch `json:"rows"`
}

type SetCellRequest struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Value string `json:"value"`
}

type RowTotalResponse struct {
	ID    string  `json:"id"`
	Code  string  `json:"code"`
	Total float64 `json:"total"`
}

// SelectionRequest is one pointer event forwarded to the session's selector.
type SelectionRequest struct {
	Action string `json:"action"` // begin, extend, click, end, clear
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Button int    `json:"button"`
}

type PasteRequest struct {
	Text string `json:"text"`
}

// AutocompleteRequest is one editor event forwarded to the session's
// suggester. Input and focus events carry the field's current value; apply
// carries the chosen employee id.
type AutocompleteRequest struct {
	Action     string `json:"action"` // input, focus, blur, composition_start, composition_end, dismiss, apply
	RowID      string `json:"row_id"`
	Field      string `json:"field"` // code or name
	Value      string `json:"value,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`
}

type SuggestionResponse struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

type CommitResponse struct {
	Added          int `json:"added"`
	Changed        int `json:"changed"`
	Removed        int `json:"removed"`
	CreatedTargets int `json:"created_targets"`
}

// ImportError reports one skipped workbook row.
type ImportError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type ImportResponse struct {
	Imported int           `json:"imported"`
	Errors   []ImportError `json:"errors,omitempty"`
}

// StatsResponse rounds to 2 decimals for display; stored values are never
// rounded.
type StatsResponse struct {
	Total    float64            `json:"total"`
	PerRow   []RowTotalResponse `json:"per_row"`
	RowCount int                `json:"row_count"`
	DayCount int                `json:"day_count"`
}
