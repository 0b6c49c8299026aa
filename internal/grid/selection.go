package grid

import "sync"

// Button identifies which pointer button initiated a selection event.
type Button int

const (
	ButtonPrimary   Button = 0
	ButtonAuxiliary Button = 1
	ButtonSecondary Button = 2
)

// Rect is a selection rectangle with unordered corners. Start is where the
// drag began and End is where it currently is, so either corner may be the
// smaller one depending on drag direction.
type Rect struct {
	StartRow int `json:"start_row"`
	StartCol int `json:"start_col"`
	EndRow   int `json:"end_row"`
	EndCol   int `json:"end_col"`
}

// Bounds returns the min/max-sorted corners.
func (r Rect) Bounds() (minRow, minCol, maxRow, maxCol int) {
	minRow, maxRow = r.StartRow, r.EndRow
	if minRow > maxRow {
		minRow, maxRow = maxRow, minRow
	}
	minCol, maxCol = r.StartCol, r.EndCol
	if minCol > maxCol {
		minCol, maxCol = maxCol, minCol
	}
	return minRow, minCol, maxRow, maxCol
}

func (r Rect) Contains(row, col int) bool {
	minRow, minCol, maxRow, maxCol := r.Bounds()
	return row >= minRow && row <= maxRow && col >= minCol && col <= maxCol
}

func (r Rect) IsSingleCell() bool {
	minRow, minCol, maxRow, maxCol := r.Bounds()
	return minRow == maxRow && minCol == maxCol
}

// Selector tracks the active selection rectangle and drag state. Safe for
// concurrent use.
type Selector struct {
	mu       sync.Mutex
	rect     *Rect
	dragging bool
}

func NewSelector() *Selector {
	return &Selector{}
}

// Begin anchors a new selection at the given cell and enters dragging mode.
// Only the primary button starts a drag.
func (s *Selector) Begin(row, col int, button Button) {
	if button != ButtonPrimary {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rect = &Rect{StartRow: row, StartCol: col, EndRow: row, EndCol: col}
	s.dragging = true
}

// Extend moves the end corner while a drag is in progress. Outside a drag it
// is a no-op.
func (s *Selector) Extend(row, col int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dragging || s.rect == nil {
		return
	}
	s.rect.EndRow = row
	s.rect.EndCol = col
}

// Click selects a single cell without entering dragging mode.
func (s *Selector) Click(row, col int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rect = &Rect{StartRow: row, StartCol: col, EndRow: row, EndCol: col}
	s.dragging = false
}

// EndDrag leaves dragging mode but keeps the selection. Wired to a global
// pointer-release so a drag that ends outside the grid still terminates.
func (s *Selector) EndDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dragging = false
}

func (s *Selector) IsSelected(row, col int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rect == nil {
		return false
	}
	return s.rect.Contains(row, col)
}

// Active returns the current rectangle, or false when nothing is selected.
func (s *Selector) Active() (Rect, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rect == nil {
		return Rect{}, false
	}
	return *s.rect, true
}

func (s *Selector) Dragging() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dragging
}

// Clear drops the selection entirely, e.g. when navigating away.
func (s *Selector) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rect = nil
	s.dragging = false
}
