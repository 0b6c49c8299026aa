package grid

import (
	"strings"

	"github.com/guardhq/timesheet-backend-go/internal/domain/timesheet"
)

// Day columns are zero-based in the grid; day numbers are one-based.
func dayOf(col int) int { return col + 1 }

// Serialize renders the selected attendance block as tab-separated columns
// and newline-separated rows, with no trailing newline. This matches what
// spreadsheet programs put on the clipboard, so copy/paste round-trips.
func Serialize(rows []timesheet.Row, sel Rect, dayCount int) string {
	minRow, minCol, maxRow, maxCol := sel.Bounds()

	var b strings.Builder
	for r := minRow; r <= maxRow; r++ {
		if r > minRow {
			b.WriteByte('\n')
		}
		for c := minCol; c <= maxCol; c++ {
			if c > minCol {
				b.WriteByte('\t')
			}
			if r < len(rows) && dayOf(c) <= dayCount {
				b.WriteString(rows[r].Value(dayOf(c)))
			}
		}
	}
	return b.String()
}

// SplitBlock parses clipboard text into rows of columns. Any newline
// convention is accepted and one trailing empty row artifact is dropped.
func SplitBlock(text string) [][]string {
	normalized := strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(text)
	lines := strings.Split(normalized, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	block := make([][]string, len(lines))
	for i, line := range lines {
		block[i] = strings.Split(line, "\t")
	}
	return block
}

// Paste writes clipboard text into the grid and returns a new snapshot.
//
// When the text is a single scalar and the selection spans more than one
// cell, the scalar is broadcast across the whole selection. Otherwise the
// block is written from the selection's top-left corner (or (0,0) with no
// selection); cells that would land outside the grid are silently dropped.
func Paste(rows []timesheet.Row, sel *Rect, text string, dayCount int) []timesheet.Row {
	block := SplitBlock(text)
	if len(block) == 0 {
		return rows
	}

	out := timesheet.CloneRows(rows)

	if len(block) == 1 && len(block[0]) == 1 && sel != nil && !sel.IsSingleCell() {
		value := strings.TrimSpace(block[0][0])
		minRow, minCol, maxRow, maxCol := sel.Bounds()
		for r := minRow; r <= maxRow && r < len(out); r++ {
			for c := minCol; c <= maxCol && dayOf(c) <= dayCount; c++ {
				out[r].Attendance[dayOf(c)] = value
			}
		}
		return out
	}

	startRow, startCol := 0, 0
	if sel != nil {
		startRow, startCol, _, _ = sel.Bounds()
	}
	for i, line := range block {
		r := startRow + i
		if r >= len(out) {
			break
		}
		for j, value := range line {
			c := startCol + j
			if dayOf(c) > dayCount {
				break
			}
			out[r].Attendance[dayOf(c)] = strings.TrimSpace(value)
		}
	}
	return out
}

// Fill broadcasts the selection's top-left value across the whole rectangle.
func Fill(rows []timesheet.Row, sel Rect, dayCount int) []timesheet.Row {
	minRow, minCol, maxRow, maxCol := sel.Bounds()
	if minRow >= len(rows) || dayOf(minCol) > dayCount {
		return rows
	}

	value := rows[minRow].Value(dayOf(minCol))
	out := timesheet.CloneRows(rows)
	for r := minRow; r <= maxRow && r < len(out); r++ {
		for c := minCol; c <= maxCol && dayOf(c) <= dayCount; c++ {
			out[r].Attendance[dayOf(c)] = value
		}
	}
	return out
}

// Clear empties every cell in the rectangle.
func Clear(rows []timesheet.Row, sel Rect, dayCount int) []timesheet.Row {
	minRow, minCol, maxRow, maxCol := sel.Bounds()

	out := timesheet.CloneRows(rows)
	for r := minRow; r <= maxRow && r < len(out); r++ {
		for c := minCol; c <= maxCol && dayOf(c) <= dayCount; c++ {
			out[r].Attendance[dayOf(c)] = ""
		}
	}
	return out
}
