package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardhq/timesheet-backend-go/internal/domain/timesheet"
)

func gridFixture() []timesheet.Row {
	return []timesheet.Row{
		{ID: "r1", Code: "001", Attendance: map[int]string{1: "1", 2: "0.5", 3: "P"}},
		{ID: "r2", Code: "002", Attendance: map[int]string{1: "CN", 2: "1"}},
		{ID: "r3", Code: "003", Attendance: map[int]string{}},
	}
}

func TestSerializeBlock(t *testing.T) {
	rows := gridFixture()
	sel := Rect{StartRow: 0, StartCol: 0, EndRow: 1, EndCol: 2}

	got := Serialize(rows, sel, 31)
	assert.Equal(t, "1\t0.5\tP\nCN\t1\t", got, "no trailing newline, empty cells as empty strings")
}

func TestSerializeReversedCorners(t *testing.T) {
	rows := gridFixture()
	sel := Rect{StartRow: 1, StartCol: 2, EndRow: 0, EndCol: 0}

	assert.Equal(t, "1\t0.5\tP\nCN\t1\t", Serialize(rows, sel, 31))
}

func TestPasteRoundTrip(t *testing.T) {
	rows := gridFixture()
	sel := Rect{StartRow: 0, StartCol: 0, EndRow: 1, EndCol: 2}
	text := Serialize(rows, sel, 31)

	blank := []timesheet.Row{
		{ID: "a", Attendance: map[int]string{}},
		{ID: "b", Attendance: map[int]string{}},
	}
	pasted := Paste(blank, &Rect{}, text, 31)

	assert.Equal(t, "1", pasted[0].Value(1))
	assert.Equal(t, "0.5", pasted[0].Value(2))
	assert.Equal(t, "P", pasted[0].Value(3))
	assert.Equal(t, "CN", pasted[1].Value(1))
	assert.Equal(t, "1", pasted[1].Value(2))
	assert.Equal(t, "", pasted[1].Value(3))
}

func TestSplitBlockNewlineConventions(t *testing.T) {
	for _, text := range []string{"1\t2\n3\t4", "1\t2\r\n3\t4", "1\t2\r3\t4"} {
		block := SplitBlock(text)
		require.Len(t, block, 2)
		assert.Equal(t, []string{"1", "2"}, block[0])
		assert.Equal(t, []string{"3", "4"}, block[1])
	}
}

func TestSplitBlockDropsOneTrailingEmptyRow(t *testing.T) {
	block := SplitBlock("1\n2\n")
	require.Len(t, block, 2)

	// only one artifact row is dropped
	block = SplitBlock("1\n\n\n")
	assert.Len(t, block, 3)
}

func TestPasteBroadcastScalarIntoSelection(t *testing.T) {
	rows := gridFixture()
	sel := Rect{StartRow: 0, StartCol: 0, EndRow: 2, EndCol: 1}

	out := Paste(rows, &sel, " 1 ", 31)
	for r := 0; r < 3; r++ {
		assert.Equal(t, "1", out[r].Value(1), "row %d day 1", r)
		assert.Equal(t, "1", out[r].Value(2), "row %d day 2", r)
	}
	assert.Equal(t, "P", out[0].Value(3), "cells outside the selection untouched")
}

func TestPasteScalarIntoSingleCellIsBlockWrite(t *testing.T) {
	rows := gridFixture()
	sel := Rect{StartRow: 1, StartCol: 1, EndRow: 1, EndCol: 1}

	out := Paste(rows, &sel, "0.5", 31)
	assert.Equal(t, "0.5", out[1].Value(2))
	assert.Equal(t, "CN", out[1].Value(1))
}

func TestPasteBlockDropsOutOfRange(t *testing.T) {
	rows := gridFixture()
	sel := Rect{StartRow: 2, StartCol: 30, EndRow: 2, EndCol: 30}

	out := Paste(rows, &sel, "a\tb\tc\nx\ty\tz", 31)
	require.Len(t, out, 3, "grid never grows on paste")
	assert.Equal(t, "a", out[2].Value(31))
	assert.Equal(t, "", out[2].Value(32))
}

func TestPasteWithoutSelectionStartsAtOrigin(t *testing.T) {
	rows := gridFixture()

	out := Paste(rows, nil, "9", 31)
	assert.Equal(t, "9", out[0].Value(1))
}

func TestPasteCopyOnWrite(t *testing.T) {
	rows := gridFixture()
	sel := Rect{StartRow: 0, StartCol: 0, EndRow: 0, EndCol: 0}

	_ = Paste(rows, &sel, "X", 31)
	assert.Equal(t, "1", rows[0].Value(1), "input snapshot must not be mutated")
}

func TestFillBroadcastsTopLeft(t *testing.T) {
	rows := gridFixture()
	sel := Rect{StartRow: 0, StartCol: 0, EndRow: 2, EndCol: 1}

	out := Fill(rows, sel, 31)
	for r := 0; r < 3; r++ {
		assert.Equal(t, "1", out[r].Value(1))
		assert.Equal(t, "1", out[r].Value(2))
	}
	assert.Equal(t, "0.5", rows[0].Value(2), "input snapshot must not be mutated")
}

func TestClearEmptiesSelection(t *testing.T) {
	rows := gridFixture()
	sel := Rect{StartRow: 0, StartCol: 0, EndRow: 1, EndCol: 2}

	out := Clear(rows, sel, 31)
	assert.Equal(t, "", out[0].Value(1))
	assert.Equal(t, "", out[1].Value(2))
	assert.Equal(t, "1", rows[0].Value(1), "input snapshot must not be mutated")
}
