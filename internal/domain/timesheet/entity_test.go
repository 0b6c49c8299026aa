package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowWithValueCopies(t *testing.T) {
	orig := Row{ID: "r1", Attendance: map[int]string{1: "1"}}
	edited := orig.WithValue(2, "0.5")

	assert.Equal(t, "1", edited.Value(1))
	assert.Equal(t, "0.5", edited.Value(2))
	assert.Equal(t, "", orig.Value(2), "original row must stay untouched")
}

func TestCloneRows(t *testing.T) {
	rows := []Row{{ID: "r1", Attendance: map[int]string{1: "1"}}}
	clone := CloneRows(rows)
	clone[0].Attendance[1] = "Red"

	assert.Equal(t, "1", rows[0].Attendance[1])
}
