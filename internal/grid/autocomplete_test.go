package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardhq/timesheet-backend-go/internal/domain/employee"
	"github.com/guardhq/timesheet-backend-go/internal/domain/timesheet"
)

func masterFixture() []employee.Employee {
	return []employee.Employee{
		{ID: "e1", Code: "NV001", Name: "Nguyen Van A", Department: "Site Alpha"},
		{ID: "e2", Code: "NV002", Name: "Tran Thi B", Department: "Site Beta"},
		{ID: "e3", Code: "NV003", Name: "Le Van C", Department: "Site Alpha"},
		{ID: "e4", Code: "NV010", Name: "Pham Van D", Department: "Site Beta"},
		{ID: "e5", Code: "NV011", Name: "Hoang Van E", Department: "Site Alpha"},
		{ID: "e6", Code: "NV012", Name: "Vu Van F", Department: "Site Beta"},
		{ID: "e7", Code: "NV013", Name: "Dang Van G", Department: "Site Alpha"},
	}
}

func TestSearchEmployees(t *testing.T) {
	master := masterFixture()

	byCode := SearchEmployees(master, "nv00", FieldCode)
	require.Len(t, byCode, 3)
	assert.Equal(t, "NV001", byCode[0].Code)

	byName := SearchEmployees(master, "VAN", FieldName)
	assert.Len(t, byName, MaxSuggestions, "results capped")

	assert.Empty(t, SearchEmployees(master, "", FieldCode))
	assert.Empty(t, SearchEmployees(master, "   ", FieldName))
	assert.Empty(t, SearchEmployees(master, "zzz", FieldCode))
}

func TestSuggesterInputAndFocus(t *testing.T) {
	master := masterFixture()
	s := NewSuggester()

	s.OnInput(master, "r1", FieldCode, "NV00")
	assert.Len(t, s.Suggestions("r1", FieldCode), 3)
	assert.Empty(t, s.Suggestions("r2", FieldCode), "dropdown belongs to one field")

	s.OnFocus(master, "r2", FieldName, "Tran")
	assert.Empty(t, s.Suggestions("r1", FieldCode))
	assert.Len(t, s.Suggestions("r2", FieldName), 1)
}

func TestSuggesterCompositionSuppression(t *testing.T) {
	master := masterFixture()
	s := NewSuggester()

	s.OnInput(master, "r1", FieldName, "Tran")
	require.Len(t, s.Suggestions("r1", FieldName), 1)

	s.CompositionStart()
	s.OnInput(master, "r1", FieldName, "zzz")
	assert.Len(t, s.Suggestions("r1", FieldName), 1, "suggestions frozen during composition")

	s.CompositionEnd()
	s.OnInput(master, "r1", FieldName, "zzz")
	assert.Empty(t, s.Suggestions("r1", FieldName))
}

func TestSuggesterBlurGraceDelay(t *testing.T) {
	master := masterFixture()
	s := NewSuggesterWithDelay(20 * time.Millisecond)

	s.OnInput(master, "r1", FieldCode, "NV")
	s.OnBlur("r1", FieldCode)

	assert.NotEmpty(t, s.Suggestions("r1", FieldCode), "still open during grace delay")

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, s.Suggestions("r1", FieldCode))
}

func TestSuggesterBlurCancelledByFieldChange(t *testing.T) {
	master := masterFixture()
	s := NewSuggesterWithDelay(20 * time.Millisecond)

	s.OnInput(master, "r1", FieldCode, "NV")
	s.OnBlur("r1", FieldCode)
	s.OnFocus(master, "r2", FieldName, "Tran")

	time.Sleep(60 * time.Millisecond)
	assert.Len(t, s.Suggestions("r2", FieldName), 1, "delayed close of the old field must not hit the new one")
}

func TestApplySuggestionAtomic(t *testing.T) {
	s := NewSuggester()
	rows := []timesheet.Row{
		{ID: "r1", Code: "x", Name: "y", Department: "z", Attendance: map[int]string{1: "1"}},
	}
	chosen := employee.Employee{ID: "e2", Code: "NV002", Name: "Tran Thi B", Department: "Site Beta"}

	out := s.ApplySuggestion(rows, "r1", chosen)
	assert.Equal(t, "NV002", out[0].Code)
	assert.Equal(t, "Tran Thi B", out[0].Name)
	assert.Equal(t, "Site Beta", out[0].Department)
	assert.Equal(t, "1", out[0].Value(1), "attendance untouched")
	assert.Equal(t, "x", rows[0].Code, "input snapshot untouched")
	assert.Empty(t, s.Suggestions("r1", FieldCode), "dropdown closed")
}
