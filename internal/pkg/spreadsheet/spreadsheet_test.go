package spreadsheet

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/guardhq/timesheet-backend-go/internal/domain/timesheet"
)

func TestExportImportRoundTrip(t *testing.T) {
	rows := []timesheet.Row{
		{Code: "001", Name: "Nguyen Van A", Department: "Site Alpha", Shift: "08:00 - 17:00",
			Attendance: map[int]string{1: "1", 2: "0.5", 3: "P"}},
		{Code: "002", Name: "Tran Thi B", Department: "Site Beta", Shift: "08:00 - 17:00",
			Attendance: map[int]string{1: "CN"}},
	}

	data, err := Export(2025, time.March, rows)
	require.NoError(t, err)

	got, rowErrs, err := Import(bytes.NewReader(data), 31)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, got, 2)

	assert.Equal(t, "001", got[0].Code)
	assert.Equal(t, "Nguyen Van A", got[0].Name)
	assert.Equal(t, "Site Alpha", got[0].Department)
	assert.Equal(t, "1", got[0].Value(1))
	assert.Equal(t, "0.5", got[0].Value(2))
	assert.Equal(t, "P", got[0].Value(3))
	assert.Equal(t, "CN", got[1].Value(1))
}

func TestImportSkipsAndReportsInvalidRows(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Code", "Name", "Department", "Shift", 1, 2}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"001", "Valid", "Alpha", "", "1", "P"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"", "No Code", "", "", "", ""}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]interface{}{"003", "", "", "", "", ""}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, rowErrs, err := Import(bytes.NewReader(buf.Bytes()), 28)
	require.NoError(t, err)
	require.Len(t, rows, 1, "valid rows kept despite invalid neighbors")
	assert.Equal(t, "001", rows[0].Code)

	require.Len(t, rowErrs, 2)
	assert.Equal(t, 3, rowErrs[0].Row)
	assert.Equal(t, "missing code", rowErrs[0].Reason)
	assert.Equal(t, 4, rowErrs[1].Row)
	assert.Equal(t, "missing name", rowErrs[1].Reason)
}

func TestImportDiscoversHeaderBelowTitle(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Attendance March 2025"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Code", "Name", "Department", "Shift", 1}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"001", "A", "", "", "1"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, rowErrs, err := Import(bytes.NewReader(buf.Bytes()), 31)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0].Value(1))
}

func TestImportDropsDaysBeyondMonth(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Code", "Name", "Department", "Shift", 28, 29}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"001", "A", "", "", "1", "1"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, _, err := Import(bytes.NewReader(buf.Bytes()), 28)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0].Value(28))
	assert.Equal(t, "", rows[0].Value(29))
}

func TestImportRejectsWorkbookWithoutHeader(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"just", "data"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, _, err = Import(bytes.NewReader(buf.Bytes()), 31)
	assert.Error(t, err)
}

func TestTemplateHasHeaderOnly(t *testing.T) {
	data, err := Template(2025, time.February)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	cells, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, cells, 1)
	// Code..Shift + 28 days + Total
	assert.Len(t, cells[0], 4+28+1)
}
