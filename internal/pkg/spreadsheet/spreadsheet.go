package spreadsheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/guardhq/timesheet-backend-go/internal/domain/timesheet"
)

const sheetName = "Timesheet"

// fixed leading columns before the day columns
var headerColumns = []string{"Code", "Name", "Department", "Shift"}

// RowError reports one skipped row of an imported workbook.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// Export renders the month grid as an xlsx workbook: identity columns, one
// column per day, and a trailing Total column.
func Export(year int, month time.Month, rows []timesheet.Row) ([]byte, error) {
	days := timesheet.DaysInMonth(year, month)

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), sheetName)

	if err := writeHeader(f, days); err != nil {
		return nil, err
	}

	for i, row := range rows {
		rowNum := i + 2
		cells := []interface{}{row.Code, row.Name, row.Department, row.Shift}
		for _, d := range days {
			cells = append(cells, row.Value(d.Number))
		}
		cells = append(cells, timesheet.Total(row.Attendance))

		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Template renders an empty workbook with only the header row, for filling
// in offline and importing back.
func Template(year int, month time.Month) ([]byte, error) {
	return Export(year, month, nil)
}

func writeHeader(f *excelize.File, days []timesheet.Day) error {
	header := make([]interface{}, 0, len(headerColumns)+len(days)+1)
	for _, h := range headerColumns {
		header = append(header, h)
	}
	for _, d := range days {
		header = append(header, d.Number)
	}
	header = append(header, "Total")
	return f.SetSheetRow(sheetName, "A1", &header)
}

// Import parses an uploaded workbook back into grid rows. The header row is
// discovered by looking for the "Code" column within the first few rows, so
// files with title rows above the table still import. Invalid rows are
// skipped and reported by row number; valid rows are kept.
func Import(r io.Reader, dayCount int) ([]timesheet.Row, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet: %w", err)
	}

	headerIdx, dayCols := findHeader(cells)
	if headerIdx < 0 {
		return nil, nil, fmt.Errorf("no header row with a Code column found")
	}

	var rows []timesheet.Row
	var errs []RowError
	for i := headerIdx + 1; i < len(cells); i++ {
		line := cells[i]
		rowNum := i + 1

		code := cellAt(line, 0)
		name := cellAt(line, 1)
		if code == "" && name == "" {
			continue
		}
		if code == "" {
			errs = append(errs, RowError{Row: rowNum, Reason: "missing code"})
			continue
		}
		if name == "" {
			errs = append(errs, RowError{Row: rowNum, Reason: "missing name"})
			continue
		}

		att := map[int]string{}
		for col, day := range dayCols {
			if day > dayCount {
				continue
			}
			if v := cellAt(line, col); v != "" {
				att[day] = v
			}
		}
		rows = append(rows, timesheet.Row{
			Code:       code,
			Name:       name,
			Department: cellAt(line, 2),
			Shift:      cellAt(line, 3),
			Attendance: att,
		})
	}
	return rows, errs, nil
}

// findHeader scans the first rows for one starting with "Code" and maps each
// numeric header cell to its day number.
func findHeader(cells [][]string) (int, map[int]int) {
	limit := len(cells)
	if limit > 10 {
		limit = 10
	}
	for i := 0; i < limit; i++ {
		if !strings.EqualFold(cellAt(cells[i], 0), "Code") {
			continue
		}
		dayCols := make(map[int]int)
		for col, h := range cells[i] {
			if day, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && day >= 1 && day <= 31 {
				dayCols[col] = day
			}
		}
		return i, dayCols
	}
	return -1, nil
}

func cellAt(line []string, col int) string {
	if col >= len(line) {
		return ""
	}
	return strings.TrimSpace(line[col])
}
