package loader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// RawRow is one non-blank data row of a sheet.
type RawRow struct {
	// R is the worksheet row number (1-based).
	R int
	// Cells holds raw cell values aligned with the header.
	Cells []string
}

// ExtractRows reads the sheet at the given index. The first row is returned as
// the header; blank rows are skipped and short rows are padded to the header
// width. A blank header cell over a used column is named "Unnamed: <index>".
// Cell values are raw (dates as serial numbers).
func ExtractRows(f *excelize.File, sheetIndex int) (string, []string, []RawRow, error) {
	sheetName := f.GetSheetName(sheetIndex)
	if sheetName == "" {
		return "", nil, nil, fmt.Errorf("%w: index %d of %d", ErrSheetNotFound, sheetIndex, f.SheetCount)
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return sheetName, nil, nil, err
	}
	if len(rows) == 0 {
		return sheetName, nil, nil, nil
	}

	width := usedWidth(rows[0])
	var data [][]string
	var rowNums []int
	for rowIdx, row := range rows[1:] {
		w := usedWidth(row)
		if w == 0 {
			continue
		}
		if w > width {
			width = w
		}
		data = append(data, row)
		rowNums = append(rowNums, rowIdx+2) // header is row 1
	}

	header := headerNames(rows[0], width)
	result := make([]RawRow, len(data))
	for i, row := range data {
		cells := make([]string, width)
		copy(cells, row)
		result[i] = RawRow{R: rowNums[i], Cells: cells}
	}

	return sheetName, header, result, nil
}

// usedWidth returns the position after the last non-blank cell.
func usedWidth(row []string) int {
	for i := len(row) - 1; i >= 0; i-- {
		if strings.TrimSpace(row[i]) != "" {
			return i + 1
		}
	}
	return 0
}

// headerNames trims the header cells and names blank ones after their
// 0-based position.
func headerNames(row []string, width int) []string {
	header := make([]string, width)
	for i := range header {
		if i < len(row) {
			header[i] = strings.TrimSpace(row[i])
		}
		if header[i] == "" {
			header[i] = fmt.Sprintf("Unnamed: %d", i)
		}
	}
	return header
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

// parseFloat parses a power cell. Blank cells are absent and yield 0.
func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
}
