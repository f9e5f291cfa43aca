// Package loader reads the document register sheet and normalizes it into
// models.DocumentRecord values.
package loader

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/ukaji3/docreport-go/pkg/docreport/models"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// DefaultDeadlineDays is the response window in business days.
const DefaultDeadlineDays = 10

// textSentinels are the spellings normalized to models.Missing. "nan" is what
// a blank cell becomes once a column is coerced to text.
var textSentinels = []string{"", "None", "nan"}

// Params configures loading.
type Params struct {
	// SheetIndex is the 0-based sheet position.
	SheetIndex int
	// DeadlineDays is the number of business days added to the received date.
	DeadlineDays int
	// Logger receives progress messages; nil disables logging.
	Logger *zap.Logger
}

// DefaultParams reads the second sheet with a 10 business day deadline.
func DefaultParams() Params {
	return Params{SheetIndex: 1, DeadlineDays: DefaultDeadlineDays}
}

// Load opens the workbook at path and returns the normalized dataset.
func Load(path string, params Params) (*models.Dataset, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return LoadFile(f, params)
}

// LoadFile normalizes the configured sheet of an open workbook.
func LoadFile(f *excelize.File, params Params) (*models.Dataset, error) {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if params.DeadlineDays <= 0 {
		params.DeadlineDays = DefaultDeadlineDays
	}

	sheetName, header, rows, err := ExtractRows(f, params.SheetIndex)
	if err != nil {
		return nil, err
	}

	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	date1904 := props.Date1904 != nil && *props.Date1904

	index := make(map[string]int, len(header))
	for i, h := range header {
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	for _, col := range models.RequiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %q in sheet %q", ErrMissingColumn, col, sheetName)
		}
	}

	extras := lo.Filter(header, func(h string, _ int) bool {
		return !lo.Contains(models.RequiredColumns, h) && !lo.Contains(models.DerivedColumns, h)
	})

	ds := &models.Dataset{
		Columns: append(lo.Filter(header, func(h string, _ int) bool {
			return !lo.Contains(models.DerivedColumns, h)
		}), models.DerivedColumns...),
		Records: make([]models.DocumentRecord, 0, len(rows)),
	}

	for _, row := range rows {
		rec, err := normalizeRow(row, index, extras, params.DeadlineDays, date1904)
		if err != nil {
			return nil, err
		}
		ds.Records = append(ds.Records, rec)
	}

	logger.Info("loaded document register",
		zap.String("sheet", sheetName),
		zap.Int("records", len(ds.Records)),
		zap.Int("columns", len(ds.Columns)))

	return ds, nil
}

// normalizeRow converts one raw row. Absent numbers and dates are filled with
// 0 first; text sentinels become models.Missing afterwards.
func normalizeRow(row RawRow, index map[string]int, extras []string, deadlineDays int, date1904 bool) (models.DocumentRecord, error) {
	cell := func(col string) string { return row.Cells[index[col]] }
	var rec models.DocumentRecord

	powers := []struct {
		col string
		dst *float64
	}{
		{models.ColPowerVE, &rec.PowerVE},
		{models.ColPowerSE, &rec.PowerSE},
		{models.ColPowerEEKI, &rec.PowerEEKI},
	}
	for _, p := range powers {
		v, err := parseFloat(cell(p.col))
		if err != nil {
			return rec, &CellError{Column: p.col, Row: row.R, Value: cell(p.col), Err: fmt.Errorf("%w: %v", ErrInvalidValue, err)}
		}
		*p.dst = v
	}

	dates := []struct {
		col string
		dst *time.Time
	}{
		{models.ColReceivedDate, &rec.Received},
		{models.ColResponseDate, &rec.Response},
	}
	for _, d := range dates {
		v, err := parseDate(cell(d.col), date1904)
		if err != nil {
			return rec, &CellError{Column: d.col, Row: row.R, Value: cell(d.col), Err: fmt.Errorf("%w: %v", ErrInvalidValue, err)}
		}
		*d.dst = v
	}

	if !rec.Received.IsZero() {
		rec.Deadline = AddBusinessDays(rec.Received, deadlineDays)
	}
	rec.ReceivedWeek = ISOWeek(rec.Received)
	rec.AnsweredWeek = ISOWeek(rec.Response)

	rec.Document = normalizeText(cell(models.ColDocument))
	rec.Type = normalizeText(cell(models.ColType))
	rec.Route1 = normalizeText(cell(models.ColRoute1))
	rec.Route2 = normalizeText(cell(models.ColRoute2))

	if len(extras) > 0 {
		rec.Extra = make(map[string]interface{}, len(extras))
		for _, col := range extras {
			rec.Extra[col] = normalizeExtra(cell(col))
		}
	}

	return rec, nil
}

// normalizeText applies the text coercion and maps sentinels to Missing.
func normalizeText(s string) string {
	if lo.Contains(textSentinels, strings.TrimSpace(s)) {
		return models.Missing
	}
	return s
}

// normalizeExtra keeps the fill-then-nullify order of untyped columns:
// blank cells become 0, the literal "None" becomes missing.
func normalizeExtra(s string) interface{} {
	switch strings.TrimSpace(s) {
	case "":
		return int64(0)
	case "None":
		return nil
	}
	return parseValue(s)
}
