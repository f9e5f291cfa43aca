package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/lo"
	"github.com/ukaji3/docreport-go/pkg/docreport/models"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// DateFormat is the number format of date cells.
const DateFormat = "yyyy-mm-dd"

// Sheet is one output sheet: a header row followed by data rows.
type Sheet struct {
	Name   string
	Header []interface{}
	Rows   [][]interface{}
}

// Sheets lays out the report in output order: power sums, routing table, data.
func Sheets(report *models.Report) []Sheet {
	sheets := []Sheet{
		{
			Name:   models.SheetPowerSums,
			Header: report.Sums.Headers(),
			Rows:   [][]interface{}{report.Sums.Values()},
		},
		{
			Name:   models.SheetRouting,
			Header: models.WeeklyRoutingHeaders,
			Rows: lo.Map(report.Routing, func(w models.WeeklyRouting, _ int) []interface{} {
				return w.Values()
			}),
		},
	}

	data := Sheet{Name: models.SheetData}
	if report.Data != nil {
		data.Header = lo.Map(report.Data.Columns, func(c string, _ int) interface{} { return c })
		data.Rows = make([][]interface{}, len(report.Data.Records))
		for i := range report.Data.Records {
			data.Rows[i] = report.Data.Row(i)
		}
	}
	return append(sheets, data)
}

// Write saves the report sheets to a new workbook at path, creating the
// parent directory if needed. An existing file is replaced.
func Write(path string, report *models.Report, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	f := excelize.NewFile()
	defer f.Close()

	format := DateFormat
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		return fmt.Errorf("failed to create date style: %w", err)
	}

	for i, sheet := range Sheets(report) {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", sheet.Name, err)
		}

		if err := writeSheet(f, sheet, dateStyle); err != nil {
			return fmt.Errorf("failed to write sheet %q: %w", sheet.Name, err)
		}
		logger.Debug("sheet written", zap.String("sheet", sheet.Name), zap.Int("rows", len(sheet.Rows)))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	logger.Info("workbook written", zap.String("path", path))
	return nil
}

func writeSheet(f *excelize.File, sheet Sheet, dateStyle int) error {
	if err := f.SetSheetRow(sheet.Name, "A1", &sheet.Header); err != nil {
		return err
	}

	for rowIdx, row := range sheet.Rows {
		rowNum := rowIdx + 2 // 1-based, skip header
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
			return err
		}
		for colIdx, v := range row {
			if _, ok := v.(time.Time); !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet.Name, cell, cell, dateStyle); err != nil {
				return err
			}
		}
	}

	if sheet.Name != models.SheetData || len(sheet.Header) == 0 {
		return nil
	}

	if err := f.SetPanes(sheet.Name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}
	ref, err := rangeRef(1, 1, len(sheet.Header), len(sheet.Rows)+1)
	if err != nil {
		return err
	}
	return f.AutoFilter(sheet.Name, ref, nil)
}
