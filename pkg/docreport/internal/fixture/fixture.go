// Package fixture builds register workbooks for tests.
package fixture

import (
	"time"

	"github.com/ukaji3/docreport-go/pkg/docreport/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names of a fixture workbook. The register is the second sheet.
const (
	CoverSheet    = "Aprašas"
	RegisterSheet = "Registras"
)

// Header places "Atsakymo data" in column 10.
var Header = []interface{}{
	"Nr.",
	models.ColPowerVE,
	models.ColPowerSE,
	models.ColPowerEEKI,
	models.ColDocument,
	models.ColType,
	models.ColRoute1,
	models.ColRoute2,
	models.ColReceivedDate,
	models.ColResponseDate,
}

// Row is one register row. A nil field leaves the cell blank.
type Row struct {
	PowerVE   interface{}
	PowerSE   interface{}
	PowerEEKI interface{}
	Document  interface{}
	Type      interface{}
	Route1    interface{}
	Route2    interface{}
	Received  interface{}
	Response  interface{}
}

// Date returns midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Write saves a two-sheet workbook whose second sheet holds rows.
func Write(path string, rows []Row) error {
	return WriteWithHeader(path, Header, func(i int, r Row) []interface{} {
		return []interface{}{
			i + 1, r.PowerVE, r.PowerSE, r.PowerEEKI,
			r.Document, r.Type, r.Route1, r.Route2,
			r.Received, r.Response,
		}
	}, rows)
}

// WriteWithHeader saves a workbook with a custom header and row layout.
func WriteWithHeader(path string, header []interface{}, layout func(int, Row) []interface{}, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), CoverSheet); err != nil {
		return err
	}
	if err := f.SetCellValue(CoverSheet, "A1", "Dokumentų registras"); err != nil {
		return err
	}
	if _, err := f.NewSheet(RegisterSheet); err != nil {
		return err
	}

	if err := f.SetSheetRow(RegisterSheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range rows {
		cells := layout(i, r)
		for c, v := range cells {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(RegisterSheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
