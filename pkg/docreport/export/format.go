package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/docreport-go/pkg/docreport/models"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Fill colours of the highlighted column.
const (
	OnTimeColor = "00FF00"
	LateColor   = "FF0000"
)

// DefaultHighlightColumn is the 1-based column that receives the fills.
const DefaultHighlightColumn = 10

// ErrFormatting wraps every failure of the highlighting step.
var ErrFormatting = errors.New("conditional formatting failed")

// HighlightParams configures Highlight.
type HighlightParams struct {
	// Column is the 1-based worksheet column to fill.
	Column int
	// OnTime and Late are RRGGBB fill colours.
	OnTime string
	Late   string
	Logger *zap.Logger
}

// DefaultHighlightParams fills column 10 green/red.
func DefaultHighlightParams() HighlightParams {
	return HighlightParams{
		Column: DefaultHighlightColumn,
		OnTime: OnTimeColor,
		Late:   LateColor,
	}
}

// Highlight reopens the workbook at path and fills, for every record i, the
// cell at row i+2 of the data sheet: on-time colour when the response is
// absent or not after the deadline, late colour otherwise. Existing cell
// formats are kept. Panics are recovered and returned as errors.
func Highlight(path string, records []models.DocumentRecord, params HighlightParams) (err error) {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrFormatting, r)
		}
	}()

	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFormatting, err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(models.SheetData)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFormatting, err)
	}
	if idx < 0 {
		return fmt.Errorf("%w: sheet %q not found", ErrFormatting, models.SheetData)
	}

	styles := newFillCache(f)
	late := 0
	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(params.Column, i+2)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFormatting, err)
		}

		color := params.OnTime
		if !rec.OnTime() {
			color = params.Late
			late++
		}

		base, err := f.GetCellStyle(models.SheetData, cell)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrFormatting, cell, err)
		}
		styleID, err := styles.get(base, color)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrFormatting, cell, err)
		}
		if err := f.SetCellStyle(models.SheetData, cell, cell, styleID); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrFormatting, cell, err)
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("%w: %v", ErrFormatting, err)
	}

	logger.Info("deadline highlighting applied",
		zap.Int("rows", len(records)),
		zap.Int("late", late))
	return nil
}

type fillKey struct {
	base  int
	color string
}

// fillCache derives one style per (existing style, colour) pair.
type fillCache struct {
	f      *excelize.File
	styles map[fillKey]int
}

func newFillCache(f *excelize.File) *fillCache {
	return &fillCache{f: f, styles: make(map[fillKey]int)}
}

func (c *fillCache) get(base int, color string) (int, error) {
	key := fillKey{base: base, color: color}
	if id, ok := c.styles[key]; ok {
		return id, nil
	}

	style, err := c.f.GetStyle(base)
	if err != nil {
		return 0, err
	}
	style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}

	id, err := c.f.NewStyle(style)
	if err != nil {
		return 0, err
	}
	c.styles[key] = id
	return id, nil
}

// CellFill returns the solid fill colour of a cell, or "" when it has none.
func CellFill(f *excelize.File, sheet, cell string) (string, error) {
	styleID, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return "", err
	}
	style, err := f.GetStyle(styleID)
	if err != nil {
		return "", err
	}
	if style.Fill.Pattern != 1 || len(style.Fill.Color) == 0 {
		return "", nil
	}
	color := strings.ToUpper(strings.TrimPrefix(style.Fill.Color[0], "#"))
	if len(color) == 8 {
		color = color[2:]
	}
	return color, nil
}
