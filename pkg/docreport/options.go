// Package docreport builds the document register report: it loads the
// register sheet, aggregates summary tables, renders the weekly volume chart
// and writes a highlighted output workbook.
package docreport

import (
	"github.com/ukaji3/docreport-go/pkg/docreport/aggregate"
	"github.com/ukaji3/docreport-go/pkg/docreport/export"
	"github.com/ukaji3/docreport-go/pkg/docreport/loader"
	"github.com/ukaji3/docreport-go/pkg/docreport/models"
	"go.uber.org/zap"
)

// Options configures one report run. Every path is explicit.
type Options struct {
	// InputPath is the source workbook.
	InputPath string
	// SheetIndex is the 0-based index of the register sheet.
	SheetIndex int
	// WorkbookPath is the output workbook; its directory is created on demand.
	WorkbookPath string
	// ChartPath is the output PNG; its directory is created on demand.
	ChartPath string
	// DeadlineDays is the response window in business days.
	DeadlineDays int
	// HybridTypes and ConditionDocuments select the rows of the power sums.
	HybridTypes        []string
	ConditionDocuments []string
	// HighlightColumn is the 1-based data sheet column that receives fills.
	HighlightColumn int
	// OnTimeColor and LateColor are RRGGBB fills.
	OnTimeColor string
	LateColor   string
	// Chart describes the rendered chart.
	Chart models.ChartSpec
	// Logger receives stage progress. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns the settings of the original batch job.
func DefaultOptions() Options {
	return Options{
		InputPath:          "Uzduotis.xlsx",
		SheetIndex:         1,
		WorkbookPath:       "Analysis/Uzduotis_python.xlsx",
		ChartPath:          "Analysis/Grafikas.png",
		DeadlineDays:       loader.DefaultDeadlineDays,
		HybridTypes:        aggregate.DefaultHybridTypes,
		ConditionDocuments: aggregate.DefaultConditionDocuments,
		HighlightColumn:    export.DefaultHighlightColumn,
		OnTimeColor:        export.OnTimeColor,
		LateColor:          export.LateColor,
		Chart:              models.DefaultChartSpec(),
	}
}

// withDefaults fills zero-valued fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.DeadlineDays <= 0 {
		o.DeadlineDays = d.DeadlineDays
	}
	if o.HybridTypes == nil {
		o.HybridTypes = d.HybridTypes
	}
	if o.ConditionDocuments == nil {
		o.ConditionDocuments = d.ConditionDocuments
	}
	if o.HighlightColumn <= 0 {
		o.HighlightColumn = d.HighlightColumn
	}
	if o.OnTimeColor == "" {
		o.OnTimeColor = d.OnTimeColor
	}
	if o.LateColor == "" {
		o.LateColor = d.LateColor
	}
	if o.Chart.DPI <= 0 || o.Chart.WidthInches <= 0 || o.Chart.HeightInches <= 0 {
		o.Chart = d.Chart
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}
