package docreport

import (
	"github.com/google/uuid"
	"github.com/ukaji3/docreport-go/pkg/docreport/aggregate"
	"github.com/ukaji3/docreport-go/pkg/docreport/chart"
	"github.com/ukaji3/docreport-go/pkg/docreport/export"
	"github.com/ukaji3/docreport-go/pkg/docreport/loader"
	"github.com/ukaji3/docreport-go/pkg/docreport/models"
	"go.uber.org/zap"
)

// Status is the outcome of a completed run.
type Status string

const (
	// StatusSucceeded means every stage, highlighting included, completed.
	StatusSucceeded Status = "succeeded"
	// StatusDegraded means the workbook was written without highlighting.
	StatusDegraded Status = "degraded"
)

// Result describes a completed run.
type Result struct {
	// RunID identifies the run in logs.
	RunID  string
	Status Status
	// Reason is set when Status is StatusDegraded.
	Reason error
	// Report holds the computed tables.
	Report *models.Report
	// WorkbookPath and ChartPath are the written files.
	WorkbookPath string
	ChartPath    string
	// Chart is the rendered chart layout including its pixel size.
	Chart models.ChartSpec
}

// Degraded reports whether highlighting was skipped.
func (r *Result) Degraded() bool {
	return r.Status == StatusDegraded
}

// Generate runs the pipeline: load, aggregate, chart, export, highlight.
// Failures of the first four stages abort the run with a *StageError. A
// highlighting failure is logged and reported as a degraded Result.
func Generate(opts Options) (*Result, error) {
	opts = opts.withDefaults()
	runID := uuid.NewString()
	logger := opts.Logger.With(zap.String("run_id", runID))

	logger.Info("report started", zap.String("input", opts.InputPath))

	ds, err := loader.Load(opts.InputPath, loader.Params{
		SheetIndex:   opts.SheetIndex,
		DeadlineDays: opts.DeadlineDays,
		Logger:       logger.With(zap.String("stage", string(StageLoad))),
	})
	if err != nil {
		return nil, NewStageError(StageLoad, opts.InputPath, err)
	}

	report := &models.Report{
		Data: ds,
		Sums: aggregate.PowerSums(ds.Records, aggregate.Params{
			HybridTypes:        opts.HybridTypes,
			ConditionDocuments: opts.ConditionDocuments,
		}),
		Routing: aggregate.WeeklyRouting(ds.Records),
		Volume:  chart.WeeklyVolume(ds.Records),
	}
	logger.Info("aggregates computed",
		zap.String("stage", string(StageAggregate)),
		zap.Float64("hybrid_ve", report.Sums.HybridVE),
		zap.Float64("conditions_se", report.Sums.ConditionsSE),
		zap.Int("routing_weeks", len(report.Routing)),
		zap.Int("volume_weeks", len(report.Volume)))

	spec := opts.Chart
	if err := chart.Render(report.Volume, &spec, opts.ChartPath); err != nil {
		return nil, NewStageError(StageChart, opts.ChartPath, err)
	}
	logger.Info("chart rendered",
		zap.String("stage", string(StageChart)),
		zap.String("path", opts.ChartPath),
		zap.Intp("width_px", spec.W),
		zap.Intp("height_px", spec.H))

	if err := export.Write(opts.WorkbookPath, report, logger.With(zap.String("stage", string(StageExport)))); err != nil {
		return nil, NewStageError(StageExport, opts.WorkbookPath, err)
	}

	result := &Result{
		RunID:        runID,
		Status:       StatusSucceeded,
		Report:       report,
		WorkbookPath: opts.WorkbookPath,
		ChartPath:    opts.ChartPath,
		Chart:        spec,
	}

	err = export.Highlight(opts.WorkbookPath, ds.Records, export.HighlightParams{
		Column: opts.HighlightColumn,
		OnTime: opts.OnTimeColor,
		Late:   opts.LateColor,
		Logger: logger.With(zap.String("stage", string(StageFormat))),
	})
	if err != nil {
		result.Status = StatusDegraded
		result.Reason = NewStageError(StageFormat, opts.WorkbookPath, err)
		logger.Warn("report completed without highlighting", zap.Error(result.Reason))
		return result, nil
	}

	logger.Info("report completed", zap.String("workbook", opts.WorkbookPath))
	return result, nil
}
