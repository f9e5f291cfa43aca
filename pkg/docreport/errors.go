package docreport

import (
	"fmt"

	"github.com/ukaji3/docreport-go/pkg/docreport/export"
	"github.com/ukaji3/docreport-go/pkg/docreport/loader"
)

// Sentinel errors callers can match with errors.Is.
var (
	// ErrFileNotFound indicates the input file does not exist.
	ErrFileNotFound = loader.ErrFileNotFound
	// ErrInvalidFormat indicates the input file is not a valid xlsx format.
	ErrInvalidFormat = loader.ErrInvalidFormat
	ErrSheetNotFound = loader.ErrSheetNotFound
	ErrMissingColumn = loader.ErrMissingColumn
	ErrInvalidValue  = loader.ErrInvalidValue
	// ErrFormatting is the reason of a degraded result.
	ErrFormatting = export.ErrFormatting
)

// Stage names a pipeline step.
type Stage string

const (
	StageLoad      Stage = "load"
	StageAggregate Stage = "aggregate"
	StageChart     Stage = "chart"
	StageExport    Stage = "export"
	StageFormat    Stage = "format"
)

// StageError represents a failure of one pipeline stage.
type StageError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed (%s): %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage Stage, path string, err error) *StageError {
	return &StageError{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}
