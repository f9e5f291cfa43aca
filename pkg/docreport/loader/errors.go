package loader

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the workbook has no sheet at the requested index.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrMissingColumn indicates a required header is absent from the sheet.
var ErrMissingColumn = errors.New("missing required column")

// ErrInvalidValue indicates a cell could not be converted to its column type.
var ErrInvalidValue = errors.New("invalid cell value")

// CellError locates a conversion failure.
type CellError struct {
	Column string
	Row    int
	Value  string
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d column %q value %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}
