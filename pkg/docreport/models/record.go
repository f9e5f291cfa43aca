// Package models defines data structures for the document report pipeline.
package models

import "time"

// Column headers of the input sheet. The names follow the source workbook's
// locale and form the schema contract of the input file.
const (
	ColPowerVE      = "Galia VE"
	ColPowerSE      = "Galia SE"
	ColPowerEEKI    = "Galia EEKĮ"
	ColDocument     = "Dokumentas"
	ColType         = "Tipas"
	ColRoute1       = "1 skyrius"
	ColRoute2       = "2 skyrius"
	ColReceivedDate = "Gavimo data"
	ColResponseDate = "Atsakymo data"
)

// Derived column headers appended after the input columns.
const (
	ColDeadline     = "Atsakymo terminas"
	ColReceivedWeek = "Gavimo data savaitė"
	ColAnsweredWeek = "Atsakymo data savaitė"
)

// Missing is the normalized marker for an absent text value.
const Missing = ""

// RequiredColumns lists the input headers the loader needs.
var RequiredColumns = []string{
	ColPowerVE, ColPowerSE, ColPowerEEKI,
	ColDocument, ColType, ColRoute1, ColRoute2,
	ColReceivedDate, ColResponseDate,
}

// DerivedColumns lists the computed headers in output order.
var DerivedColumns = []string{ColDeadline, ColReceivedWeek, ColAnsweredWeek}

// DocumentRecord is one normalized row of the input sheet.
type DocumentRecord struct {
	// PowerVE, PowerSE and PowerEEKI are the power measures. Absent values are 0.
	PowerVE   float64
	PowerSE   float64
	PowerEEKI float64
	// Document is the document kind.
	Document string
	// Type is the document classification.
	Type string
	// Route1 and Route2 are routing department codes; Missing when not routed.
	Route1 string
	Route2 string
	// Received is the date the document arrived (zero if absent).
	Received time.Time
	// Response is the date the document was answered (zero if not answered).
	Response time.Time
	// Deadline is Received plus the configured number of business days.
	Deadline time.Time
	// ReceivedWeek is the ISO week of Received, 0 if absent.
	ReceivedWeek int
	// AnsweredWeek is the ISO week of Response, 0 if not answered.
	AnsweredWeek int
	// Extra holds pass-through cells of non-schema columns: int64, float64,
	// string, or nil when missing.
	Extra map[string]interface{}
}

// Answered reports whether the record has a response date.
func (r DocumentRecord) Answered() bool {
	return !r.Response.IsZero()
}

// OnTime reports whether the response is absent or not later than the deadline.
func (r DocumentRecord) OnTime() bool {
	return !r.Answered() || !r.Response.After(r.Deadline)
}

// Cell returns the value written to the output sheet for the given column.
// Absent dates and weeks are 0, missing text is nil (an empty cell).
func (r DocumentRecord) Cell(column string) interface{} {
	switch column {
	case ColPowerVE:
		return r.PowerVE
	case ColPowerSE:
		return r.PowerSE
	case ColPowerEEKI:
		return r.PowerEEKI
	case ColDocument:
		return text(r.Document)
	case ColType:
		return text(r.Type)
	case ColRoute1:
		return text(r.Route1)
	case ColRoute2:
		return text(r.Route2)
	case ColReceivedDate:
		return date(r.Received)
	case ColResponseDate:
		return date(r.Response)
	case ColDeadline:
		return date(r.Deadline)
	case ColReceivedWeek:
		return r.ReceivedWeek
	case ColAnsweredWeek:
		return r.AnsweredWeek
	}
	if v, ok := r.Extra[column]; ok && v != nil {
		return v
	}
	return nil
}

func text(s string) interface{} {
	if s == Missing {
		return nil
	}
	return s
}

func date(t time.Time) interface{} {
	if t.IsZero() {
		return 0
	}
	return t
}

// Dataset is the normalized table: ordered headers plus records.
type Dataset struct {
	// Columns is the input header order followed by DerivedColumns.
	Columns []string
	// Records holds one entry per non-blank input row.
	Records []DocumentRecord
}

// Row returns the output values of record i in column order.
func (d *Dataset) Row(i int) []interface{} {
	row := make([]interface{}, len(d.Columns))
	for c, col := range d.Columns {
		row[c] = d.Records[i].Cell(col)
	}
	return row
}
