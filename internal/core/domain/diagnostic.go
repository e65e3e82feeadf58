package domain

import "fmt"

// DiagnosticKind classifies why something was skipped.
type DiagnosticKind string

const (
	// DiagFileSkipped means a document could not be read or parsed.
	DiagFileSkipped DiagnosticKind = "file_skipped"

	// DiagTableMissing means a document had no table with the configured anchor.
	DiagTableMissing DiagnosticKind = "table_missing"

	// DiagRowShort means a row had fewer cells than the resolved columns need.
	DiagRowShort DiagnosticKind = "row_short"

	// DiagRowInvalidUnits means a unit cell did not parse as a number.
	DiagRowInvalidUnits DiagnosticKind = "row_invalid_units"

	// DiagMissingColumn means the header row lacked a required label.
	DiagMissingColumn DiagnosticKind = "missing_column"

	// DiagNoData means no header or data rows were found at all.
	DiagNoData DiagnosticKind = "no_data"

	// DiagUnknownWeekday means a day/time value named no known weekday.
	DiagUnknownWeekday DiagnosticKind = "unknown_weekday"
)

// Diagnostic records one skipped file, dropped row or schema problem.
type Diagnostic struct {
	Kind DiagnosticKind

	// Source is the document URI, empty for run-level diagnostics.
	Source string

	// Row is the 1-based row number within the document's table, 0 if not row-level.
	Row int

	// CourseCode is set when the row's code could be read.
	CourseCode string

	Reason string
}

// String renders the diagnostic as a single log line.
func (d Diagnostic) String() string {
	msg := string(d.Kind)
	if d.Source != "" {
		msg += " " + d.Source
	}
	if d.Row > 0 {
		msg += fmt.Sprintf(" row %d", d.Row)
	}
	if d.CourseCode != "" {
		msg += " course " + d.CourseCode
	}
	if d.Reason != "" {
		msg += ": " + d.Reason
	}
	return msg
}

// RowOutcome is the result of converting one table row:
// either a record or the reason it was skipped.
type RowOutcome struct {
	Record *CourseRecord
	Skip   *Diagnostic
}

// Kept reports whether the row produced a record.
func (o RowOutcome) Kept() bool {
	return o.Record != nil
}

// ExtractResult is the outcome of one extraction run.
type ExtractResult struct {
	Schedule    *WeeklySchedule
	Diagnostics []Diagnostic

	// FilesRead counts documents whose table was found and read.
	FilesRead int

	// FilesSkipped counts documents that contributed nothing.
	FilesSkipped int

	// RowsFiltered counts rows excluded by the course-code filter.
	RowsFiltered int
}

// NewExtractResult returns a result with an empty schedule.
func NewExtractResult() *ExtractResult {
	return &ExtractResult{Schedule: NewWeeklySchedule()}
}

// DiagnosticsOf returns the diagnostics of one kind, in recording order.
func (r *ExtractResult) DiagnosticsOf(kind DiagnosticKind) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}
