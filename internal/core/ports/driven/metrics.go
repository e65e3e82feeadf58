package driven

import "github.com/custodia-labs/coursesched/internal/core/domain"

// MetricsRecorder receives counters for an extraction run.
type MetricsRecorder interface {
	// FileProcessed counts a document whose table was read.
	FileProcessed()

	// Diagnostic counts a skipped file, dropped row or schema problem.
	Diagnostic(kind domain.DiagnosticKind)

	// RecordExtracted counts a record placed into a weekday bucket.
	RecordExtracted(day string)

	// RunFinished marks the end of a run.
	RunFinished()
}
