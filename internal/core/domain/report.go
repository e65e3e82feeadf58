package domain

// Report describes the artifacts produced by one run.
type Report struct {
	Result *ExtractResult

	// Artifacts lists written files in format order.
	Artifacts []string

	// SchemaErr is set when the header row lacked required labels.
	// Artifacts are still written, with an empty schedule.
	SchemaErr error
}
