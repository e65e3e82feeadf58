// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentSource: Enumerates and reads saved portal pages
//   - TableParser: Turns one page into rows of cell text
//   - Renderer: Writes a WeeklySchedule in one output format
//   - ConfigLoader: Produces the run configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - MetricsRecorder: Counts files, rows and records for a run
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or renderer package
package driven
