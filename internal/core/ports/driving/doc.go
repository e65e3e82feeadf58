// Package driving defines the interfaces the CLI and TUI use to run
// extractions and produce reports. Implementations live in
// internal/core/services.
package driving
