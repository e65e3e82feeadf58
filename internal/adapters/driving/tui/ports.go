// Package tui provides the interactive schedule browser.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/coursesched/internal/core/ports/driving"
)

// Ports aggregates the driving ports the browser needs.
type Ports struct {
	// Report extracts the schedule.
	Report driving.ReportService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Report == nil {
		return ErrMissingReportService
	}
	return nil
}
