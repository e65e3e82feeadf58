// Package metrics provides Prometheus counters for extraction runs.
//
// A batch run has nothing to scrape it, so the registry is written to a
// file in the text exposition format for node_exporter's textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/custodia-labs/coursesched/internal/core/domain"
	"github.com/custodia-labs/coursesched/internal/core/ports/driven"
)

// Ensure Recorder implements the interface.
var _ driven.MetricsRecorder = (*Recorder)(nil)

// Recorder collects run metrics into a private registry.
type Recorder struct {
	registry *prometheus.Registry

	files       *prometheus.CounterVec
	diagnostics *prometheus.CounterVec
	records     *prometheus.CounterVec
	lastRun     prometheus.Gauge

	now func() time.Time
}

// New creates a recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		files: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coursesched_files_total",
				Help: "Documents handled, by outcome",
			},
			[]string{"status"},
		),
		diagnostics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coursesched_diagnostics_total",
				Help: "Skipped files, dropped rows and schema problems, by kind",
			},
			[]string{"kind"},
		),
		records: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coursesched_records_total",
				Help: "Course records extracted, by weekday bucket",
			},
			[]string{"day"},
		),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "coursesched_last_run_timestamp_seconds",
			Help: "Unix time the last extraction finished",
		}),
		now: time.Now,
	}
	r.registry.MustRegister(r.files, r.diagnostics, r.records, r.lastRun)
	return r
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// FileProcessed counts a document whose table was read.
func (r *Recorder) FileProcessed() {
	r.files.WithLabelValues("read").Inc()
}

// Diagnostic counts a diagnostic; file-level kinds also count as skipped files.
func (r *Recorder) Diagnostic(kind domain.DiagnosticKind) {
	r.diagnostics.WithLabelValues(string(kind)).Inc()
	if kind == domain.DiagFileSkipped || kind == domain.DiagTableMissing {
		r.files.WithLabelValues("skipped").Inc()
	}
}

// RecordExtracted counts a record in its weekday bucket.
func (r *Recorder) RecordExtracted(day string) {
	r.records.WithLabelValues(day).Inc()
}

// RunFinished stamps the completion time.
func (r *Recorder) RunFinished() {
	r.lastRun.Set(float64(r.now().Unix()))
}

// WriteTextfile writes the registry to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
