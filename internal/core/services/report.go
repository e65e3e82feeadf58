package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/coursesched/internal/core/domain"
	"github.com/custodia-labs/coursesched/internal/core/ports/driven"
	"github.com/custodia-labs/coursesched/internal/core/ports/driving"
	"github.com/custodia-labs/coursesched/internal/logger"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// ReportService reads the input documents, extracts the schedule and
// writes one artifact per renderer.
type ReportService struct {
	source    driven.DocumentSource
	extractor driving.Extractor
	renderers []driven.Renderer
	filter    domain.CodeFilter
	output    string
}

// NewReportService creates a report service. output is the artifact path
// without extension; each renderer appends its own.
func NewReportService(
	source driven.DocumentSource,
	extractor driving.Extractor,
	renderers []driven.Renderer,
	filter domain.CodeFilter,
	output string,
) *ReportService {
	return &ReportService{
		source:    source,
		extractor: extractor,
		renderers: renderers,
		filter:    filter,
		output:    output,
	}
}

// Schedule lists the documents and extracts them.
// A missing column is returned as an error together with the (empty) result.
func (s *ReportService) Schedule(ctx context.Context) (*domain.ExtractResult, error) {
	if s.source == nil || s.extractor == nil {
		return domain.NewExtractResult(), fmt.Errorf("report service not configured: %w", domain.ErrInvalidInput)
	}

	docs, err := s.source.List(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNoDocuments) {
			return domain.NewExtractResult(), fmt.Errorf("listing documents: %w", err)
		}
		logger.Warn("%v", err)
		docs = nil
	}

	result, err := s.extractor.Extract(ctx, docs, s.filter)
	for _, d := range result.Diagnostics {
		logger.Warn("%s", d)
	}
	return result, err
}

// Generate extracts the schedule and renders every artifact.
// Schema problems still produce (empty) artifacts; write failures are fatal.
func (s *ReportService) Generate(ctx context.Context) (*domain.Report, error) {
	result, err := s.Schedule(ctx)
	report := &domain.Report{Result: result}
	if err != nil {
		if !errors.Is(err, domain.ErrMissingColumn) {
			return report, err
		}
		report.SchemaErr = err
	}

	if len(s.renderers) == 0 {
		return report, fmt.Errorf("no output formats configured: %w", domain.ErrInvalidInput)
	}

	logger.Section("Rendering")
	for _, r := range s.renderers {
		path := s.output + r.Extension()
		if err := writeArtifact(ctx, r, path, result.Schedule); err != nil {
			return report, fmt.Errorf("writing %s output: %w", r.Name(), err)
		}
		logger.Debug("Wrote %s (%s)", path, r.Name())
		report.Artifacts = append(report.Artifacts, path)
	}

	return report, nil
}

// writeArtifact renders into path, closing the file on every path.
func writeArtifact(ctx context.Context, r driven.Renderer, path string, schedule *domain.WeeklySchedule) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return r.Render(ctx, f, schedule)
}
