// Package bootstrap wires the adapters and services for a resolved config.
package bootstrap

import (
	"fmt"

	"github.com/custodia-labs/coursesched/internal/adapters/driven/htmltable"
	"github.com/custodia-labs/coursesched/internal/connectors/filesystem"
	"github.com/custodia-labs/coursesched/internal/core/domain"
	"github.com/custodia-labs/coursesched/internal/core/services"
	"github.com/custodia-labs/coursesched/internal/metrics"
	"github.com/custodia-labs/coursesched/internal/renderers"
)

// Services holds everything a command needs for one run.
type Services struct {
	Report  *services.ReportService
	Metrics *metrics.Recorder
}

// Build creates the services for cfg. Renderers are only built for the
// configured formats, so an unknown format fails here.
func Build(cfg domain.Config) (*Services, error) {
	enc, err := htmltable.LookupEncoding(cfg.Input.Encoding)
	if err != nil {
		return nil, err
	}

	opts := []htmltable.Option{htmltable.WithEncoding(enc)}
	if cfg.Table.ContainerID != "" {
		opts = append(opts, htmltable.WithContainer(cfg.Table.ContainerID))
	}
	parser := htmltable.New(cfg.Table.ID, opts...)

	built, err := renderers.NewDefaultRegistry().BuildAll(cfg.Output.Formats, cfg.Render)
	if err != nil {
		return nil, fmt.Errorf("building renderers: %w", err)
	}

	recorder := metrics.New()
	source := filesystem.New(cfg.Input.Dir, cfg.Input.Extension, cfg.Input.Files)
	extractor := services.NewExtractorService(parser, nil, recorder)

	return &Services{
		Report:  services.NewReportService(source, extractor, built, cfg.CodeFilter(), cfg.Output.Path),
		Metrics: recorder,
	}, nil
}
