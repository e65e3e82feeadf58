package renderers

import (
	"github.com/custodia-labs/coursesched/internal/core/domain"
	"github.com/custodia-labs/coursesched/internal/core/ports/driven"
	"github.com/custodia-labs/coursesched/internal/renderers/arrow"
	"github.com/custodia-labs/coursesched/internal/renderers/csv"
	"github.com/custodia-labs/coursesched/internal/renderers/html"
	"github.com/custodia-labs/coursesched/internal/renderers/sqlite"
	"github.com/custodia-labs/coursesched/internal/renderers/text"
)

// RegisterDefaults registers all built-in formats with the registry.
func RegisterDefaults(r *Registry) {
	r.Register("text", func(cfg domain.RenderConfig) (driven.Renderer, error) {
		return text.New(cfg.UnitLabel), nil
	})
	r.Register("html", func(cfg domain.RenderConfig) (driven.Renderer, error) {
		return html.New(cfg)
	})
	r.Register("csv", func(_ domain.RenderConfig) (driven.Renderer, error) {
		return csv.New(), nil
	})
	r.Register("arrow", func(_ domain.RenderConfig) (driven.Renderer, error) {
		return arrow.New(), nil
	})
	r.Register("sqlite", func(_ domain.RenderConfig) (driven.Renderer, error) {
		return sqlite.New(), nil
	})
}

// NewDefaultRegistry returns a registry with every built-in format.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}
