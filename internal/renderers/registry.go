// Package renderers provides the output formats for a weekly schedule.
package renderers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/coursesched/internal/core/domain"
	"github.com/custodia-labs/coursesched/internal/core/ports/driven"
)

// BuilderFunc creates a Renderer from the shared render settings.
type BuilderFunc func(cfg domain.RenderConfig) (driven.Renderer, error)

// Registry maps format names to their builders.
// It allows the output formats to be chosen from configuration.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new renderer registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a renderer builder to the registry.
// Name should be unique and match the renderer's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a renderer by name with the given config.
func (r *Registry) Build(name string, cfg domain.RenderConfig) (driven.Renderer, error) {
	builder, ok := r.builders[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %s)",
			domain.ErrUnsupportedFormat, name, strings.Join(r.Names(), ", "))
	}
	return builder(cfg)
}

// BuildAll creates a renderer for each name, skipping repeats.
func (r *Registry) BuildAll(names []string, cfg domain.RenderConfig) ([]driven.Renderer, error) {
	seen := make(map[string]bool, len(names))
	out := make([]driven.Renderer, 0, len(names))
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		renderer, err := r.Build(key, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, renderer)
	}
	return out, nil
}

// Has returns true if a renderer with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[strings.ToLower(name)]
	return ok
}

// Names returns all registered format names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
