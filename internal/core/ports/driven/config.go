package driven

import "github.com/custodia-labs/coursesched/internal/core/domain"

// ConfigLoader resolves the run configuration from its sources.
type ConfigLoader interface {
	// Load returns the defaults overlaid with every configured source.
	Load() (domain.Config, error)
}
