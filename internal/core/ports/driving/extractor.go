package driving

import (
	"context"

	"github.com/custodia-labs/coursesched/internal/core/domain"
)

// Extractor converts documents into a weekly schedule.
type Extractor interface {
	// Extract reads every document and groups the surviving rows by weekday.
	// The result is never nil. A *domain.MissingColumnError is returned
	// alongside an empty schedule when the header row is incomplete.
	Extract(ctx context.Context, docs []domain.RawDocument, filter domain.CodeFilter) (*domain.ExtractResult, error)
}
