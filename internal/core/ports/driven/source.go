package driven

import (
	"context"

	"github.com/custodia-labs/coursesched/internal/core/domain"
)

// DocumentSource yields the documents to extract from.
type DocumentSource interface {
	// List returns every document in a stable order.
	// A document that cannot be read is returned with Err set rather
	// than failing the whole listing.
	List(ctx context.Context) ([]domain.RawDocument, error)
}
