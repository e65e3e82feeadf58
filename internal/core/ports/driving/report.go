package driving

import (
	"context"

	"github.com/custodia-labs/coursesched/internal/core/domain"
)

// ReportService runs the whole pipeline from input documents to artifacts.
type ReportService interface {
	// Generate extracts and writes every configured format.
	Generate(ctx context.Context) (*domain.Report, error)

	// Schedule extracts without writing anything.
	Schedule(ctx context.Context) (*domain.ExtractResult, error)
}
