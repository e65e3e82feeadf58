package driven

import (
	"context"
	"io"

	"github.com/custodia-labs/coursesched/internal/core/domain"
)

// Renderer serialises a schedule into one output format.
type Renderer interface {
	// Name returns the format name used in configuration (e.g. "html").
	Name() string

	// Extension returns the file extension including the dot.
	Extension() string

	// Render writes the schedule to w.
	Render(ctx context.Context, w io.Writer, schedule *domain.WeeklySchedule) error
}
