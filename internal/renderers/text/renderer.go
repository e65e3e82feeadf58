// Package text renders a weekly schedule as plain text lines.
package text

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/custodia-labs/coursesched/internal/core/domain"
	"github.com/custodia-labs/coursesched/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Renderer writes one header per non-empty day followed by one line per course.
type Renderer struct {
	unitLabel string

	// DayHeader formats the day heading; the default is the bare day name.
	// The terminal view swaps in a styled version.
	DayHeader func(day string) string
}

// New creates a text renderer. An empty unitLabel uses the default.
func New(unitLabel string) *Renderer {
	if unitLabel == "" {
		unitLabel = domain.DefaultRenderConfig().UnitLabel
	}
	return &Renderer{
		unitLabel: unitLabel,
		DayHeader: func(day string) string { return day },
	}
}

// Name returns the format name.
func (r *Renderer) Name() string { return "text" }

// Extension returns the file extension.
func (r *Renderer) Extension() string { return ".txt" }

// Render writes the schedule. Empty days are omitted.
func (r *Renderer) Render(_ context.Context, w io.Writer, schedule *domain.WeeklySchedule) error {
	bw := bufio.NewWriter(w)
	for _, day := range schedule.Days() {
		if len(day.Courses) == 0 {
			continue
		}
		fmt.Fprintf(bw, "\n%s\n", r.DayHeader(day.Name))
		for i := range day.Courses {
			fmt.Fprintln(bw, r.Line(&day.Courses[i]))
		}
	}
	return bw.Flush()
}

// Line formats one course:
// name: day_time (professor) - code - units label - class_name - section
func (r *Renderer) Line(c *domain.CourseRecord) string {
	return fmt.Sprintf("%s: %s (%s) - %s - %s %s - %s - %s",
		c.CourseName, c.DayTime, c.Professor, c.CourseCode,
		domain.FormatUnits(c.TotalUnits), r.unitLabel, c.ClassName, c.Section)
}
