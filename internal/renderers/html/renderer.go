// Package html renders a weekly schedule as a self-contained, filterable page.
package html

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/custodia-labs/coursesched/internal/core/domain"
	"github.com/custodia-labs/coursesched/internal/core/ports/driven"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Column headers in display order.
var columnHeaders = []string{
	"نام درس",
	"کد درس",
	"زمان کلاس",
	"استاد",
	"تعداد واحد",
	"نام کلاس",
	"مقطع",
	"کد ارائه",
	"زمان امتحان",
	"مکان برگزاری",
}

// Renderer writes the by-day and all-courses views into one page.
type Renderer struct {
	cfg  domain.RenderConfig
	tmpl *template.Template
}

// New parses the embedded page template. Blank settings use the defaults.
func New(cfg domain.RenderConfig) (*Renderer, error) {
	defaults := domain.DefaultRenderConfig()
	if cfg.Title == "" {
		cfg.Title = defaults.Title
	}
	if cfg.FilterDelimiter == "" {
		cfg.FilterDelimiter = defaults.FilterDelimiter
	}
	if cfg.UnitLabel == "" {
		cfg.UnitLabel = defaults.UnitLabel
	}

	tmpl, err := template.New("page.html.tmpl").
		Funcs(template.FuncMap{"units": domain.FormatUnits}).
		ParseFS(templateFS, "templates/page.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &Renderer{cfg: cfg, tmpl: tmpl}, nil
}

// Name returns the format name.
func (r *Renderer) Name() string { return "html" }

// Extension returns the file extension.
func (r *Renderer) Extension() string { return ".html" }

type pageData struct {
	Title     string
	Delimiter string
	Headers   []string
	Days      []domain.DaySchedule
	All       []domain.CourseRecord
}

// Render executes the template into a buffer first so a template error
// never leaves a partial page behind.
func (r *Renderer) Render(_ context.Context, w io.Writer, schedule *domain.WeeklySchedule) error {
	data := pageData{
		Title:     r.cfg.Title,
		Delimiter: r.cfg.FilterDelimiter,
		Headers:   columnHeaders,
		All:       schedule.SortedByName(),
	}
	for _, day := range schedule.Days() {
		if len(day.Courses) > 0 {
			data.Days = append(data.Days, day)
		}
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
