// Package csv renders a weekly schedule as a spreadsheet-friendly CSV file.
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"

	"github.com/custodia-labs/coursesched/internal/core/domain"
	"github.com/custodia-labs/coursesched/internal/core/ports/driven"
)

// Spreadsheet tools need the BOM to detect UTF-8 for Persian text.
const utf8BOM = "\uFEFF"

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// row is one CSV line. Units stay strings so 3 prints as 3, not 3.000000.
type row struct {
	Day        string `csv:"day"`
	CourseCode string `csv:"course_code"`
	CourseName string `csv:"course_name"`
	DayTime    string `csv:"day_time"`
	Professor  string `csv:"professor"`
	Theory     string `csv:"theory_units"`
	Practical  string `csv:"practical_units"`
	Total      string `csv:"total_units"`
	ClassName  string `csv:"class_name"`
	Section    string `csv:"section"`
	ClassCode  string `csv:"class_code"`
	Exam       string `csv:"exam"`
	Place      string `csv:"place"`
	Source     string `csv:"source"`
	ID         string `csv:"id"`
}

// Renderer writes every record in day order with a header row.
type Renderer struct{}

// New creates a CSV renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns the format name.
func (r *Renderer) Name() string { return "csv" }

// Extension returns the file extension.
func (r *Renderer) Extension() string { return ".csv" }

// Render writes the header even when the schedule is empty.
func (r *Renderer) Render(_ context.Context, w io.Writer, schedule *domain.WeeklySchedule) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)
	if err := enc.EncodeHeader(row{}); err != nil {
		return fmt.Errorf("encoding csv header: %w", err)
	}

	for _, day := range schedule.Days() {
		for i := range day.Courses {
			c := &day.Courses[i]
			if err := enc.Encode(toRow(day.Name, c)); err != nil {
				return fmt.Errorf("encoding course %s: %w", c.CourseCode, err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func toRow(day string, c *domain.CourseRecord) row {
	return row{
		Day:        day,
		CourseCode: c.CourseCode,
		CourseName: c.CourseName,
		DayTime:    c.DayTime,
		Professor:  c.Professor,
		Theory:     domain.FormatUnits(c.TheoryUnits),
		Practical:  domain.FormatUnits(c.PracticalUnits),
		Total:      domain.FormatUnits(c.TotalUnits),
		ClassName:  c.ClassName,
		Section:    c.Section,
		ClassCode:  c.ClassCode,
		Exam:       c.Exam,
		Place:      c.Place,
		Source:     c.Source,
		ID:         c.ID,
	}
}
