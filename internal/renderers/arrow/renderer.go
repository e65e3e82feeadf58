// Package arrow renders a weekly schedule as an Apache Arrow IPC file.
package arrow

import (
	"context"
	"fmt"
	"io"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/ipc"
	"github.com/apache/arrow/go/v18/arrow/memory"

	"github.com/custodia-labs/coursesched/internal/core/domain"
	"github.com/custodia-labs/coursesched/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Schema is the column layout of the exported record batch.
var Schema = arrow.NewSchema([]arrow.Field{
	{Name: "id", Type: arrow.BinaryTypes.String},
	{Name: "day", Type: arrow.BinaryTypes.String},
	{Name: "course_code", Type: arrow.BinaryTypes.String},
	{Name: "course_name", Type: arrow.BinaryTypes.String},
	{Name: "day_time", Type: arrow.BinaryTypes.String},
	{Name: "professor", Type: arrow.BinaryTypes.String},
	{Name: "theory_units", Type: arrow.PrimitiveTypes.Float64},
	{Name: "practical_units", Type: arrow.PrimitiveTypes.Float64},
	{Name: "total_units", Type: arrow.PrimitiveTypes.Float64},
	{Name: "class_name", Type: arrow.BinaryTypes.String},
	{Name: "section", Type: arrow.BinaryTypes.String},
	{Name: "class_code", Type: arrow.BinaryTypes.String},
	{Name: "exam", Type: arrow.BinaryTypes.String},
	{Name: "place", Type: arrow.BinaryTypes.String},
	{Name: "source", Type: arrow.BinaryTypes.String},
}, nil)

// Renderer writes all records as a single record batch.
type Renderer struct {
	mem memory.Allocator
}

// New creates an Arrow renderer using the Go allocator.
func New() *Renderer {
	return &Renderer{mem: memory.NewGoAllocator()}
}

// Name returns the format name.
func (r *Renderer) Name() string { return "arrow" }

// Extension returns the file extension.
func (r *Renderer) Extension() string { return ".arrow" }

// Render writes an IPC file. An empty schedule yields a zero-length batch.
func (r *Renderer) Render(_ context.Context, w io.Writer, schedule *domain.WeeklySchedule) error {
	b := array.NewRecordBuilder(r.mem, Schema)
	defer b.Release()

	for _, day := range schedule.Days() {
		for i := range day.Courses {
			appendCourse(b, day.Name, &day.Courses[i])
		}
	}

	rec := b.NewRecord()
	defer rec.Release()

	fw, err := ipc.NewFileWriter(w, ipc.WithSchema(Schema), ipc.WithAllocator(r.mem))
	if err != nil {
		return fmt.Errorf("creating arrow writer: %w", err)
	}
	if err := fw.Write(rec); err != nil {
		_ = fw.Close()
		return fmt.Errorf("writing arrow batch: %w", err)
	}
	return fw.Close()
}

func appendCourse(b *array.RecordBuilder, day string, c *domain.CourseRecord) {
	str := func(i int, v string) { b.Field(i).(*array.StringBuilder).Append(v) }
	num := func(i int, v float64) { b.Field(i).(*array.Float64Builder).Append(v) }

	str(0, c.ID)
	str(1, day)
	str(2, c.CourseCode)
	str(3, c.CourseName)
	str(4, c.DayTime)
	str(5, c.Professor)
	num(6, c.TheoryUnits)
	num(7, c.PracticalUnits)
	num(8, c.TotalUnits)
	str(9, c.ClassName)
	str(10, c.Section)
	str(11, c.ClassCode)
	str(12, c.Exam)
	str(13, c.Place)
	str(14, c.Source)
}
