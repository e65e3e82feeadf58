package services

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/custodia-labs/coursesched/internal/core/domain"
)

// mockParser returns canned rows keyed by document content.
type mockParser struct {
	tables map[string][][]string
}

func (m *mockParser) Rows(content []byte) ([][]string, error) {
	key := string(content)
	if key == "panic" {
		panic("parser exploded")
	}
	rows, ok := m.tables[key]
	if !ok {
		return nil, domain.ErrTableNotFound
	}
	return rows, nil
}

// mockMetrics counts calls.
type mockMetrics struct {
	files       int
	diagnostics map[domain.DiagnosticKind]int
	records     map[string]int
	finished    int
}

func newMockMetrics() *mockMetrics {
	return &mockMetrics{
		diagnostics: make(map[domain.DiagnosticKind]int),
		records:     make(map[string]int),
	}
}

func (m *mockMetrics) FileProcessed()                        { m.files++ }
func (m *mockMetrics) Diagnostic(kind domain.DiagnosticKind) { m.diagnostics[kind]++ }
func (m *mockMetrics) RecordExtracted(day string)            { m.records[day]++ }
func (m *mockMetrics) RunFinished()                          { m.finished++ }

// mockSource returns fixed documents.
type mockSource struct {
	docs []domain.RawDocument
	err  error
}

func (m *mockSource) List(_ context.Context) ([]domain.RawDocument, error) {
	return m.docs, m.err
}

// mockRenderer writes the record codes, one per line.
type mockRenderer struct {
	name string
	ext  string
	err  error
}

func (m *mockRenderer) Name() string      { return m.name }
func (m *mockRenderer) Extension() string { return m.ext }
func (m *mockRenderer) Render(_ context.Context, w io.Writer, s *domain.WeeklySchedule) error {
	if m.err != nil {
		return m.err
	}
	var codes []string
	for _, c := range s.All() {
		codes = append(codes, c.CourseCode)
	}
	_, err := io.WriteString(w, strings.Join(codes, "\n"))
	return err
}

var errRender = errors.New("disk full")

// headerRow is a portal header with a leading row-number column.
func headerRow() []string {
	labels := domain.DefaultHeaderLabels()
	row := []string{"ردیف"}
	for _, f := range domain.Fields() {
		row = append(row, labels[f])
	}
	return row
}

// courseRow builds a data row aligned with headerRow.
func courseRow(code, name, dayTime, professor, theory, practical string) []string {
	return []string{
		"1", code, name, dayTime, professor, theory, practical,
		"کلاس ۱", "کارشناسی", "C" + code, "1403/10/20", "ساختمان A",
	}
}
