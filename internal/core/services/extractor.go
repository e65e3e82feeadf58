package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/custodia-labs/coursesched/internal/core/domain"
	"github.com/custodia-labs/coursesched/internal/core/ports/driven"
	"github.com/custodia-labs/coursesched/internal/core/ports/driving"
	"github.com/custodia-labs/coursesched/internal/logger"
)

// Ensure ExtractorService implements the interface.
var _ driving.Extractor = (*ExtractorService)(nil)

// ExtractorService turns portal pages into a weekly schedule.
type ExtractorService struct {
	parser  driven.TableParser
	labels  domain.HeaderLabels
	metrics driven.MetricsRecorder
}

// NewExtractorService creates an extractor. labels defaults to the portal's
// header labels when nil; metrics may be nil.
func NewExtractorService(
	parser driven.TableParser,
	labels domain.HeaderLabels,
	metrics driven.MetricsRecorder,
) *ExtractorService {
	if labels == nil {
		labels = domain.DefaultHeaderLabels()
	}
	return &ExtractorService{
		parser:  parser,
		labels:  labels,
		metrics: metrics,
	}
}

// sourcedRow is a data row with the position it came from.
type sourcedRow struct {
	source string
	number int
	cells  []string
}

// Extract reads every document, resolves the columns from the first header
// row seen and converts the remaining rows into records.
func (s *ExtractorService) Extract(
	ctx context.Context,
	docs []domain.RawDocument,
	filter domain.CodeFilter,
) (*domain.ExtractResult, error) {
	result := domain.NewExtractResult()
	if s.parser == nil {
		return result, fmt.Errorf("table parser not configured: %w", domain.ErrInvalidInput)
	}

	logger.Section("Extraction")
	logger.Debug("Documents: %d, course filter: %d codes", len(docs), filter.Len())

	var headers []string
	var rows []sourcedRow

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		table, err := s.readDocument(doc)
		if err != nil {
			kind := domain.DiagFileSkipped
			if errors.Is(err, domain.ErrTableNotFound) {
				kind = domain.DiagTableMissing
			}
			s.record(result, domain.Diagnostic{Kind: kind, Source: doc.URI, Reason: err.Error()})
			result.FilesSkipped++
			continue
		}

		result.FilesRead++
		if s.metrics != nil {
			s.metrics.FileProcessed()
		}
		logger.Debug("%s: %d rows", doc.URI, len(table))

		for i, cells := range table {
			if i == 0 {
				if headers == nil {
					headers = cells
				}
				continue
			}
			rows = append(rows, sourcedRow{source: doc.URI, number: i, cells: cells})
		}
	}

	if headers == nil || len(rows) == 0 {
		s.record(result, domain.Diagnostic{Kind: domain.DiagNoData, Reason: "no course data found"})
		s.finish()
		return result, nil
	}

	columns, err := domain.ResolveColumns(headers, s.labels)
	if err != nil {
		s.record(result, domain.Diagnostic{Kind: domain.DiagMissingColumn, Reason: err.Error()})
		s.finish()
		return result, err
	}

	for _, row := range rows {
		if !columns.Covers(row.cells) {
			s.record(result, domain.Diagnostic{
				Kind:   domain.DiagRowShort,
				Source: row.source,
				Row:    row.number,
				Reason: fmt.Sprintf("%d cells, need %d", len(row.cells), columns.MaxIndex()+1),
			})
			continue
		}

		if !filter.Allows(columns.Cell(row.cells, domain.FieldCourseCode)) {
			result.RowsFiltered++
			continue
		}

		outcome := ConvertRow(columns, row.cells, row.source, row.number)
		if !outcome.Kept() {
			s.record(result, *outcome.Skip)
			continue
		}

		rec := *outcome.Record
		if tok := domain.WeekdayToken(rec.DayTime); rec.DayTime != domain.UnspecifiedDayTime &&
			tok != "" && !domain.IsKnownDay(tok) {
			s.record(result, domain.Diagnostic{
				Kind:       domain.DiagUnknownWeekday,
				Source:     row.source,
				Row:        row.number,
				CourseCode: rec.CourseCode,
				Reason:     fmt.Sprintf("weekday %q filed under %s", tok, domain.Unspecified),
			})
		}

		result.Schedule.Add(rec)
		if s.metrics != nil {
			s.metrics.RecordExtracted(rec.Weekday())
		}
	}

	logger.Info("Extracted %d records from %d files (%d skipped, %d filtered rows)",
		result.Schedule.Len(), result.FilesRead, result.FilesSkipped, result.RowsFiltered)
	s.finish()
	return result, nil
}

// readDocument returns the table rows of one document.
// A panic inside the parser is reported as an error so one bad page
// cannot abort the batch.
func (s *ExtractorService) readDocument(doc domain.RawDocument) (rows [][]string, err error) {
	if doc.Err != nil {
		return nil, doc.Err
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parsing %s: %v", doc.URI, r)
		}
	}()
	return s.parser.Rows(doc.Content)
}

func (s *ExtractorService) record(result *domain.ExtractResult, d domain.Diagnostic) {
	result.Diagnostics = append(result.Diagnostics, d)
	if s.metrics != nil {
		s.metrics.Diagnostic(d.Kind)
	}
}

func (s *ExtractorService) finish() {
	if s.metrics != nil {
		s.metrics.RunFinished()
	}
}

// ConvertRow builds a record from a covered row, or explains why it cannot.
// Empty unit cells count as zero.
func ConvertRow(columns domain.ColumnIndex, cells []string, source string, number int) domain.RowOutcome {
	code := columns.Cell(cells, domain.FieldCourseCode)

	theory, err := parseUnits(columns.Cell(cells, domain.FieldTheoryUnits))
	if err != nil {
		return skipUnits(source, number, code, "theory", err)
	}
	practical, err := parseUnits(columns.Cell(cells, domain.FieldPracticalUnits))
	if err != nil {
		return skipUnits(source, number, code, "practical", err)
	}

	dayTime := columns.Cell(cells, domain.FieldDayTime)
	if strings.TrimSpace(dayTime) == "" {
		dayTime = domain.UnspecifiedDayTime
	}
	classCode := domain.OrPlaceholder(columns.Cell(cells, domain.FieldClassCode))

	return domain.RowOutcome{Record: &domain.CourseRecord{
		ID:             domain.RecordID(source, number, code, classCode, dayTime),
		CourseCode:     code,
		CourseName:     columns.Cell(cells, domain.FieldCourseName),
		DayTime:        dayTime,
		Professor:      domain.OrPlaceholder(columns.Cell(cells, domain.FieldProfessor)),
		TheoryUnits:    theory,
		PracticalUnits: practical,
		TotalUnits:     theory + practical,
		ClassName:      domain.OrPlaceholder(columns.Cell(cells, domain.FieldClassName)),
		Section:        domain.OrPlaceholder(columns.Cell(cells, domain.FieldSection)),
		ClassCode:      classCode,
		Exam:           domain.OrPlaceholder(columns.Cell(cells, domain.FieldExam)),
		Place:          domain.OrPlaceholder(columns.Cell(cells, domain.FieldPlace)),
		Source:         source,
	}}
}

// digitReplacer maps Persian and Arabic-Indic digits and the Arabic
// decimal separator to their ASCII forms.
var digitReplacer = strings.NewReplacer(
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	"٫", ".",
)

// parseUnits parses a non-negative unit count; blank is zero.
func parseUnits(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(digitReplacer.Replace(cell), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w %q", domain.ErrInvalidUnits, cell)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w %q: negative", domain.ErrInvalidUnits, cell)
	}
	return v, nil
}

func skipUnits(source string, number int, code, which string, err error) domain.RowOutcome {
	return domain.RowOutcome{Skip: &domain.Diagnostic{
		Kind:       domain.DiagRowInvalidUnits,
		Source:     source,
		Row:        number,
		CourseCode: code,
		Reason:     which + " units: " + err.Error(),
	}}
}
