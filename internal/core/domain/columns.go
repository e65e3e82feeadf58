package domain

// Field identifies a logical column of the portal table.
type Field string

const (
	FieldCourseCode     Field = "course_code"
	FieldCourseName     Field = "course_name"
	FieldDayTime        Field = "day_time"
	FieldProfessor      Field = "professor"
	FieldTheoryUnits    Field = "theory_units"
	FieldPracticalUnits Field = "practical_units"
	FieldClassName      Field = "class_name"
	FieldSection        Field = "section"
	FieldClassCode      Field = "class_code"
	FieldExam           Field = "exam"
	FieldPlace          Field = "place"
)

// fieldOrder fixes the resolution and error-reporting order.
var fieldOrder = [...]Field{
	FieldCourseCode,
	FieldCourseName,
	FieldDayTime,
	FieldProfessor,
	FieldTheoryUnits,
	FieldPracticalUnits,
	FieldClassName,
	FieldSection,
	FieldClassCode,
	FieldExam,
	FieldPlace,
}

// HeaderLabels maps each field to the header text that identifies it.
type HeaderLabels map[Field]string

// DefaultHeaderLabels returns the labels used by the registration portal.
// They must match the header cells exactly, including the Arabic kaf and yeh.
func DefaultHeaderLabels() HeaderLabels {
	return HeaderLabels{
		FieldCourseCode:     "كد درس",
		FieldCourseName:     "نام درس",
		FieldDayTime:        "زمانبندي تشکيل کلاس",
		FieldProfessor:      "استاد",
		FieldTheoryUnits:    "تعداد واحد نظري",
		FieldPracticalUnits: "تعداد واحد عملي",
		FieldClassName:      "نام كلاس درس",
		FieldSection:        "مقطع ارائه درس",
		FieldClassCode:      "كد ارائه کلاس درس",
		FieldExam:           "زمان امتحان",
		FieldPlace:          "مكان برگزاري",
	}
}

// Fields returns every logical field in resolution order.
func Fields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder[:])
	return out
}

// ColumnIndex is a validated mapping from field to cell position.
type ColumnIndex struct {
	index map[Field]int
	max   int
}

// ResolveColumns locates every labelled field in headers.
// The first matching header wins. If any label is absent, a
// *MissingColumnError naming all absent labels is returned.
func ResolveColumns(headers []string, labels HeaderLabels) (ColumnIndex, error) {
	positions := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, seen := positions[h]; !seen {
			positions[h] = i
		}
	}

	idx := ColumnIndex{index: make(map[Field]int, len(fieldOrder)), max: -1}
	var missing []string
	for _, f := range fieldOrder {
		label, ok := labels[f]
		if !ok {
			missing = append(missing, string(f))
			continue
		}
		pos, ok := positions[label]
		if !ok {
			missing = append(missing, label)
			continue
		}
		idx.index[f] = pos
		if pos > idx.max {
			idx.max = pos
		}
	}

	if len(missing) > 0 {
		return ColumnIndex{}, &MissingColumnError{Labels: missing}
	}
	return idx, nil
}

// Position returns the cell index of a field.
func (c ColumnIndex) Position(f Field) (int, bool) {
	pos, ok := c.index[f]
	return pos, ok
}

// MaxIndex returns the highest resolved cell index, or -1 when unresolved.
func (c ColumnIndex) MaxIndex() int {
	if len(c.index) == 0 {
		return -1
	}
	return c.max
}

// Covers reports whether row has a cell for every resolved field.
func (c ColumnIndex) Covers(row []string) bool {
	return len(c.index) > 0 && len(row) > c.max
}

// Cell returns the value of field f in row. The row must be covered.
func (c ColumnIndex) Cell(row []string, f Field) string {
	return row[c.index[f]]
}
