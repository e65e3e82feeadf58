package domain

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	// Placeholder replaces optional fields that are blank in the portal table.
	Placeholder = "  "

	// UnspecifiedDayTime replaces a blank day/time cell.
	UnspecifiedDayTime = "زمان نامشخص"
)

// recordNamespace scopes the name-based record IDs.
var recordNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("coursesched/course-record"))

// CourseRecord is one scheduled course-section entry.
type CourseRecord struct {
	// ID is derived from the record's identity so repeated runs agree.
	ID string

	CourseCode string
	CourseName string

	// DayTime combines the weekday name and the class time range.
	DayTime string

	Professor      string
	TheoryUnits    float64
	PracticalUnits float64
	TotalUnits     float64
	ClassName      string
	Section        string
	ClassCode      string
	Exam           string
	Place          string

	// Source is the URI of the document the row came from.
	Source string
}

// RecordID returns the deterministic ID for the record read from row of source.
// The row number keeps otherwise identical rows of one page apart.
func RecordID(source string, row int, courseCode, classCode, dayTime string) string {
	key := strings.Join([]string{source, strconv.Itoa(row), courseCode, classCode, dayTime}, "\x1f")
	return uuid.NewSHA1(recordNamespace, []byte(key)).String()
}

// OrPlaceholder returns value, or Placeholder when value is blank.
func OrPlaceholder(value string) string {
	if strings.TrimSpace(value) == "" {
		return Placeholder
	}
	return value
}

// Weekday returns the bucket this record belongs to.
func (c *CourseRecord) Weekday() string {
	return BucketFor(c.DayTime)
}
