package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/coursesched/internal/core/domain"
)

func course(code, name string) *domain.CourseRecord {
	return &domain.CourseRecord{CourseCode: code, CourseName: name, DayTime: "شنبه", TotalUnits: 3}
}

// entries returns: heading, c1, c2, heading, c3
func entries() []Entry {
	return []Entry{
		{Heading: "شنبه"},
		{Course: course("1", "ریاضی")},
		{Course: course("2", "فیزیک")},
		{Heading: "یکشنبه"},
		{Course: course("3", "شیمی")},
	}
}

func TestNewCourseList(t *testing.T) {
	l := NewCourseList(nil, "")

	require.NotNil(t, l)
	assert.Equal(t, 0, l.Count())
	assert.Nil(t, l.SelectedCourse())
	assert.Contains(t, l.View(), "درسی یافت نشد")
}

func TestCourseList_SetEntriesSelectsFirstCourse(t *testing.T) {
	l := NewCourseList(nil, "")
	l.SetEntries(entries())

	assert.Equal(t, 3, l.Count())
	assert.Equal(t, 1, l.Selected())
	assert.Equal(t, "1", l.SelectedCourse().CourseCode)
}

func TestCourseList_MoveSkipsHeadings(t *testing.T) {
	l := NewCourseList(nil, "")
	l.SetEntries(entries())

	l.MoveDown()
	assert.Equal(t, "2", l.SelectedCourse().CourseCode)
	l.MoveDown()
	assert.Equal(t, "3", l.SelectedCourse().CourseCode)
	l.MoveDown()
	assert.Equal(t, "3", l.SelectedCourse().CourseCode, "stays on the last course")

	l.MoveUp()
	assert.Equal(t, "2", l.SelectedCourse().CourseCode)
	l.MoveUp()
	l.MoveUp()
	assert.Equal(t, "1", l.SelectedCourse().CourseCode, "stays on the first course")
}

func TestCourseList_ScrollKeepsSelectionVisible(t *testing.T) {
	l := NewCourseList(nil, "")
	l.SetEntries(entries())
	l.SetDimensions(80, 2)

	l.MoveDown()
	l.MoveDown()
	assert.Equal(t, 4, l.Selected())
	assert.Equal(t, 3, l.Offset())

	l.MoveUp()
	assert.Equal(t, 2, l.Offset())
	l.MoveUp()
	assert.Equal(t, 0, l.Offset(), "heading above the first course is shown")
}

func TestCourseList_Paging(t *testing.T) {
	l := NewCourseList(nil, "")
	l.SetEntries(entries())
	l.SetDimensions(80, 2)

	l.PageDown()
	assert.Equal(t, "3", l.SelectedCourse().CourseCode)
	l.PageUp()
	assert.Equal(t, "1", l.SelectedCourse().CourseCode)
}

func TestCourseList_View(t *testing.T) {
	l := NewCourseList(nil, "واحد")
	l.SetEntries(entries())

	view := l.View()
	assert.Contains(t, view, "شنبه")
	assert.Contains(t, view, "ریاضی")
	assert.Contains(t, view, "3 واحد")
	assert.Contains(t, view, "> ریاضی")
}
