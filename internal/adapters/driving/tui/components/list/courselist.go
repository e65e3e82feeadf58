// Package list provides the scrollable course list for the browse view.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/coursesched/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/coursesched/internal/core/domain"
)

// Entry is one line of the list: a day heading when Course is nil,
// otherwise a course.
type Entry struct {
	Heading string
	Course  *domain.CourseRecord
}

// IsHeading reports whether the entry is a heading line.
func (e Entry) IsHeading() bool {
	return e.Course == nil
}

// CourseList displays headings and courses with a movable selection.
type CourseList struct {
	entries   []Entry
	selected  int
	offset    int
	styles    *styles.Styles
	unitLabel string
	width     int
	height    int
}

// NewCourseList creates an empty list.
func NewCourseList(s *styles.Styles, unitLabel string) *CourseList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if unitLabel == "" {
		unitLabel = domain.DefaultRenderConfig().UnitLabel
	}
	return &CourseList{
		styles:    s,
		unitLabel: unitLabel,
		width:     80,
		height:    10,
	}
}

// Init initialises the list.
func (l *CourseList) Init() tea.Cmd {
	return nil
}

// Update is a no-op; the parent model drives navigation through the Move methods.
func (l *CourseList) Update(_ tea.Msg) (*CourseList, tea.Cmd) {
	return l, nil
}

// View renders the visible window of entries.
func (l *CourseList) View() string {
	if l.Count() == 0 {
		return l.styles.Muted.Render("درسی یافت نشد")
	}

	end := l.offset + l.height
	if end > len(l.entries) {
		end = len(l.entries)
	}

	lines := make([]string, 0, end-l.offset)
	for i := l.offset; i < end; i++ {
		lines = append(lines, l.renderEntry(i))
	}
	return strings.Join(lines, "\n")
}

func (l *CourseList) renderEntry(i int) string {
	e := l.entries[i]
	if e.IsHeading() {
		return l.styles.DayHeader.Render(e.Heading)
	}

	c := e.Course
	details := fmt.Sprintf("%s (%s) - %s %s - %s - %s",
		c.DayTime, c.Professor, domain.FormatUnits(c.TotalUnits), l.unitLabel, c.ClassName, c.Section)

	if i == l.selected {
		return l.styles.Selected.Render(fmt.Sprintf("> %s  %s  %s", c.CourseName, c.CourseCode, details))
	}
	return "  " + l.styles.CourseName.Render(c.CourseName) + "  " +
		l.styles.Code.Render(c.CourseCode) + "  " +
		l.styles.Detail.Render(details)
}

// SetEntries replaces the entries and selects the first course.
func (l *CourseList) SetEntries(entries []Entry) {
	l.entries = entries
	l.offset = 0
	l.selected = l.next(-1)
	if l.selected < 0 {
		l.selected = 0
	}
}

// Entries returns the current entries.
func (l *CourseList) Entries() []Entry {
	return l.entries
}

// Count returns the number of course entries.
func (l *CourseList) Count() int {
	n := 0
	for _, e := range l.entries {
		if !e.IsHeading() {
			n++
		}
	}
	return n
}

// Selected returns the selected entry index.
func (l *CourseList) Selected() int {
	return l.selected
}

// Offset returns the index of the first visible entry.
func (l *CourseList) Offset() int {
	return l.offset
}

// SelectedCourse returns the selected course, or nil when there is none.
func (l *CourseList) SelectedCourse() *domain.CourseRecord {
	if l.selected < 0 || l.selected >= len(l.entries) {
		return nil
	}
	return l.entries[l.selected].Course
}

// MoveUp selects the previous course.
func (l *CourseList) MoveUp() {
	if i := l.prev(l.selected); i >= 0 {
		l.selected = i
		l.scroll()
	}
}

// MoveDown selects the next course.
func (l *CourseList) MoveDown() {
	if i := l.next(l.selected); i >= 0 {
		l.selected = i
		l.scroll()
	}
}

// PageUp moves the selection up by one screen.
func (l *CourseList) PageUp() {
	for i := 0; i < l.height; i++ {
		l.MoveUp()
	}
}

// PageDown moves the selection down by one screen.
func (l *CourseList) PageDown() {
	for i := 0; i < l.height; i++ {
		l.MoveDown()
	}
}

func (l *CourseList) next(from int) int {
	for i := from + 1; i < len(l.entries); i++ {
		if !l.entries[i].IsHeading() {
			return i
		}
	}
	return -1
}

func (l *CourseList) prev(from int) int {
	for i := from - 1; i >= 0; i-- {
		if !l.entries[i].IsHeading() {
			return i
		}
	}
	return -1
}

// scroll keeps the selection visible, along with its heading when the
// heading sits directly above it.
func (l *CourseList) scroll() {
	top := l.selected
	if top > 0 && l.entries[top-1].IsHeading() {
		top--
	}
	if top < l.offset {
		l.offset = top
	}
	if l.selected >= l.offset+l.height {
		l.offset = l.selected - l.height + 1
	}
}

// SetDimensions sets the visible size. Height is in lines.
func (l *CourseList) SetDimensions(width, height int) {
	if height < 1 {
		height = 1
	}
	l.width = width
	l.height = height
	l.scroll()
}

// Height returns the visible line count.
func (l *CourseList) Height() int {
	return l.height
}
