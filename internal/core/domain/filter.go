package domain

import "strings"

// DefaultFilterDelimiter separates terms in a view filter query.
const DefaultFilterDelimiter = "-"

// CodeFilter is a set of course codes to keep. An empty filter keeps everything.
type CodeFilter struct {
	codes map[string]struct{}
}

// NewCodeFilter builds a filter from codes. Blank codes are ignored.
func NewCodeFilter(codes ...string) CodeFilter {
	f := CodeFilter{codes: make(map[string]struct{}, len(codes))}
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if c != "" {
			f.codes[c] = struct{}{}
		}
	}
	return f
}

// Allows reports whether a row with this course code should be kept.
func (f CodeFilter) Allows(code string) bool {
	if len(f.codes) == 0 {
		return true
	}
	_, ok := f.codes[code]
	return ok
}

// Len returns the number of codes in the filter.
func (f CodeFilter) Len() int {
	return len(f.codes)
}

// FilterTerms is a parsed view filter. A row matches when any term is a
// case-insensitive substring of its text. No terms match everything.
type FilterTerms []string

// ParseFilterTerms splits query on delimiter, trimming and dropping blanks.
func ParseFilterTerms(query, delimiter string) FilterTerms {
	if delimiter == "" {
		delimiter = DefaultFilterDelimiter
	}
	var terms FilterTerms
	for _, part := range strings.Split(query, delimiter) {
		part = strings.TrimSpace(part)
		if part != "" {
			terms = append(terms, strings.ToLower(part))
		}
	}
	return terms
}

// Matches reports whether text satisfies the filter.
func (t FilterTerms) Matches(text string) bool {
	if len(t) == 0 {
		return true
	}
	lower := strings.ToLower(text)
	for _, term := range t {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// RowText joins the visible fields of a record the way a rendered row reads.
func RowText(c *CourseRecord, units string) string {
	return strings.Join([]string{
		c.CourseName, c.CourseCode, c.DayTime, c.Professor, units,
		c.ClassName, c.Section, c.ClassCode, c.Exam, c.Place,
	}, " ")
}
