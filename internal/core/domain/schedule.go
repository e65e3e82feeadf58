package domain

import "sort"

// DaySchedule is one weekday bucket.
type DaySchedule struct {
	Name    string
	Courses []CourseRecord
}

// WeeklySchedule groups course records into the fixed weekday buckets.
// Every bucket is always present; insertion order is preserved within a day.
type WeeklySchedule struct {
	days map[string][]CourseRecord
}

// NewWeeklySchedule creates a schedule with every bucket present and empty.
func NewWeeklySchedule() *WeeklySchedule {
	days := make(map[string][]CourseRecord, len(dayOrder))
	for _, d := range dayOrder {
		days[d] = []CourseRecord{}
	}
	return &WeeklySchedule{days: days}
}

// Add appends a record to the bucket for its day/time.
func (s *WeeklySchedule) Add(record CourseRecord) {
	day := record.Weekday()
	s.days[day] = append(s.days[day], record)
}

// Day returns the records of one bucket. Unknown names return nil.
func (s *WeeklySchedule) Day(name string) []CourseRecord {
	return s.days[name]
}

// Days returns every bucket in the fixed order, including empty ones.
func (s *WeeklySchedule) Days() []DaySchedule {
	out := make([]DaySchedule, 0, len(dayOrder))
	for _, d := range dayOrder {
		out = append(out, DaySchedule{Name: d, Courses: s.days[d]})
	}
	return out
}

// All returns every record in bucket order.
func (s *WeeklySchedule) All() []CourseRecord {
	out := make([]CourseRecord, 0, s.Len())
	for _, d := range dayOrder {
		out = append(out, s.days[d]...)
	}
	return out
}

// SortedByName returns every record sorted by course name.
// Records with equal names keep their bucket order.
func (s *WeeklySchedule) SortedByName() []CourseRecord {
	out := s.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CourseName < out[j].CourseName
	})
	return out
}

// Len returns the number of records across all buckets.
func (s *WeeklySchedule) Len() int {
	n := 0
	for _, courses := range s.days {
		n += len(courses)
	}
	return n
}

// IsEmpty reports whether no bucket holds a record.
func (s *WeeklySchedule) IsEmpty() bool {
	return s.Len() == 0
}
