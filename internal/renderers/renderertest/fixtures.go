// Package renderertest provides shared schedules for renderer tests.
package renderertest

import "github.com/custodia-labs/coursesched/internal/core/domain"

// Course builds a record with a deterministic ID.
func Course(code, name, dayTime string, theory, practical float64) domain.CourseRecord {
	return domain.CourseRecord{
		ID:             domain.RecordID("fixture.html", 0, code, code+"01", dayTime),
		CourseCode:     code,
		CourseName:     name,
		DayTime:        dayTime,
		Professor:      "دکتر احمدی",
		TheoryUnits:    theory,
		PracticalUnits: practical,
		TotalUnits:     theory + practical,
		ClassName:      "کلاس ۱۰۱",
		Section:        "کارشناسی",
		ClassCode:      code + "01",
		Exam:           "1403/10/20",
		Place:          domain.Placeholder,
		Source:         "fixture.html",
	}
}

// Schedule returns three records over two days plus one unspecified.
//
//	شنبه:     ریاضی (3), آمار (1.5)
//	سه شنبه: فیزیک (2)
//	نامشخص:   برنامه‌سازی (3)
func Schedule() *domain.WeeklySchedule {
	s := domain.NewWeeklySchedule()
	s.Add(Course("4628101485", "ریاضی", "شنبه 08:00-10:00", 3, 0))
	s.Add(Course("4628101490", "فیزیک", "سه 10:00-12:00", 2, 0))
	s.Add(Course("4628101500", "آمار", "شنبه 13:00-14:30", 1, 0.5))
	s.Add(Course("4628101510", "برنامه‌سازی", domain.UnspecifiedDayTime, 2, 1))
	return s
}
