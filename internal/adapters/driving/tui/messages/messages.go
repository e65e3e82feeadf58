// Package messages defines Bubbletea message types for the browse view.
package messages

import (
	"github.com/custodia-labs/coursesched/internal/core/domain"
)

// ScheduleLoaded carries the extraction result back to the model.
type ScheduleLoaded struct {
	Result *domain.ExtractResult
	Err    error
}

// ViewMode selects how courses are grouped.
type ViewMode int

const (
	// ViewByDay shows one section per non-empty weekday.
	ViewByDay ViewMode = iota
	// ViewAll shows every course sorted by name.
	ViewAll
)

// String returns the mode's label.
func (m ViewMode) String() string {
	if m == ViewAll {
		return "نمایش همه دروس"
	}
	return "نمایش هفتگی"
}

// Toggle returns the other mode.
func (m ViewMode) Toggle() ViewMode {
	if m == ViewAll {
		return ViewByDay
	}
	return ViewAll
}
