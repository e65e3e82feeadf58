// Package status provides the status bar for the browse view.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/coursesched/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/coursesched/internal/adapters/driving/tui/styles"
)

// State represents what the browse view is doing.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Bar displays course counts, diagnostics and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	state    State
	message  string
	shown    int
	total    int
	warnings int
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateLoading,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update is a no-op; the bar is driven through its setters.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	inner := s.width - s.styles.StatusBar.GetHorizontalFrameSize()
	padding := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("در حال خواندن...")
	case StateError:
		if s.message != "" {
			return s.styles.Warning.Render("خطا: " + s.message)
		}
		return s.styles.Warning.Render("خطا")
	case StateReady:
	}

	counts := fmt.Sprintf("%d/%d درس", s.shown, s.total)
	if s.warnings > 0 {
		counts += s.styles.Warning.Render(fmt.Sprintf("  %d هشدار", s.warnings))
	}
	return counts
}

func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the error message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// SetCounts sets how many courses are shown out of the total.
func (s *Bar) SetCounts(shown, total int) {
	s.shown = shown
	s.total = total
}

// Counts returns the shown and total course counts.
func (s *Bar) Counts() (shown, total int) {
	return s.shown, s.total
}

// SetWarnings sets the number of extraction diagnostics.
func (s *Bar) SetWarnings(n int) {
	s.warnings = n
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Bindings returns the hinted key bindings.
func (s *Bar) Bindings() []key.Binding {
	return s.keymap.ShortHelp()
}
