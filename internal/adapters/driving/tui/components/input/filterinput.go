// Package input provides the filter input for the browse view.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/coursesched/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/coursesched/internal/core/domain"
)

// FilterInput wraps a bubbles textinput and parses its value into terms.
type FilterInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	delimiter string
	width     int
}

// NewFilterInput creates a focused filter input. Terms are split on delimiter.
func NewFilterInput(s *styles.Styles, delimiter string) *FilterInput {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if delimiter == "" {
		delimiter = domain.DefaultFilterDelimiter
	}

	ti := textinput.New()
	ti.Placeholder = "4628101485 " + delimiter + " ریاضی"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &FilterInput{
		textinput: ti,
		styles:    s,
		delimiter: delimiter,
		width:     50,
	}
}

// Init starts the cursor blink.
func (f *FilterInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (f *FilterInput) Update(msg tea.Msg) (*FilterInput, tea.Cmd) {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

// View renders the labelled input.
func (f *FilterInput) View() string {
	label := f.styles.Title.Render("فیلتر: ")
	field := f.styles.InputField.Render(f.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the raw query.
func (f *FilterInput) Value() string {
	return f.textinput.Value()
}

// SetValue replaces the query.
func (f *FilterInput) SetValue(value string) {
	f.textinput.SetValue(value)
}

// Terms returns the query split into OR-combined filter terms.
func (f *FilterInput) Terms() domain.FilterTerms {
	return domain.ParseFilterTerms(f.textinput.Value(), f.delimiter)
}

// Delimiter returns the term separator.
func (f *FilterInput) Delimiter() string {
	return f.delimiter
}

// Focused returns whether the input is focused.
func (f *FilterInput) Focused() bool {
	return f.textinput.Focused()
}

// SetWidth sets the width of the input.
func (f *FilterInput) SetWidth(width int) {
	f.width = width
	// Leave room for the label and border.
	inputWidth := width - 14
	if inputWidth < 20 {
		inputWidth = 20
	}
	f.textinput.Width = inputWidth
}

// Width returns the current width.
func (f *FilterInput) Width() int {
	return f.width
}

// Reset clears the input.
func (f *FilterInput) Reset() {
	f.textinput.Reset()
}
