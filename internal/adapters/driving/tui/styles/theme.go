// Package styles provides colour themes and styling for the terminal views.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette.
type Theme struct {
	// Accent marks day headers and the active tab.
	Accent lipgloss.Color

	// Highlight marks course codes and the selected row.
	Highlight lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for secondary course details.
	Muted lipgloss.Color

	// Warning marks diagnostics.
	Warning lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:     lipgloss.Color("#2B4C7E"),
		Highlight:  lipgloss.Color("#E0A458"),
		Foreground: lipgloss.Color("#E8E8EE"),
		Muted:      lipgloss.Color("#8A8FA3"),
		Warning:    lipgloss.Color("#F9E2AF"),
		Border:     lipgloss.Color("#45475A"),
		Bar:        lipgloss.Color("#181825"),
	}
}

// Styles contains pre-configured lipgloss styles for schedule views.
type Styles struct {
	theme *Theme

	Title      lipgloss.Style
	DayHeader  lipgloss.Style
	CourseName lipgloss.Style
	Code       lipgloss.Style
	Detail     lipgloss.Style
	Selected   lipgloss.Style
	Muted      lipgloss.Style
	Warning    lipgloss.Style
	InputField lipgloss.Style
	ActiveTab  lipgloss.Style
	Tab        lipgloss.Style
	StatusBar  lipgloss.Style
}

// NewStyles creates styles from a theme. A nil theme uses the default.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Highlight),

		DayHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Accent).
			Padding(0, 1),

		CourseName: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),

		Code: lipgloss.NewStyle().
			Foreground(theme.Highlight),

		Detail: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Border),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Accent).
			Padding(0, 1),

		Tab: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Bar).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
