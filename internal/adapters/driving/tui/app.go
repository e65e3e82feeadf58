package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/coursesched/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/coursesched/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/coursesched/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/coursesched/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/coursesched/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/coursesched/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/coursesched/internal/core/domain"
)

// AllCoursesHeading titles the all-courses view.
const AllCoursesHeading = "تمام دروس"

// Lines used by everything but the list: title, tabs, input (3), status bar.
const chromeHeight = 6

// App is the schedule browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	render domain.RenderConfig

	styles *styles.Styles
	keymap *keymap.KeyMap
	input  *input.FilterInput
	list   *list.CourseList
	bar    *status.Bar

	result *domain.ExtractResult
	mode   messages.ViewMode
	query  string
	err    error

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the browser. Blank render settings use the defaults.
func NewApp(ports *Ports, render domain.RenderConfig) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	defaults := domain.DefaultRenderConfig()
	if render.Title == "" {
		render.Title = defaults.Title
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	return &App{
		ports:  ports,
		ctx:    context.Background(),
		render: render,
		styles: s,
		keymap: km,
		input:  input.NewFilterInput(s, render.FilterDelimiter),
		list:   list.NewCourseList(s, render.UnitLabel),
		bar:    status.NewBar(s, km),
		mode:   messages.ViewByDay,
	}, nil
}

// WithContext sets the context used to load the schedule.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init loads the schedule.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.input.Init(),
		a.load(),
		tea.SetWindowTitle(a.render.Title),
	)
}

func (a *App) load() tea.Cmd {
	report := a.ports.Report
	ctx := a.ctx
	return func() tea.Msg {
		result, err := report.Schedule(ctx)
		return messages.ScheduleLoaded{Result: result, Err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.SetWidth(msg.Width)
		a.list.SetDimensions(msg.Width, msg.Height-chromeHeight)
		a.bar.SetWidth(msg.Width)
		return a, nil

	case messages.ScheduleLoaded:
		a.loaded(msg)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) loaded(msg messages.ScheduleLoaded) {
	a.result = msg.Result
	a.err = msg.Err

	// A missing column still yields an (empty) schedule worth showing.
	if msg.Err != nil && !errors.Is(msg.Err, domain.ErrMissingColumn) {
		a.bar.SetState(status.StateError)
		a.bar.SetMessage(msg.Err.Error())
		return
	}
	a.bar.SetState(status.StateReady)
	if msg.Err != nil {
		a.bar.SetMessage(msg.Err.Error())
	}
	if a.result != nil {
		a.bar.SetWarnings(len(a.result.Diagnostics))
	}
	a.refresh()
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keymap.ToggleView):
		a.mode = a.mode.Toggle()
		a.refresh()
		return a, nil
	case key.Matches(msg, a.keymap.Up):
		a.list.MoveUp()
		return a, nil
	case key.Matches(msg, a.keymap.Down):
		a.list.MoveDown()
		return a, nil
	case key.Matches(msg, a.keymap.PageUp):
		a.list.PageUp()
		return a, nil
	case key.Matches(msg, a.keymap.PageDown):
		a.list.PageDown()
		return a, nil
	case key.Matches(msg, a.keymap.Clear):
		a.input.Reset()
		a.query = ""
		a.refresh()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if a.input.Value() != a.query {
		a.query = a.input.Value()
		a.refresh()
	}
	return a, cmd
}

// refresh rebuilds the list from the schedule, mode and filter.
func (a *App) refresh() {
	if a.result == nil || a.result.Schedule == nil {
		a.list.SetEntries(nil)
		a.bar.SetCounts(0, 0)
		return
	}

	schedule := a.result.Schedule
	terms := a.input.Terms()
	matches := func(c *domain.CourseRecord) bool {
		return terms.Matches(domain.RowText(c, domain.FormatUnits(c.TotalUnits)))
	}

	var entries []list.Entry
	switch a.mode {
	case messages.ViewAll:
		all := schedule.SortedByName()
		section := []list.Entry{{Heading: AllCoursesHeading}}
		for i := range all {
			if matches(&all[i]) {
				section = append(section, list.Entry{Course: &all[i]})
			}
		}
		entries = section
	case messages.ViewByDay:
		for _, day := range schedule.Days() {
			var section []list.Entry
			for i := range day.Courses {
				if matches(&day.Courses[i]) {
					section = append(section, list.Entry{Course: &day.Courses[i]})
				}
			}
			if len(section) > 0 {
				entries = append(entries, list.Entry{Heading: day.Name})
				entries = append(entries, section...)
			}
		}
	}

	a.list.SetEntries(entries)
	a.bar.SetCounts(a.list.Count(), schedule.Len())
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render(a.render.Title))
	b.WriteString("\n")
	b.WriteString(a.renderTabs())
	b.WriteString("\n")
	b.WriteString(a.input.View())
	b.WriteString("\n")

	if a.result == nil && a.err == nil {
		b.WriteString(a.styles.Muted.Render("..."))
	} else {
		b.WriteString(a.list.View())
	}
	b.WriteString("\n")
	b.WriteString(a.bar.View())

	return b.String()
}

func (a *App) renderTabs() string {
	tabs := make([]string, 0, 2)
	for _, m := range []messages.ViewMode{messages.ViewByDay, messages.ViewAll} {
		if m == a.mode {
			tabs = append(tabs, a.styles.ActiveTab.Render(m.String()))
		} else {
			tabs = append(tabs, a.styles.Tab.Render(m.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// Mode returns the current view mode.
func (a *App) Mode() messages.ViewMode {
	return a.mode
}

// Query returns the current filter text.
func (a *App) Query() string {
	return a.query
}

// Entries returns the lines currently listed.
func (a *App) Entries() []list.Entry {
	return a.list.Entries()
}

// SelectedCourse returns the highlighted course, if any.
func (a *App) SelectedCourse() *domain.CourseRecord {
	return a.list.SelectedCourse()
}

// Err returns the load error, if any.
func (a *App) Err() error {
	return a.err
}
