package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/coursesched/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/coursesched/internal/core/domain"
)

type mockReport struct {
	result *domain.ExtractResult
	err    error
}

func (m *mockReport) Generate(_ context.Context) (*domain.Report, error) {
	return &domain.Report{Result: m.result}, m.err
}

func (m *mockReport) Schedule(_ context.Context) (*domain.ExtractResult, error) {
	return m.result, m.err
}

func testResult() *domain.ExtractResult {
	r := domain.NewExtractResult()
	r.Schedule.Add(domain.CourseRecord{CourseCode: "4628101485", CourseName: "ریاضی", DayTime: "شنبه 08:00", TotalUnits: 3})
	r.Schedule.Add(domain.CourseRecord{CourseCode: "4628101490", CourseName: "فیزیک", DayTime: "سه 10:00", TotalUnits: 2})
	r.Schedule.Add(domain.CourseRecord{CourseCode: "4628101500", CourseName: "آمار", DayTime: "شنبه 13:00", TotalUnits: 1.5})
	return r
}

func newLoadedApp(t *testing.T, result *domain.ExtractResult, err error) *App {
	t.Helper()
	report := &mockReport{result: result, err: err}
	app, appErr := NewApp(&Ports{Report: report}, domain.RenderConfig{})
	require.NoError(t, appErr)

	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	msg := app.load()()
	app.Update(msg)
	return app
}

func typeText(app *App, text string) {
	for _, r := range text {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func headings(app *App) []string {
	var out []string
	for _, e := range app.Entries() {
		if e.IsHeading() {
			out = append(out, e.Heading)
		}
	}
	return out
}

func codes(app *App) []string {
	var out []string
	for _, e := range app.Entries() {
		if !e.IsHeading() {
			out = append(out, e.Course.CourseCode)
		}
	}
	return out
}

func TestNewApp_RequiresReport(t *testing.T) {
	_, err := NewApp(&Ports{}, domain.RenderConfig{})
	assert.ErrorIs(t, err, ErrMissingReportService)

	_, err = NewApp(nil, domain.RenderConfig{})
	assert.ErrorIs(t, err, ErrMissingReportService)
}

func TestApp_Init(t *testing.T) {
	app, err := NewApp(&Ports{Report: &mockReport{result: testResult()}}, domain.RenderConfig{})
	require.NoError(t, err)

	assert.NotNil(t, app.Init())
}

func TestApp_LoadedByDay(t *testing.T) {
	app := newLoadedApp(t, testResult(), nil)

	assert.Equal(t, messages.ViewByDay, app.Mode())
	assert.Equal(t, []string{"شنبه", "سه شنبه"}, headings(app))
	assert.Equal(t, []string{"4628101485", "4628101500", "4628101490"}, codes(app))
	assert.Equal(t, "4628101485", app.SelectedCourse().CourseCode)
}

func TestApp_ToggleView(t *testing.T) {
	app := newLoadedApp(t, testResult(), nil)

	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, messages.ViewAll, app.Mode())
	assert.Equal(t, []string{AllCoursesHeading}, headings(app))
	assert.Equal(t, []string{"4628101500", "4628101485", "4628101490"}, codes(app), "sorted by name")

	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, messages.ViewByDay, app.Mode())
}

func TestApp_Filter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "by code", query: "4628101490", want: []string{"4628101490"}},
		{name: "by name", query: "ریاضی", want: []string{"4628101485"}},
		{name: "or terms", query: "ریاضی - فیزیک", want: []string{"4628101485", "4628101490"}},
		{name: "no match", query: "zzz", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newLoadedApp(t, testResult(), nil)
			typeText(app, tt.query)

			assert.Equal(t, tt.query, app.Query())
			assert.Equal(t, tt.want, codes(app))
		})
	}
}

func TestApp_FilterHidesEmptyDays(t *testing.T) {
	app := newLoadedApp(t, testResult(), nil)
	typeText(app, "فیزیک")

	assert.Equal(t, []string{"سه شنبه"}, headings(app))
}

func TestApp_ClearFilter(t *testing.T) {
	app := newLoadedApp(t, testResult(), nil)
	typeText(app, "zzz")
	require.Empty(t, codes(app))

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Equal(t, "", app.Query())
	assert.Len(t, codes(app), 3)
}

func TestApp_Navigation(t *testing.T) {
	app := newLoadedApp(t, testResult(), nil)

	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "4628101500", app.SelectedCourse().CourseCode)
	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "4628101490", app.SelectedCourse().CourseCode)
	app.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "4628101500", app.SelectedCourse().CourseCode)
}

func TestApp_Quit(t *testing.T) {
	app := newLoadedApp(t, testResult(), nil)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_LetterQDoesNotQuit(t *testing.T) {
	app := newLoadedApp(t, testResult(), nil)

	typeText(app, "q")
	assert.Equal(t, "q", app.Query())
}

func TestApp_LoadError(t *testing.T) {
	app := newLoadedApp(t, nil, errors.New("disk on fire"))

	assert.Error(t, app.Err())
	assert.Empty(t, app.Entries())
	assert.Contains(t, app.View(), "disk on fire")
}

func TestApp_MissingColumnShowsEmptySchedule(t *testing.T) {
	err := &domain.MissingColumnError{Labels: []string{"استاد"}}
	app := newLoadedApp(t, domain.NewExtractResult(), err)

	assert.ErrorIs(t, app.Err(), domain.ErrMissingColumn)
	assert.Empty(t, codes(app))
	assert.Contains(t, app.View(), "درسی یافت نشد")
}

func TestApp_View(t *testing.T) {
	app := newLoadedApp(t, testResult(), nil)
	view := app.View()

	assert.Contains(t, view, "برنامه کلاس‌ها")
	assert.Contains(t, view, "نمایش هفتگی")
	assert.Contains(t, view, "نمایش همه دروس")
	assert.Contains(t, view, "ریاضی")
	assert.Contains(t, view, "3/3 درس")
}
