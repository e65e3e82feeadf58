package csv

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/jszwec/csvutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/coursesched/internal/core/domain"
	"github.com/custodia-labs/coursesched/internal/renderers/renderertest"
)

func render(t *testing.T, s *domain.WeeklySchedule) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, New().Render(context.Background(), &buf, s))
	return buf.String()
}

func decode(t *testing.T, out string) []row {
	t.Helper()
	require.True(t, strings.HasPrefix(out, utf8BOM))

	dec, err := csvutil.NewDecoder(csv.NewReader(strings.NewReader(strings.TrimPrefix(out, utf8BOM))))
	require.NoError(t, err)

	var rows []row
	require.NoError(t, dec.Decode(&rows))
	return rows
}

func TestRenderer_Metadata(t *testing.T) {
	r := New()
	assert.Equal(t, "csv", r.Name())
	assert.Equal(t, ".csv", r.Extension())
}

func TestRenderer_Render(t *testing.T) {
	rows := decode(t, render(t, renderertest.Schedule()))
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"شنبه", "شنبه", "سه شنبه", "نامشخص"},
		[]string{rows[0].Day, rows[1].Day, rows[2].Day, rows[3].Day})
	assert.Equal(t, "4628101485", rows[0].CourseCode)
	assert.Equal(t, "4628101500", rows[1].CourseCode)

	assert.Equal(t, "1", rows[1].Theory)
	assert.Equal(t, "0.5", rows[1].Practical)
	assert.Equal(t, "1.5", rows[1].Total)
	assert.Equal(t, domain.Placeholder, rows[0].Place)
	assert.NotEmpty(t, rows[0].ID)
}

func TestRenderer_Render_EmptyScheduleHasHeader(t *testing.T) {
	out := render(t, domain.NewWeeklySchedule())

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(out, utf8BOM)), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "day,course_code,course_name"))
}

func TestRenderer_Render_Idempotent(t *testing.T) {
	s := renderertest.Schedule()
	assert.Equal(t, render(t, s), render(t, s))
}
