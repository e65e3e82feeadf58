package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func portalHeaders() []string {
	labels := DefaultHeaderLabels()
	headers := []string{"ردیف"}
	for _, f := range Fields() {
		headers = append(headers, labels[f])
	}
	return headers
}

func TestResolveColumns_Success(t *testing.T) {
	idx, err := ResolveColumns(portalHeaders(), DefaultHeaderLabels())
	require.NoError(t, err)

	pos, ok := idx.Position(FieldCourseCode)
	assert.True(t, ok)
	assert.Equal(t, 1, pos)

	pos, ok = idx.Position(FieldPlace)
	assert.True(t, ok)
	assert.Equal(t, 11, pos)

	assert.Equal(t, 11, idx.MaxIndex())
}

func TestResolveColumns_Missing(t *testing.T) {
	headers := portalHeaders()
	headers = headers[:len(headers)-1] // drop place

	_, err := ResolveColumns(headers, DefaultHeaderLabels())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)

	var mc *MissingColumnError
	require.True(t, errors.As(err, &mc))
	assert.Equal(t, []string{"مكان برگزاري"}, mc.Labels)
}

func TestResolveColumns_PersianLettersDoNotMatch(t *testing.T) {
	headers := portalHeaders()
	// Persian kaf instead of the Arabic kaf the portal uses.
	headers[1] = "کد درس"

	_, err := ResolveColumns(headers, DefaultHeaderLabels())
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestResolveColumns_FirstDuplicateWins(t *testing.T) {
	headers := append(portalHeaders(), "كد درس")

	idx, err := ResolveColumns(headers, DefaultHeaderLabels())
	require.NoError(t, err)

	pos, _ := idx.Position(FieldCourseCode)
	assert.Equal(t, 1, pos)
}

func TestColumnIndex_Covers(t *testing.T) {
	idx, err := ResolveColumns(portalHeaders(), DefaultHeaderLabels())
	require.NoError(t, err)

	assert.True(t, idx.Covers(make([]string, 12)))
	assert.False(t, idx.Covers(make([]string, 11)), "row one cell short")
	assert.False(t, ColumnIndex{}.Covers(make([]string, 100)))
	assert.Equal(t, -1, ColumnIndex{}.MaxIndex())
}
