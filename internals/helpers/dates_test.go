package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODate(t *testing.T) {
	d, err := ParseISODate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 15, d.Day())

	d, err = ParseISODate("2024-03-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, d.Hour())

	_, err = ParseISODate("15/03/2024")
	assert.Error(t, err)
}

func TestDateRange(t *testing.T) {
	start, end := DateRange(
		time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC),
		time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC),
	)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, 12, end.Day())
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
}

func TestParseDateRangeQuery(t *testing.T) {
	start, end, ok := ParseDateRangeQuery("2024-01-01", "2024-01-31")
	require.True(t, ok)
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, 31, end.Day())

	// both sides are required
	_, _, ok = ParseDateRangeQuery("2024-01-01", "")
	assert.False(t, ok)
	_, _, ok = ParseDateRangeQuery("", "2024-01-31")
	assert.False(t, ok)
	_, _, ok = ParseDateRangeQuery("", "")
	assert.False(t, ok)

	_, _, ok = ParseDateRangeQuery("bogus", "2024-01-31")
	assert.False(t, ok)
}

func TestCurrentMonthRange(t *testing.T) {
	start, end := CurrentMonthRange()
	now := time.Now()
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, now.Month(), start.Month())
	assert.Equal(t, now.Month(), end.Month())
	assert.True(t, end.After(start))
}
