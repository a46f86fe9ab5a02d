package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWeekday_MondayIsZero(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	require.Equal(t, 0, Weekday(monday))
	require.Equal(t, 6, Weekday(sunday))
	require.Equal(t, 2, Weekday(monday.AddDate(0, 0, 2)))
}

func TestCombineDate(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	got, err := CombineDate(date, "09:30")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC), got)

	_, err = CombineDate(date, "9am")
	require.Error(t, err)
}

func TestParseClock(t *testing.T) {
	got, err := ParseClock("23:59")
	require.NoError(t, err)
	require.Equal(t, 23, got.Hour())
	require.Equal(t, 59, got.Minute())

	_, err = ParseClock("24:00")
	require.Error(t, err)
}
