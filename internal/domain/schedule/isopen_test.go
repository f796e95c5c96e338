package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavola/restaurant-hours/internal/httperr"
)

// All instants use a fixed UTC-3 offset so results do not depend on the
// machine running the tests. 2024-05-20 is a Monday.
var testZone = time.FixedZone("UTC-3", -3*60*60)

func monday(hour, min, sec int) time.Time {
	return time.Date(2024, time.May, 20, hour, min, sec, 0, testZone)
}

func splitShiftMonday() []Entry {
	return []Entry{{
		Weekday:      Monday,
		OpeningTime:  "10:00:00",
		ClosingTime:  "12:00:00",
		OpeningTime2: "14:00:00",
		ClosingTime2: "18:00:00",
	}}
}

func TestIsOpenWithinPrimaryWindow(t *testing.T) {
	open, err := IsOpen(splitShiftMonday(), monday(11, 0, 0))

	require.NoError(t, err)
	assert.True(t, open)
}

func TestIsOpenBetweenWindows(t *testing.T) {
	open, err := IsOpen(splitShiftMonday(), monday(13, 0, 0))

	require.NoError(t, err)
	assert.False(t, open, "the gap between windows is closed")
}

func TestIsOpenWithinSecondaryWindow(t *testing.T) {
	open, err := IsOpen(splitShiftMonday(), monday(15, 30, 0))

	require.NoError(t, err)
	assert.True(t, open)
}

func TestIsOpenBoundsAreInclusive(t *testing.T) {
	cases := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"at opening", monday(10, 0, 0), true},
		{"at closing", monday(12, 0, 0), true},
		{"second before opening", monday(9, 59, 59), false},
		{"second after closing", monday(12, 0, 1), false},
		{"at second opening", monday(14, 0, 0), true},
		{"at second closing", monday(18, 0, 0), true},
		{"second after second closing", monday(18, 0, 1), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			open, err := IsOpen(splitShiftMonday(), tc.at)
			require.NoError(t, err)
			assert.Equal(t, tc.want, open)
		})
	}
}

func TestIsOpenPrimaryOnlyEntry(t *testing.T) {
	entries := []Entry{{
		Weekday:     Monday,
		OpeningTime: "10:00:00",
		ClosingTime: "12:00:00",
	}}

	open, err := IsOpen(entries, monday(15, 0, 0))

	require.NoError(t, err)
	assert.False(t, open)
}

func TestIsOpenNoEntryForWeekday(t *testing.T) {
	tuesday := monday(11, 0, 0).AddDate(0, 0, 1)

	open, err := IsOpen(splitShiftMonday(), tuesday)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeScheduleNotFound))
	assert.False(t, open)
}

func TestIsOpenDeletedScheduleAlwaysClosed(t *testing.T) {
	entries := []Entry{{Weekday: Monday}}

	for _, at := range []time.Time{
		monday(0, 0, 0),
		monday(11, 0, 0),
		monday(23, 59, 59),
	} {
		open, err := IsOpen(entries, at)
		require.NoError(t, err)
		assert.False(t, open)
	}
}

func TestIsOpenEvaluatesInQueryZone(t *testing.T) {
	// Same wall-clock reading in a different offset: still inside the
	// window, because stored times are interpreted in the query's zone.
	elsewhere := time.FixedZone("UTC+5", 5*60*60)
	at := time.Date(2024, time.May, 20, 11, 0, 0, 0, elsewhere)

	open, err := IsOpen(splitShiftMonday(), at)

	require.NoError(t, err)
	assert.True(t, open)
}

func TestWeekdayOfMatchesStoredNumbering(t *testing.T) {
	assert.Equal(t, Monday, WeekdayOf(monday(0, 0, 0)))
	assert.Equal(t, Sunday, WeekdayOf(monday(0, 0, 0).AddDate(0, 0, -1)))
	assert.Equal(t, Saturday, WeekdayOf(monday(0, 0, 0).AddDate(0, 0, 5)))
}
