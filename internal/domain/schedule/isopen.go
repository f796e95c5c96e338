package schedule

import (
	"time"

	"github.com/tavola/restaurant-hours/internal/httperr"
)

// IsOpen decides whether a restaurant with the given schedule entries is
// open at the query instant.
//
// The stored times carry no date or zone, so each window is anchored to
// the query's own calendar day and evaluated as wall-clock time in the
// query's location: a request stamped with an offset is answered in that
// offset's wall clock. Bounds are inclusive at both ends.
func IsOpen(entries []Entry, at time.Time) (bool, error) {
	day := WeekdayOf(at)

	var entry *Entry
	for i := range entries {
		if entries[i].Weekday == day {
			entry = &entries[i]
			break
		}
	}
	if entry == nil {
		return false, httperr.ErrBusiness(httperr.CodeScheduleNotFound)
	}

	// A nulled-out entry means closed all day, not an error.
	if entry.closedAllDay() {
		return false, nil
	}

	if within(at, entry.OpeningTime, entry.ClosingTime) {
		return true, nil
	}
	if entry.hasSecondWindow() && within(at, entry.OpeningTime2, entry.ClosingTime2) {
		return true, nil
	}
	return false, nil
}

func within(at time.Time, opening, closing string) bool {
	open := onDay(at, opening)
	close := onDay(at, closing)
	return !at.Before(open) && !at.After(close)
}

// onDay combines the query's date with a stored wall-clock time, in the
// query's location.
func onDay(at time.Time, clockTime string) time.Time {
	t, _ := time.Parse(clockLayout, clockTime)
	return time.Date(
		at.Year(), at.Month(), at.Day(),
		t.Hour(), t.Minute(), t.Second(), 0,
		at.Location(),
	)
}
