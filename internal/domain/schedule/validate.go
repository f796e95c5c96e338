package schedule

import (
	"time"

	"github.com/tavola/restaurant-hours/internal/httperr"
)

// Mode selects the cardinality rule for ValidateSet: creation installs
// the full week at once, updates may target any non-empty subset of
// days.
type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

const clockLayout = "15:04:05"

// ValidateSet checks a candidate schedule set against the weekly-schedule
// rules without touching storage. On success the set is returned
// unchanged. Violations are reported deterministically: set-level rules
// (duplicates, week coverage, cardinality) before per-entry window
// rules, and within an entry the primary window before the secondary
// window and the overlap check.
func ValidateSet(entries []Entry, mode Mode) ([]Entry, error) {
	if mode == ModeUpdate && len(entries) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeEmptyUpdate)
	}

	seen := make(map[Weekday]bool, len(entries))
	for _, e := range entries {
		if seen[e.Weekday] {
			return nil, httperr.ErrBusiness(httperr.CodeDuplicateWeekday)
		}
		seen[e.Weekday] = true
	}

	if mode == ModeCreate {
		for day := Sunday; day <= Saturday; day++ {
			if !seen[day] {
				return nil, httperr.ErrBusiness(httperr.CodeIncompleteWeek)
			}
		}
		if len(entries) > DaysPerWeek {
			return nil, httperr.ErrBusiness(httperr.CodeTooManyDays)
		}
	}

	for _, e := range entries {
		if err := validateWindows(e); err != nil {
			return nil, err
		}
	}

	return entries, nil
}

func validateWindows(e Entry) error {
	if err := checkWindow(e.OpeningTime, e.ClosingTime); err != nil {
		return err
	}

	if !e.hasSecondWindow() {
		return nil
	}

	if err := checkWindow(e.OpeningTime2, e.ClosingTime2); err != nil {
		return err
	}

	// The second window may start exactly when the first closes, but
	// never before.
	if clock(e.ClosingTime).After(clock(e.OpeningTime2)) {
		return httperr.ErrBusiness(httperr.CodeOverlappingWindows)
	}

	return nil
}

// checkWindow rejects inverted and zero-length windows; a window must
// have strictly positive duration.
func checkWindow(opening, closing string) error {
	open, close := clock(opening), clock(closing)
	if open.After(close) || open.Equal(close) {
		return httperr.ErrBusiness(httperr.CodeInvalidWindowOrder)
	}
	return nil
}

// clock parses HH:MM:SS as a same-day wall-clock instant so that equal
// strings compare equal and ordering is numeric. Shape validation has
// already constrained the format upstream.
func clock(s string) time.Time {
	t, _ := time.Parse(clockLayout, s)
	return t
}
