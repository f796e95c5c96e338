package schedule

import "github.com/tavola/restaurant-hours/internal/models"

// Entry is one weekday of a restaurant's opening hours as seen by the
// pure validation and evaluation rules. Times are wall-clock HH:MM:SS
// strings; an empty string means the field is absent. The secondary
// window covers the split-shift case (e.g. closing for lunch).
type Entry struct {
	ID      string
	Weekday Weekday

	OpeningTime  string
	ClosingTime  string
	OpeningTime2 string
	ClosingTime2 string
}

func (e Entry) hasSecondWindow() bool {
	return e.OpeningTime2 != "" && e.ClosingTime2 != ""
}

// closedAllDay reports the nulled-out state a schedule "delete" leaves
// behind: the weekday slot still exists but has no windows.
func (e Entry) closedAllDay() bool {
	return e.OpeningTime == "" || e.ClosingTime == ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// FromModel converts a stored schedule row.
func FromModel(s models.Schedule) Entry {
	return Entry{
		ID:           s.ID,
		Weekday:      Weekday(s.Weekday),
		OpeningTime:  deref(s.OpeningTime),
		ClosingTime:  deref(s.ClosingTime),
		OpeningTime2: deref(s.OpeningTime2),
		ClosingTime2: deref(s.ClosingTime2),
	}
}

func FromModels(rows []models.Schedule) []Entry {
	entries := make([]Entry, len(rows))
	for i, row := range rows {
		entries[i] = FromModel(row)
	}
	return entries
}
