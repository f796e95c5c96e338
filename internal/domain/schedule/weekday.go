package schedule

import "time"

// Weekday is the stored day-of-week value. The numbering is pinned here
// instead of relying on runtime defaults; it happens to match Go's
// time.Weekday, which WeekdayOf asserts at the only conversion point.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

const DaysPerWeek = 7

func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Saturday
}

func (w Weekday) String() string {
	if !w.Valid() {
		return "invalid"
	}
	return [...]string{
		"sunday", "monday", "tuesday", "wednesday",
		"thursday", "friday", "saturday",
	}[w]
}

// WeekdayOf maps a timestamp to the stored numbering.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday())
}
