package schedule

import (
	domain "github.com/tavola/restaurant-hours/internal/domain/schedule"
	"github.com/tavola/restaurant-hours/internal/models"
)

// DayInput is one weekday of a create or update request. ID is only set
// on updates, which target existing rows. Empty secondary times mean no
// split shift.
type DayInput struct {
	ID           string
	Weekday      int
	OpeningTime  string
	ClosingTime  string
	OpeningTime2 string
	ClosingTime2 string
}

func toEntries(days []DayInput) []domain.Entry {
	entries := make([]domain.Entry, len(days))
	for i, d := range days {
		entries[i] = domain.Entry{
			ID:           d.ID,
			Weekday:      domain.Weekday(d.Weekday),
			OpeningTime:  d.OpeningTime,
			ClosingTime:  d.ClosingTime,
			OpeningTime2: d.OpeningTime2,
			ClosingTime2: d.ClosingTime2,
		}
	}
	return entries
}

func toRow(restaurantID string, d DayInput) models.Schedule {
	return models.Schedule{
		ID:           d.ID,
		RestaurantID: restaurantID,
		Weekday:      d.Weekday,
		OpeningTime:  ptr(d.OpeningTime),
		ClosingTime:  ptr(d.ClosingTime),
		OpeningTime2: ptr(d.OpeningTime2),
		ClosingTime2: ptr(d.ClosingTime2),
	}
}

func ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
