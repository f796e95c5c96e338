package schedule

import (
	"context"
	"fmt"

	"github.com/tavola/restaurant-hours/internal/httperr"
	"github.com/tavola/restaurant-hours/internal/models"
)

// fakeRepo is an in-memory stand-in for the GORM repository. It holds a
// single restaurant and its schedule rows.
type fakeRepo struct {
	restaurant *models.Restaurant
	rows       []models.Schedule

	restaurantCalls int
	created         [][]models.Schedule
}

func newFakeRepo(restaurantID string, rows ...models.Schedule) *fakeRepo {
	return &fakeRepo{
		restaurant: &models.Restaurant{
			ID:        restaurantID,
			TradeName: "Cantina da Praca",
			LegalName: "Cantina da Praca LTDA",
			CNPJ:      "12345678000190",
			Category:  models.CategoryItalian,
		},
		rows: rows,
	}
}

func (f *fakeRepo) byRestaurant(id string) []models.Schedule {
	var out []models.Schedule
	for _, row := range f.rows {
		if row.RestaurantID == id {
			out = append(out, row)
		}
	}
	return out
}

func (f *fakeRepo) GetRestaurantWithSchedules(ctx context.Context, restaurantID string) (*models.Restaurant, error) {
	f.restaurantCalls++
	if f.restaurant == nil || f.restaurant.ID != restaurantID {
		return nil, httperr.ErrBusiness(httperr.CodeRestaurantNotFound)
	}
	r := *f.restaurant
	r.Schedules = f.byRestaurant(restaurantID)
	return &r, nil
}

func (f *fakeRepo) CreateBatch(ctx context.Context, rows []models.Schedule) error {
	for i := range rows {
		if rows[i].ID == "" {
			rows[i].ID = fmt.Sprintf("row-%d", len(f.rows)+i)
		}
	}
	f.created = append(f.created, rows)
	f.rows = append(f.rows, rows...)
	return nil
}

func (f *fakeRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Schedule, error) {
	return f.byRestaurant(restaurantID), nil
}

func (f *fakeRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Schedule, error) {
	var out []models.Schedule
	for _, id := range ids {
		for _, row := range f.rows {
			if row.ID == id {
				out = append(out, row)
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateTimes(ctx context.Context, rows []models.Schedule) error {
	for _, row := range rows {
		found := false
		for i := range f.rows {
			if f.rows[i].ID == row.ID {
				f.rows[i].OpeningTime = row.OpeningTime
				f.rows[i].ClosingTime = row.ClosingTime
				f.rows[i].OpeningTime2 = row.OpeningTime2
				f.rows[i].ClosingTime2 = row.ClosingTime2
				found = true
			}
		}
		if !found {
			return httperr.ErrBusiness(httperr.CodeScheduleNotFound)
		}
	}
	return nil
}

func (f *fakeRepo) ClearTimes(ctx context.Context, ids []string) ([]models.Schedule, error) {
	var out []models.Schedule
	for _, id := range ids {
		for i := range f.rows {
			if f.rows[i].ID == id {
				f.rows[i].OpeningTime = nil
				f.rows[i].ClosingTime = nil
				f.rows[i].OpeningTime2 = nil
				f.rows[i].ClosingTime2 = nil
				out = append(out, f.rows[i])
			}
		}
	}
	return out, nil
}

func weekInputs() []DayInput {
	days := make([]DayInput, 7)
	for i := range days {
		days[i] = DayInput{
			Weekday:      i,
			OpeningTime:  "10:00:00",
			ClosingTime:  "12:00:00",
			OpeningTime2: "14:00:00",
			ClosingTime2: "18:00:00",
		}
	}
	return days
}

func weekRows(restaurantID string) []models.Schedule {
	rows := make([]models.Schedule, 7)
	for i := range rows {
		rows[i] = models.Schedule{
			ID:           fmt.Sprintf("row-%d", i),
			RestaurantID: restaurantID,
			Weekday:      i,
			OpeningTime:  ptr("10:00:00"),
			ClosingTime:  ptr("12:00:00"),
			OpeningTime2: ptr("14:00:00"),
			ClosingTime2: ptr("18:00:00"),
		}
	}
	return rows
}
