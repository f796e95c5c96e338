package schedule

import (
	"context"

	"github.com/tavola/restaurant-hours/internal/audit"
	"github.com/tavola/restaurant-hours/internal/cache"
	domain "github.com/tavola/restaurant-hours/internal/domain/schedule"
	"github.com/tavola/restaurant-hours/internal/httperr"
	"github.com/tavola/restaurant-hours/internal/models"
)

type UpdateSchedules struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewUpdateSchedules(
	repo domain.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
) *UpdateSchedules {
	return &UpdateSchedules{repo: repo, cache: c, audit: audit}
}

// Execute rewrites the windows of an existing subset of days, row by
// row in one transaction.
func (uc *UpdateSchedules) Execute(
	ctx context.Context,
	restaurantID string,
	days []DayInput,
) ([]models.Schedule, error) {

	if len(days) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeEmptyUpdate)
	}

	if _, err := uc.repo.GetRestaurantWithSchedules(ctx, restaurantID); err != nil {
		return nil, err
	}

	if _, err := domain.ValidateSet(toEntries(days), domain.ModeUpdate); err != nil {
		return nil, err
	}

	rows := make([]models.Schedule, len(days))
	for i, d := range days {
		rows[i] = toRow(restaurantID, d)
	}

	if err := uc.repo.UpdateTimes(ctx, rows); err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, uc.cache,
		cache.SchedulesKey(restaurantID),
		cache.RestaurantKey(restaurantID),
	)

	uc.audit.Dispatch(audit.Event{
		Action:   "schedules_updated",
		Entity:   "schedule",
		EntityID: restaurantID,
	})

	return uc.repo.ListByRestaurant(ctx, restaurantID)
}
