package schedule

import (
	"context"

	"github.com/tavola/restaurant-hours/internal/audit"
	"github.com/tavola/restaurant-hours/internal/cache"
	domain "github.com/tavola/restaurant-hours/internal/domain/schedule"
	"github.com/tavola/restaurant-hours/internal/httperr"
	"github.com/tavola/restaurant-hours/internal/models"
)

type CreateSchedules struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewCreateSchedules(
	repo domain.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
) *CreateSchedules {
	return &CreateSchedules{repo: repo, cache: c, audit: audit}
}

// Execute installs the full week of opening hours for a restaurant that
// has none yet. Nothing is written unless the whole set validates.
func (uc *CreateSchedules) Execute(
	ctx context.Context,
	restaurantID string,
	days []DayInput,
) ([]models.Schedule, error) {

	rest, err := uc.repo.GetRestaurantWithSchedules(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	if len(rest.Schedules) > 0 {
		return nil, httperr.ErrBusiness(httperr.CodeAlreadyScheduled)
	}

	if _, err := domain.ValidateSet(toEntries(days), domain.ModeCreate); err != nil {
		return nil, err
	}

	rows := make([]models.Schedule, len(days))
	for i, d := range days {
		d.ID = ""
		rows[i] = toRow(restaurantID, d)
	}

	if err := uc.repo.CreateBatch(ctx, rows); err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, uc.cache,
		cache.SchedulesKey(restaurantID),
		cache.RestaurantKey(restaurantID),
	)

	uc.audit.Dispatch(audit.Event{
		Action:   "schedules_created",
		Entity:   "schedule",
		EntityID: restaurantID,
	})

	return rows, nil
}
