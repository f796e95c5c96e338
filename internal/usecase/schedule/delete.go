package schedule

import (
	"context"

	"github.com/tavola/restaurant-hours/internal/audit"
	"github.com/tavola/restaurant-hours/internal/cache"
	domain "github.com/tavola/restaurant-hours/internal/domain/schedule"
	"github.com/tavola/restaurant-hours/internal/httperr"
	"github.com/tavola/restaurant-hours/internal/models"
)

type DeleteSchedules struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewDeleteSchedules(
	repo domain.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
) *DeleteSchedules {
	return &DeleteSchedules{repo: repo, cache: c, audit: audit}
}

// Execute "deletes" schedules by nulling their time columns: the
// weekday slots survive as closed-all-day rows. All requested ids must
// exist or nothing is touched.
func (uc *DeleteSchedules) Execute(
	ctx context.Context,
	ids []string,
) ([]models.Schedule, error) {

	rows, err := uc.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(rows) != len(ids) {
		return nil, httperr.ErrBusiness(httperr.CodeScheduleNotFound)
	}

	cleared, err := uc.repo.ClearTimes(ctx, ids)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(rows)*2)
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if seen[row.RestaurantID] {
			continue
		}
		seen[row.RestaurantID] = true
		keys = append(keys,
			cache.SchedulesKey(row.RestaurantID),
			cache.RestaurantKey(row.RestaurantID),
		)
	}
	cache.Invalidate(ctx, uc.cache, keys...)

	for restaurantID := range seen {
		uc.audit.Dispatch(audit.Event{
			Action:   "schedules_deleted",
			Entity:   "schedule",
			EntityID: restaurantID,
		})
	}

	return cleared, nil
}
