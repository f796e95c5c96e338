package schedule

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tavola/restaurant-hours/internal/cache"
	domain "github.com/tavola/restaurant-hours/internal/domain/schedule"
	"github.com/tavola/restaurant-hours/internal/httperr"
	"github.com/tavola/restaurant-hours/internal/models"
)

type GetSchedules struct {
	repo  domain.Repository
	cache cache.Cache
	ttl   time.Duration
}

func NewGetSchedules(
	repo domain.Repository,
	c cache.Cache,
	ttl time.Duration,
) *GetSchedules {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return &GetSchedules{repo: repo, cache: c, ttl: ttl}
}

func (uc *GetSchedules) Execute(
	ctx context.Context,
	restaurantID string,
) ([]models.Schedule, error) {

	key := cache.SchedulesKey(restaurantID)

	if b, ok, err := uc.cache.Get(ctx, key); err == nil && ok {
		var rows []models.Schedule
		if json.Unmarshal(b, &rows) == nil {
			return rows, nil
		}
	}

	rest, err := uc.repo.GetRestaurantWithSchedules(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if len(rest.Schedules) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeScheduleNotFound)
	}

	if b, err := json.Marshal(rest.Schedules); err == nil {
		_ = uc.cache.Set(ctx, key, b, uc.ttl)
	}

	return rest.Schedules, nil
}
