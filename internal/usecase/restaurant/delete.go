package restaurant

import (
	"context"

	"github.com/tavola/restaurant-hours/internal/audit"
	"github.com/tavola/restaurant-hours/internal/cache"
	domain "github.com/tavola/restaurant-hours/internal/domain/restaurant"
)

type DeleteRestaurant struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewDeleteRestaurant(
	repo domain.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
) *DeleteRestaurant {
	return &DeleteRestaurant{repo: repo, cache: c, audit: audit}
}

func (uc *DeleteRestaurant) Execute(ctx context.Context, id string) error {
	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	cache.Invalidate(ctx, uc.cache,
		cache.RestaurantKey(id),
		cache.SchedulesKey(id),
	)

	uc.audit.Dispatch(audit.Event{
		Action:   "restaurant_deleted",
		Entity:   "restaurant",
		EntityID: id,
	})

	return nil
}
