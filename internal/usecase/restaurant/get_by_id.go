package restaurant

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tavola/restaurant-hours/internal/cache"
	domain "github.com/tavola/restaurant-hours/internal/domain/restaurant"
	"github.com/tavola/restaurant-hours/internal/models"
)

type GetRestaurantByID struct {
	repo  domain.Repository
	cache cache.Cache
	ttl   time.Duration
}

func NewGetRestaurantByID(
	repo domain.Repository,
	c cache.Cache,
	ttl time.Duration,
) *GetRestaurantByID {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return &GetRestaurantByID{repo: repo, cache: c, ttl: ttl}
}

func (uc *GetRestaurantByID) Execute(
	ctx context.Context,
	id string,
) (*models.Restaurant, error) {

	key := cache.RestaurantKey(id)

	if b, ok, err := uc.cache.Get(ctx, key); err == nil && ok {
		var rest models.Restaurant
		if json.Unmarshal(b, &rest) == nil {
			return &rest, nil
		}
	}

	rest, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(rest); err == nil {
		_ = uc.cache.Set(ctx, key, b, uc.ttl)
	}

	return rest, nil
}
