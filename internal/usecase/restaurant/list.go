package restaurant

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tavola/restaurant-hours/internal/cache"
	domain "github.com/tavola/restaurant-hours/internal/domain/restaurant"
	"github.com/tavola/restaurant-hours/internal/dto"
	"github.com/tavola/restaurant-hours/internal/models"
)

type ListOutput struct {
	Data       []models.Restaurant `json:"data"`
	Pagination dto.Pagination      `json:"pagination"`
}

type ListRestaurants struct {
	repo  domain.Repository
	cache cache.Cache
	ttl   time.Duration
}

func NewListRestaurants(
	repo domain.Repository,
	c cache.Cache,
	ttl time.Duration,
) *ListRestaurants {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return &ListRestaurants{repo: repo, cache: c, ttl: ttl}
}

func (uc *ListRestaurants) Execute(
	ctx context.Context,
	f domain.ListFilter,
) (*ListOutput, error) {

	key := cache.ListKey(f.Page, f.Limit, f.WithAddress, f.WithSchedules)

	if b, ok, err := uc.cache.Get(ctx, key); err == nil && ok {
		var out ListOutput
		if json.Unmarshal(b, &out) == nil {
			return &out, nil
		}
	}

	restaurants, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	pagination, err := paginate(total, f.Page, f.Limit)
	if err != nil {
		return nil, err
	}

	out := &ListOutput{Data: restaurants, Pagination: pagination}

	if b, err := json.Marshal(out); err == nil {
		_ = uc.cache.Set(ctx, key, b, uc.ttl)
	}

	return out, nil
}
