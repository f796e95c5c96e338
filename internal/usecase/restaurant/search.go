package restaurant

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tavola/restaurant-hours/internal/cache"
	domain "github.com/tavola/restaurant-hours/internal/domain/restaurant"
	"github.com/tavola/restaurant-hours/internal/dto"
)

type SearchOutput struct {
	Data       []dto.RestaurantSearchDTO `json:"data"`
	Pagination dto.Pagination            `json:"pagination"`
}

type SearchRestaurants struct {
	repo  domain.Repository
	cache cache.Cache
	ttl   time.Duration
}

func NewSearchRestaurants(
	repo domain.Repository,
	c cache.Cache,
	ttl time.Duration,
) *SearchRestaurants {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return &SearchRestaurants{repo: repo, cache: c, ttl: ttl}
}

func (uc *SearchRestaurants) Execute(
	ctx context.Context,
	term string,
	page, limit int,
) (*SearchOutput, error) {

	key := cache.SearchKey(term)

	if b, ok, err := uc.cache.Get(ctx, key); err == nil && ok {
		var out SearchOutput
		if json.Unmarshal(b, &out) == nil {
			return &out, nil
		}
	}

	restaurants, total, err := uc.repo.Search(ctx, term, page, limit)
	if err != nil {
		return nil, err
	}

	pagination, err := paginate(total, page, limit)
	if err != nil {
		return nil, err
	}

	results := make([]dto.RestaurantSearchDTO, len(restaurants))
	for i, r := range restaurants {
		results[i] = dto.RestaurantSearchDTO{
			ID:        r.ID,
			TradeName: r.TradeName,
			LegalName: r.LegalName,
		}
	}

	out := &SearchOutput{Data: results, Pagination: pagination}

	if b, err := json.Marshal(out); err == nil {
		_ = uc.cache.Set(ctx, key, b, uc.ttl)
	}

	return out, nil
}
