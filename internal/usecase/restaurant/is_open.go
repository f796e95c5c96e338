package restaurant

import (
	"context"
	"time"

	domain "github.com/tavola/restaurant-hours/internal/domain/restaurant"
	sched "github.com/tavola/restaurant-hours/internal/domain/schedule"
)

type IsOpenRestaurant struct {
	repo domain.Repository
}

func NewIsOpenRestaurant(repo domain.Repository) *IsOpenRestaurant {
	return &IsOpenRestaurant{repo: repo}
}

func (uc *IsOpenRestaurant) Execute(
	ctx context.Context,
	id string,
	at time.Time,
) (bool, error) {

	rest, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}

	return sched.IsOpen(sched.FromModels(rest.Schedules), at)
}
