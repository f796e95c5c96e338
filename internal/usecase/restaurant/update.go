package restaurant

import (
	"context"

	"github.com/tavola/restaurant-hours/internal/audit"
	"github.com/tavola/restaurant-hours/internal/cache"
	domain "github.com/tavola/restaurant-hours/internal/domain/restaurant"
	"github.com/tavola/restaurant-hours/internal/models"
)

// Every field is optional; only what the caller sent gets applied.
type UpdateAddressInput struct {
	Street     *string
	Number     *string
	Complement *string
	District   *string
	City       *string
	State      *string
	ZipCode    *string
}

type UpdateRestaurantInput struct {
	TradeName *string
	LegalName *string
	CNPJ      *string
	Phone     *string
	Email     *string
	Category  *string
	Address   *UpdateAddressInput
}

type UpdateRestaurant struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewUpdateRestaurant(
	repo domain.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
) *UpdateRestaurant {
	return &UpdateRestaurant{repo: repo, cache: c, audit: audit}
}

func (uc *UpdateRestaurant) Execute(
	ctx context.Context,
	id string,
	in UpdateRestaurantInput,
) (*models.Restaurant, error) {

	rest, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&rest.TradeName, in.TradeName)
	applyString(&rest.LegalName, in.LegalName)
	applyString(&rest.CNPJ, in.CNPJ)
	applyString(&rest.Phone, in.Phone)
	applyString(&rest.Email, in.Email)
	if in.Category != nil {
		rest.Category = models.RestaurantCategory(*in.Category)
	}

	if in.Address != nil && rest.Address != nil {
		applyString(&rest.Address.Street, in.Address.Street)
		applyString(&rest.Address.Number, in.Address.Number)
		applyString(&rest.Address.Complement, in.Address.Complement)
		applyString(&rest.Address.District, in.Address.District)
		applyString(&rest.Address.City, in.Address.City)
		applyString(&rest.Address.State, in.Address.State)
		applyString(&rest.Address.ZipCode, in.Address.ZipCode)
	}

	// Schedules are managed by their own operations; keep them out of
	// the save unit.
	schedules := rest.Schedules
	rest.Schedules = nil

	if err := uc.repo.Update(ctx, rest); err != nil {
		return nil, err
	}
	rest.Schedules = schedules

	cache.Invalidate(ctx, uc.cache, cache.RestaurantKey(rest.ID))

	uc.audit.Dispatch(audit.Event{
		Action:   "restaurant_updated",
		Entity:   "restaurant",
		EntityID: rest.ID,
	})

	return rest, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
