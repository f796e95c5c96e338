package restaurant

import (
	"context"

	"github.com/tavola/restaurant-hours/internal/audit"
	"github.com/tavola/restaurant-hours/internal/cache"
	domain "github.com/tavola/restaurant-hours/internal/domain/restaurant"
	"github.com/tavola/restaurant-hours/internal/httperr"
	"github.com/tavola/restaurant-hours/internal/models"
)

type AddressInput struct {
	Street     string
	Number     string
	Complement string
	District   string
	City       string
	State      string
	ZipCode    string
}

type CreateRestaurantInput struct {
	TradeName string
	LegalName string
	CNPJ      string
	Phone     string
	Email     string
	Category  string
	Address   AddressInput
}

type CreateRestaurant struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewCreateRestaurant(
	repo domain.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
) *CreateRestaurant {
	return &CreateRestaurant{repo: repo, cache: c, audit: audit}
}

func (uc *CreateRestaurant) Execute(
	ctx context.Context,
	in CreateRestaurantInput,
) (*models.Restaurant, error) {

	exists, err := uc.repo.ExistsByCNPJ(ctx, in.CNPJ)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness(httperr.CodeAlreadyRegistered)
	}

	rest := &models.Restaurant{
		TradeName: in.TradeName,
		LegalName: in.LegalName,
		CNPJ:      in.CNPJ,
		Category:  models.RestaurantCategory(in.Category),
		Phone:     in.Phone,
		Email:     in.Email,
		Address: &models.Address{
			Street:     in.Address.Street,
			Number:     in.Address.Number,
			Complement: in.Address.Complement,
			District:   in.Address.District,
			City:       in.Address.City,
			State:      in.Address.State,
			ZipCode:    in.Address.ZipCode,
		},
	}

	if err := uc.repo.Create(ctx, rest); err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, uc.cache, cache.RestaurantKey(rest.ID))

	uc.audit.Dispatch(audit.Event{
		Action:   "restaurant_created",
		Entity:   "restaurant",
		EntityID: rest.ID,
	})

	return rest, nil
}
