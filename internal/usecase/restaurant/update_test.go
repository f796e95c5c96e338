package restaurant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavola/restaurant-hours/internal/audit"
	"github.com/tavola/restaurant-hours/internal/cache"
	"github.com/tavola/restaurant-hours/internal/httperr"
	"github.com/tavola/restaurant-hours/internal/models"
)

func strp(s string) *string { return &s }

func TestUpdateRestaurantAppliesOnlySentFields(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo(seedRestaurant("rest-00", "12345678000190"))
	uc := NewUpdateRestaurant(repo, cache.NewMemory(), audit.NewDispatcher(nil))

	rest, err := uc.Execute(ctx, "rest-00", UpdateRestaurantInput{
		TradeName: strp("Nova Cantina"),
		Category:  strp("PIZZERIA"),
		Address: &UpdateAddressInput{
			Number: strp("200"),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Nova Cantina", rest.TradeName)
	assert.Equal(t, models.CategoryPizzeria, rest.Category)
	assert.Equal(t, "Cantina da Praca LTDA", rest.LegalName, "untouched fields survive")
	assert.Equal(t, "12345678000190", rest.CNPJ)
	require.NotNil(t, rest.Address)
	assert.Equal(t, "200", rest.Address.Number)
	assert.Equal(t, "Rua das Flores", rest.Address.Street)

	stored, err := repo.GetByID(ctx, "rest-00")
	require.NoError(t, err)
	assert.Equal(t, "Nova Cantina", stored.TradeName)
}

func TestUpdateRestaurantInvalidatesCachedEntry(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo(seedRestaurant("rest-00", "12345678000190"))
	store := cache.NewMemory()
	uc := NewUpdateRestaurant(repo, store, audit.NewDispatcher(nil))

	require.NoError(t, store.Set(ctx, cache.RestaurantKey("rest-00"), []byte("r"), 0))
	require.NoError(t, store.Set(ctx, cache.ListKey(1, 10, false, false), []byte("p1"), 0))
	require.NoError(t, store.Set(ctx, cache.SearchKey("cantina"), []byte("hits"), 0))

	_, err := uc.Execute(ctx, "rest-00", UpdateRestaurantInput{Phone: strp("11912345678")})
	require.NoError(t, err)

	for _, key := range []string{
		cache.RestaurantKey("rest-00"),
		cache.ListKey(1, 10, false, false),
		cache.SearchKey("cantina"),
	} {
		has, _ := store.Has(ctx, key)
		assert.False(t, has, key)
	}
}

func TestUpdateRestaurantNotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateRestaurant(repo, cache.NewMemory(), audit.NewDispatcher(nil))

	_, err := uc.Execute(context.Background(), "no-such-id", UpdateRestaurantInput{
		TradeName: strp("Nova Cantina"),
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeRestaurantNotFound))
}
