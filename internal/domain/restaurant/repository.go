package restaurant

import (
	"context"

	"github.com/tavola/restaurant-hours/internal/models"
)

// ListFilter carries pagination (1-based pages) and the optional
// association preloads for the listing endpoint.
type ListFilter struct {
	Page          int
	Limit         int
	WithAddress   bool
	WithSchedules bool
}

func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type Repository interface {
	Create(ctx context.Context, r *models.Restaurant) error

	GetByID(ctx context.Context, id string) (*models.Restaurant, error)

	ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error)

	List(ctx context.Context, f ListFilter) ([]models.Restaurant, int64, error)

	Search(ctx context.Context, term string, page, limit int) ([]models.Restaurant, int64, error)

	// Update persists the restaurant and its address in one unit.
	Update(ctx context.Context, r *models.Restaurant) error

	// Delete removes the restaurant, its address and its schedules in
	// one transaction.
	Delete(ctx context.Context, id string) error
}
