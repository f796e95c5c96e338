package schedule

import (
	"context"

	"github.com/tavola/restaurant-hours/internal/models"
)

type Repository interface {
	GetRestaurantWithSchedules(ctx context.Context, restaurantID string) (*models.Restaurant, error)

	// CreateBatch inserts the whole week as a single unit.
	CreateBatch(ctx context.Context, rows []models.Schedule) error

	ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Schedule, error)

	GetByIDs(ctx context.Context, ids []string) ([]models.Schedule, error)

	// UpdateTimes rewrites the four time columns of each row, by id, in
	// one transaction.
	UpdateTimes(ctx context.Context, rows []models.Schedule) error

	// ClearTimes nulls the four time columns of the given rows in one
	// transaction, leaving the weekday slots in place, and returns the
	// updated rows.
	ClearTimes(ctx context.Context, ids []string) ([]models.Schedule, error)
}
