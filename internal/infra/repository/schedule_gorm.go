package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/tavola/restaurant-hours/internal/domain/schedule"
	"github.com/tavola/restaurant-hours/internal/httperr"
	"github.com/tavola/restaurant-hours/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

var _ domain.Repository = (*ScheduleGormRepository)(nil)

func (r *ScheduleGormRepository) GetRestaurantWithSchedules(
	ctx context.Context,
	restaurantID string,
) (*models.Restaurant, error) {

	var rest models.Restaurant
	err := r.db.WithContext(ctx).
		Preload("Schedules", func(db *gorm.DB) *gorm.DB {
			return db.Order("weekday ASC")
		}).
		First(&rest, "id = ?", restaurantID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness(httperr.CodeRestaurantNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *ScheduleGormRepository) CreateBatch(
	ctx context.Context,
	rows []models.Schedule,
) error {
	err := r.db.WithContext(ctx).Create(&rows).Error

	// The (restaurant_id, weekday) unique index closes the race between
	// two batches that both passed the zero-schedules pre-check.
	if isUniqueViolation(err) {
		return httperr.ErrBusiness(httperr.CodeAlreadyScheduled)
	}
	return err
}

func (r *ScheduleGormRepository) ListByRestaurant(
	ctx context.Context,
	restaurantID string,
) ([]models.Schedule, error) {

	var rows []models.Schedule
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("weekday ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ScheduleGormRepository) GetByIDs(
	ctx context.Context,
	ids []string,
) ([]models.Schedule, error) {

	var rows []models.Schedule
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

var timeColumns = []string{
	"opening_time", "closing_time", "opening_time2", "closing_time2",
}

func (r *ScheduleGormRepository) UpdateTimes(
	ctx context.Context,
	rows []models.Schedule,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			res := tx.Model(&models.Schedule{}).
				Where("id = ?", rows[i].ID).
				Select(timeColumns).
				Updates(&rows[i])
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return httperr.ErrBusiness(httperr.CodeScheduleNotFound)
			}
		}
		return nil
	})
}

func (r *ScheduleGormRepository) ClearTimes(
	ctx context.Context,
	ids []string,
) ([]models.Schedule, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Schedule{}).
			Where("id IN ?", ids).
			Updates(map[string]any{
				"opening_time":  nil,
				"closing_time":  nil,
				"opening_time2": nil,
				"closing_time2": nil,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetByIDs(ctx, ids)
}
