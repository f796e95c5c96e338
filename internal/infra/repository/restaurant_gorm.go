package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/tavola/restaurant-hours/internal/domain/restaurant"
	"github.com/tavola/restaurant-hours/internal/httperr"
	"github.com/tavola/restaurant-hours/internal/models"
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

type RestaurantGormRepository struct {
	db *gorm.DB
}

func NewRestaurantGormRepository(db *gorm.DB) *RestaurantGormRepository {
	return &RestaurantGormRepository{db: db}
}

var _ domain.Repository = (*RestaurantGormRepository)(nil)

func (r *RestaurantGormRepository) Create(
	ctx context.Context,
	rest *models.Restaurant,
) error {
	err := r.db.WithContext(ctx).Create(rest).Error
	if isUniqueViolation(err) {
		return httperr.ErrBusiness(httperr.CodeAlreadyRegistered)
	}
	return err
}

func (r *RestaurantGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Restaurant, error) {

	var rest models.Restaurant
	err := r.db.WithContext(ctx).
		Preload("Address").
		Preload("Schedules", func(db *gorm.DB) *gorm.DB {
			return db.Order("weekday ASC")
		}).
		First(&rest, "id = ?", id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness(httperr.CodeRestaurantNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantGormRepository) ExistsByCNPJ(
	ctx context.Context,
	cnpj string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Restaurant{}).
		Where("cnpj = ?", cnpj).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *RestaurantGormRepository) List(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Restaurant, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Restaurant{})
	if f.WithAddress {
		q = q.Preload("Address")
	}
	if f.WithSchedules {
		q = q.Preload("Schedules", func(db *gorm.DB) *gorm.DB {
			return db.Order("weekday ASC")
		})
	}

	var restaurants []models.Restaurant
	if err := q.
		Offset(f.Offset()).
		Limit(f.Limit).
		Order("created_at ASC").
		Find(&restaurants).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Restaurant{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	return restaurants, total, nil
}

func (r *RestaurantGormRepository) Search(
	ctx context.Context,
	term string,
	page, limit int,
) ([]models.Restaurant, int64, error) {

	pattern := "%" + term + "%"
	where := r.db.WithContext(ctx).
		Model(&models.Restaurant{}).
		Where("trade_name ILIKE ? OR legal_name ILIKE ?", pattern, pattern)

	var restaurants []models.Restaurant
	if err := where.Session(&gorm.Session{}).
		Select("id", "trade_name", "legal_name").
		Offset((page - 1) * limit).
		Limit(limit).
		Order("trade_name ASC").
		Find(&restaurants).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := where.Session(&gorm.Session{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	return restaurants, total, nil
}

func (r *RestaurantGormRepository) Update(
	ctx context.Context,
	rest *models.Restaurant,
) error {
	err := r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(rest).Error
	if isUniqueViolation(err) {
		return httperr.ErrBusiness(httperr.CodeAlreadyRegistered)
	}
	return err
}

func (r *RestaurantGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("restaurant_id = ?", id).
			Delete(&models.Schedule{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", id).
			Delete(&models.Address{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Restaurant{}, "id = ?", id).Error
	})
}
