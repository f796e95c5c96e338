package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Schedule holds the opening windows for one weekday of one restaurant.
// Times are wall-clock HH:MM:SS strings with no date or zone component.
// A "deleted" schedule keeps its row with all four time columns null,
// meaning closed all day.
//
// The composite unique index rejects the second of two concurrent
// create batches for the same restaurant.
type Schedule struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	RestaurantID string `gorm:"type:uuid;not null;uniqueIndex:idx_schedules_restaurant_weekday" json:"restaurant_id"`

	Weekday int `gorm:"not null;uniqueIndex:idx_schedules_restaurant_weekday" json:"weekday"`

	OpeningTime  *string `gorm:"size:8" json:"opening_time"`
	ClosingTime  *string `gorm:"size:8" json:"closing_time"`
	OpeningTime2 *string `gorm:"size:8" json:"opening_time2"`
	ClosingTime2 *string `gorm:"size:8" json:"closing_time2"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
