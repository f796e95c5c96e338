package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Address is owned 1:1 by its restaurant. It is created, updated and
// deleted only through restaurant operations.
type Address struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	RestaurantID string `gorm:"type:uuid;uniqueIndex;not null" json:"restaurant_id"`

	Street     string `gorm:"size:255;not null" json:"street"`
	Number     string `gorm:"size:10;not null" json:"number"`
	Complement string `gorm:"size:255" json:"complement"`
	District   string `gorm:"size:255;not null" json:"district"`
	City       string `gorm:"size:255;not null" json:"city"`
	State      string `gorm:"size:2;not null" json:"state"`
	ZipCode    string `gorm:"size:8;not null" json:"zip_code"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Address) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
