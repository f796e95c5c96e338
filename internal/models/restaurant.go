package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RestaurantCategory string

const (
	CategorySnackBar   RestaurantCategory = "SNACK_BAR"
	CategoryFastFood   RestaurantCategory = "FAST_FOOD"
	CategoryPizzeria   RestaurantCategory = "PIZZERIA"
	CategoryJapanese   RestaurantCategory = "JAPANESE"
	CategoryItalian    RestaurantCategory = "ITALIAN"
	CategoryVegetarian RestaurantCategory = "VEGETARIAN"
)

type Restaurant struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	TradeName string             `gorm:"size:255;not null" json:"trade_name"`
	LegalName string             `gorm:"size:255;not null" json:"legal_name"`
	CNPJ      string             `gorm:"size:14;uniqueIndex;not null" json:"cnpj"`
	Category  RestaurantCategory `gorm:"size:20;not null" json:"category"`
	Phone     string             `gorm:"size:11" json:"phone"`
	Email     string             `gorm:"size:100" json:"email"`

	Address   *Address   `gorm:"constraint:OnDelete:CASCADE" json:"address,omitempty"`
	Schedules []Schedule `gorm:"constraint:OnDelete:CASCADE" json:"schedules,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
