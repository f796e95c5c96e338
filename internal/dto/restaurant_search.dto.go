package dto

type RestaurantSearchDTO struct {
	ID        string `json:"id"`
	TradeName string `json:"trade_name"`
	LegalName string `json:"legal_name"`
}
