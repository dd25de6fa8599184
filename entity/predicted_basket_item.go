package entity

import (
	"gorm.io/gorm"
)

type PredictedBasketItem struct {
	gorm.Model
	BasketID uint            `json:"basketId"`
	Basket   PredictedBasket `gorm:"foreignKey:BasketID" json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"product"`

	Quantity        int     `gorm:"default:1" json:"quantity"`
	ConfidenceScore float64 `json:"confidenceScore"`
	IsAccepted      bool    `json:"isAccepted"`
}
