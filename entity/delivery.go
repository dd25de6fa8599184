package entity

import (
	"gorm.io/gorm"
)

type Delivery struct {
	gorm.Model
	OrderID uint `gorm:"uniqueIndex" json:"orderId"`

	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Status     string `gorm:"not null;default:scheduled" json:"status"`
}
