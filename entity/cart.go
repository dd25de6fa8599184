package entity

import (
	"gorm.io/gorm"
)

const (
	CartStatusActive    = "active"
	CartStatusConverted = "converted"
)

type Cart struct {
	gorm.Model
	UserID uint   `gorm:"index" json:"userId"`
	User   User   `json:"-"`
	Status string `gorm:"not null;default:active" json:"status"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
