package entity

import (
	"gorm.io/gorm"
)

type Favorite struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_user_product" json:"userId"`

	ProductID uint    `gorm:"uniqueIndex:idx_user_product" json:"productId"`
	Product   Product `json:"product"`
}
