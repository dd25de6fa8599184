package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string  `gorm:"index;not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Unit        string  `json:"unit"` // e.g. "each", "lb", "oz"
	// plain bools, no column default: gorm drops zero values on insert,
	// so a default would make false unstorable
	IsActive bool `json:"isActive"`
	InStock  bool `json:"inStock"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload on detail only

	OrderItems []OrderItem `json:"-"`
	CartItems  []CartItem  `json:"-"`
}
