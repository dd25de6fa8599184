package entity

import (
	"gorm.io/gorm"
)

const (
	OrderStatusPlaced    = "placed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	gorm.Model
	OrderNumber string `gorm:"uniqueIndex;not null" json:"orderNumber"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"` // preload only for admin detail

	Status        string  `gorm:"not null;default:placed" json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	DeliveryFee   float64 `json:"deliveryFee"`
	Total         float64 `json:"total"`

	// Model features, computed once at creation and never recomputed.
	DaysSincePriorOrder int `json:"daysSincePriorOrder"`
	OrderDow            int `json:"orderDow"`
	OrderHourOfDay      int `json:"orderHourOfDay"`

	Items    []OrderItem `json:"-"` // preload on detail
	Delivery *Delivery   `gorm:"foreignKey:OrderID" json:"-"`
}
