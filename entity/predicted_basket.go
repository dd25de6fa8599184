package entity

import (
	"time"

	"gorm.io/gorm"
)

// Basket lifecycle: generated -> accepted | rejected. Both end states are
// terminal; a fresh prediction always creates a new basket row.
const (
	BasketStatusGenerated = "generated"
	BasketStatusAccepted  = "accepted"
	BasketStatusRejected  = "rejected"
)

type PredictedBasket struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Status       string     `gorm:"not null;default:generated" json:"status"`
	Source       string     `json:"source"`
	Confidence   float64    `json:"confidence"`
	ModelVersion string     `json:"modelVersion"`
	AcceptedAt   *time.Time `json:"acceptedAt,omitempty"`

	Items []PredictedBasketItem `json:"items" gorm:"foreignKey:BasketID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
