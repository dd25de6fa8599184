package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `gorm:"not null;default:customer" json:"role"`

	// set only for demo-seeded users; references the ML dataset identity
	ExternalID *int64 `gorm:"uniqueIndex" json:"externalId,omitempty"`

	// Relations — preload only when needed
	Orders           []Order           `json:"-"`
	Carts            []Cart            `json:"-"`
	PredictedBaskets []PredictedBasket `json:"-"`
	Favorites        []Favorite        `json:"-"`
	Preference       *UserPreference   `gorm:"foreignKey:UserID" json:"-"`
}
