package entity

import (
	"gorm.io/gorm"
)

// Created lazily on first read; defaults live in
// PreferenceRepository.GetOrCreate, not in column defaults.
type UserPreference struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`

	AutoBasketEnabled  bool `json:"autoBasketEnabled"`
	AutoBasketDay      int  `json:"autoBasketDay"` // 0 = Sunday
	AutoBasketHour     int  `json:"autoBasketHour"`
	EmailNotifications bool `json:"emailNotifications"`
}
