package repository

import (
	"errors"

	"github.com/OhadLibai/Timely-sub002/entity"
	"gorm.io/gorm"
)

type PreferenceRepository struct{ DB *gorm.DB }

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{DB: db}
}

// GetOrCreate materializes defaults on first read.
func (r *PreferenceRepository) GetOrCreate(userID uint) (*entity.UserPreference, error) {
	var p entity.UserPreference
	err := r.DB.Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = entity.UserPreference{
			UserID:             userID,
			AutoBasketEnabled:  false,
			AutoBasketDay:      0,
			AutoBasketHour:     9,
			EmailNotifications: true,
		}
		if err := r.DB.Create(&p).Error; err != nil {
			return nil, err
		}
		return &p, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PreferenceRepository) Update(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.UserPreference{}).Where("user_id = ?", userID).Updates(updates).Error
}

// ListDueAutoBasket returns preferences opted into auto-basket generation for
// the given day-of-week and hour.
func (r *PreferenceRepository) ListDueAutoBasket(day, hour int) ([]entity.UserPreference, error) {
	var prefs []entity.UserPreference
	err := r.DB.Where("auto_basket_enabled = ? AND auto_basket_day = ? AND auto_basket_hour = ?",
		true, day, hour).Find(&prefs).Error
	return prefs, err
}
