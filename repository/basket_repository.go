package repository

import (
	"errors"

	"github.com/OhadLibai/Timely-sub002/entity"
	"gorm.io/gorm"
)

type BasketRepository struct{ DB *gorm.DB }

func NewBasketRepository(db *gorm.DB) *BasketRepository { return &BasketRepository{DB: db} }

func (r *BasketRepository) Create(tx *gorm.DB, b *entity.PredictedBasket) error {
	return tx.Create(b).Error
}

// LatestGenerated returns the user's newest still-reviewable basket, or nil.
func (r *BasketRepository) LatestGenerated(userID uint) (*entity.PredictedBasket, error) {
	var b entity.PredictedBasket
	err := r.DB.Where("user_id = ? AND status = ?", userID, entity.BasketStatusGenerated).
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BasketRepository) GetForUser(userID, basketID uint) (*entity.PredictedBasket, error) {
	var b entity.PredictedBasket
	err := r.DB.Where("id = ? AND user_id = ?", basketID, userID).
		Preload("Items").
		Preload("Items.Product").
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetItemForUser loads a basket item only when its basket belongs to the user.
func (r *BasketRepository) GetItemForUser(userID, itemID uint) (*entity.PredictedBasketItem, error) {
	var item entity.PredictedBasketItem
	err := r.DB.
		Joins("JOIN predicted_baskets ON predicted_baskets.id = predicted_basket_items.basket_id").
		Where("predicted_basket_items.id = ? AND predicted_baskets.user_id = ?", itemID, userID).
		Preload("Basket").
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *BasketRepository) SetItemAccepted(itemID uint, accepted bool) error {
	return r.DB.Model(&entity.PredictedBasketItem{}).Where("id = ?", itemID).
		Update("is_accepted", accepted).Error
}

func (r *BasketRepository) UpdateBasket(tx *gorm.DB, basketID uint, updates map[string]any) error {
	return tx.Model(&entity.PredictedBasket{}).Where("id = ?", basketID).Updates(updates).Error
}

func (r *BasketRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.PredictedBasket{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
