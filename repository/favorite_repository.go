package repository

import (
	"errors"

	"github.com/OhadLibai/Timely-sub002/entity"
	"gorm.io/gorm"
)

type FavoriteRepository struct{ DB *gorm.DB }

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

func (r *FavoriteRepository) List(userID uint) ([]entity.Favorite, error) {
	var favorites []entity.Favorite
	err := r.DB.Where("user_id = ?", userID).
		Preload("Product").
		Order("id DESC").
		Find(&favorites).Error
	return favorites, err
}

func (r *FavoriteRepository) Add(userID, productID uint) (*entity.Favorite, error) {
	f := entity.Favorite{UserID: userID, ProductID: productID}
	err := r.DB.Where(entity.Favorite{UserID: userID, ProductID: productID}).
		FirstOrCreate(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FavoriteRepository) Remove(userID, productID uint) error {
	res := r.DB.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&entity.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("favorite not found")
	}
	return nil
}
