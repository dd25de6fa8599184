package services

import (
	"errors"

	"github.com/OhadLibai/Timely-sub002/entity"
	"github.com/OhadLibai/Timely-sub002/repository"
	"gorm.io/gorm"
)

type UserService struct {
	PrefRepo     *repository.PreferenceRepository
	FavoriteRepo *repository.FavoriteRepository
	ProductRepo  *repository.ProductRepository
}

func NewUserService(
	prefRepo *repository.PreferenceRepository,
	favoriteRepo *repository.FavoriteRepository,
	productRepo *repository.ProductRepository,
) *UserService {
	return &UserService{
		PrefRepo:     prefRepo,
		FavoriteRepo: favoriteRepo,
		ProductRepo:  productRepo,
	}
}

func (s *UserService) GetPreferences(userID uint) (*entity.UserPreference, error) {
	return s.PrefRepo.GetOrCreate(userID)
}

type UpdatePreferencesIn struct {
	AutoBasketEnabled  *bool `json:"autoBasketEnabled"`
	AutoBasketDay      *int  `json:"autoBasketDay" binding:"omitempty,min=0,max=6"`
	AutoBasketHour     *int  `json:"autoBasketHour" binding:"omitempty,min=0,max=23"`
	EmailNotifications *bool `json:"emailNotifications"`
}

func (s *UserService) UpdatePreferences(userID uint, in *UpdatePreferencesIn) (*entity.UserPreference, error) {
	// ensure the row exists before a partial update
	if _, err := s.PrefRepo.GetOrCreate(userID); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.AutoBasketEnabled != nil {
		updates["auto_basket_enabled"] = *in.AutoBasketEnabled
	}
	if in.AutoBasketDay != nil {
		updates["auto_basket_day"] = *in.AutoBasketDay
	}
	if in.AutoBasketHour != nil {
		updates["auto_basket_hour"] = *in.AutoBasketHour
	}
	if in.EmailNotifications != nil {
		updates["email_notifications"] = *in.EmailNotifications
	}
	if len(updates) > 0 {
		if err := s.PrefRepo.Update(userID, updates); err != nil {
			return nil, err
		}
	}
	return s.PrefRepo.GetOrCreate(userID)
}

func (s *UserService) ListFavorites(userID uint) ([]entity.Favorite, error) {
	return s.FavoriteRepo.List(userID)
}

func (s *UserService) AddFavorite(userID, productID uint) (*entity.Favorite, error) {
	if _, err := s.ProductRepo.GetActive(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.FavoriteRepo.Add(userID, productID)
}

func (s *UserService) RemoveFavorite(userID, productID uint) error {
	return s.FavoriteRepo.Remove(userID, productID)
}
