package services

import (
	"errors"

	"github.com/OhadLibai/Timely-sub002/entity"
	"github.com/OhadLibai/Timely-sub002/repository"
	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, pr *repository.ProductRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, ProductRepo: pr}
}

type AddToCartIn struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"min=1"`
}

func (s *CartService) Get(userID uint) (*entity.Cart, float64, error) {
	c, err := s.CartRepo.GetActiveCartWithItems(userID)
	if err != nil {
		return nil, 0, err
	}
	var subtotal float64
	for _, it := range c.Items {
		subtotal += it.Total
	}
	return c, subtotal, nil
}

func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	p, err := s.ProductRepo.GetActive(in.ProductID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if !p.InStock {
		return ErrProductUnavailable
	}

	// price snapshot on the line; catalog price changes do not reprice carts
	line := &entity.CartItem{
		ProductID: p.ID,
		Quantity:  in.Quantity,
		UnitPrice: p.Price,
		Total:     p.Price * float64(in.Quantity),
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		c, err := s.CartRepo.GetOrCreateActiveCart(tx, userID)
		if err != nil {
			return err
		}
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

func (s *CartService) UpdateQuantity(userID, itemID uint, quantity int) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQuantity(tx, userID, itemID, quantity)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
