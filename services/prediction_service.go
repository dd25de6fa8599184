package services

import (
	"context"
	"errors"
	"time"

	"github.com/OhadLibai/Timely-sub002/entity"
	"github.com/OhadLibai/Timely-sub002/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type PredictionService struct {
	DB          *gorm.DB
	BasketRepo  *repository.BasketRepository
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
	ML          *MLService
}

func NewPredictionService(
	db *gorm.DB,
	basketRepo *repository.BasketRepository,
	cartRepo *repository.CartRepository,
	productRepo *repository.ProductRepository,
	ml *MLService,
) *PredictionService {
	return &PredictionService{
		DB:          db,
		BasketRepo:  basketRepo,
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		ML:          ml,
	}
}

// Current returns the user's reviewable basket, generating one through the
// ML service when none exists. An unreachable model, an empty product list
// or IDs that match nothing in the catalog all yield (nil, nil): the caller
// gets an empty-basket payload, never an upstream error.
func (s *PredictionService) Current(ctx context.Context, userID uint) (*entity.PredictedBasket, error) {
	existing, err := s.BasketRepo.LatestGenerated(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return s.Generate(ctx, userID)
}

// Generate always asks the model for a fresh basket; a new prediction creates
// a new basket row rather than mutating any earlier one.
func (s *PredictionService) Generate(ctx context.Context, userID uint) (*entity.PredictedBasket, error) {
	pred, err := s.ML.Predict(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Uint("userId", userID).Msg("prediction unavailable, degrading to empty basket")
		return nil, nil
	}
	if len(pred.ProductIDs) == 0 {
		return nil, nil
	}

	products, err := s.ProductRepo.FindByIDs(pred.ProductIDs)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		log.Warn().Uint("userId", userID).Int("predicted", len(pred.ProductIDs)).
			Msg("predicted product ids matched nothing in catalog")
		return nil, nil
	}

	basket := entity.PredictedBasket{
		UserID:       userID,
		Status:       entity.BasketStatusGenerated,
		Source:       pred.Source,
		Confidence:   pred.Confidence,
		ModelVersion: pred.ModelVersion,
	}
	for _, p := range products {
		basket.Items = append(basket.Items, entity.PredictedBasketItem{
			ProductID:       p.ID,
			Quantity:        1,
			ConfidenceScore: pred.Confidence,
			IsAccepted:      true,
		})
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.BasketRepo.Create(tx, &basket)
	})
	if err != nil {
		return nil, err
	}

	return s.BasketRepo.GetForUser(userID, basket.ID)
}

// Accept copies the basket lines still marked accepted into the user's
// active cart and finalizes the basket. Accepting is not idempotent: a
// replayed accept on a fresh basket would duplicate cart lines, which is why
// finalized baskets are refused here.
func (s *PredictionService) Accept(userID, basketID uint) (*entity.PredictedBasket, error) {
	basket, err := s.BasketRepo.GetForUser(userID, basketID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if basket.Status != entity.BasketStatusGenerated {
		return nil, ErrBasketFinalized
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreateActiveCart(tx, userID)
		if err != nil {
			return err
		}

		for _, item := range basket.Items {
			if !item.IsAccepted {
				continue
			}
			line := &entity.CartItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.Product.Price,
				Total:     item.Product.Price * float64(item.Quantity),
			}
			if err := s.CartRepo.UpsertItem(tx, cart.ID, line); err != nil {
				return err
			}
		}

		now := time.Now()
		return s.BasketRepo.UpdateBasket(tx, basket.ID, map[string]any{
			"status":      entity.BasketStatusAccepted,
			"accepted_at": &now,
		})
	})
	if err != nil {
		return nil, err
	}

	return s.BasketRepo.GetForUser(userID, basketID)
}

// Reject finalizes the basket without touching the cart. The optional reason
// is echoed back to the caller but not persisted.
func (s *PredictionService) Reject(userID, basketID uint) (*entity.PredictedBasket, error) {
	basket, err := s.BasketRepo.GetForUser(userID, basketID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if basket.Status != entity.BasketStatusGenerated {
		return nil, ErrBasketFinalized
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.BasketRepo.UpdateBasket(tx, basket.ID, map[string]any{
			"status": entity.BasketStatusRejected,
		})
	})
	if err != nil {
		return nil, err
	}

	return s.BasketRepo.GetForUser(userID, basketID)
}

// SetItemAccepted flips a line's accept flag while the basket is still open
// for review.
func (s *PredictionService) SetItemAccepted(userID, itemID uint, accepted bool) error {
	item, err := s.BasketRepo.GetItemForUser(userID, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if item.Basket.Status != entity.BasketStatusGenerated {
		return ErrBasketFinalized
	}
	return s.BasketRepo.SetItemAccepted(itemID, accepted)
}
