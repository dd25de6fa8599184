package services

import (
	"errors"
	"time"

	"github.com/OhadLibai/Timely-sub002/entity"
	"github.com/OhadLibai/Timely-sub002/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TaxRate          = 0.0875
	DeliveryFee      = 5.99
	FreeDeliveryOver = 50.0

	// model feature default for a user's first order
	DefaultDaysSincePrior = 7
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo}
}

type DeliveryIn struct {
	Address    string `json:"address" binding:"required"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

type CheckoutIn struct {
	PaymentMethod string      `json:"paymentMethod" binding:"required,oneof=card cash"`
	Delivery      *DeliveryIn `json:"delivery"`
}

type CheckoutOut struct {
	ID          uint    `json:"id"`
	OrderNumber string  `json:"orderNumber"`
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`
}

type Pricing struct {
	Subtotal    float64
	Tax         float64
	DeliveryFee float64
	Total       float64
}

func ComputePricing(subtotal float64) Pricing {
	p := Pricing{Subtotal: subtotal, Tax: subtotal * TaxRate}
	if subtotal > FreeDeliveryOver {
		p.DeliveryFee = 0
	} else {
		p.DeliveryFee = DeliveryFee
	}
	p.Total = p.Subtotal + p.Tax + p.DeliveryFee
	return p
}

// TemporalFeatures derives the three model inputs for an order placed at
// `now`, given the previous order's creation time (nil for a first order).
// Computed exactly once, at creation.
func TemporalFeatures(now time.Time, prior *time.Time) (daysSincePrior, dow, hour int) {
	daysSincePrior = DefaultDaysSincePrior
	if prior != nil {
		daysSincePrior = int(now.Sub(*prior).Hours() / 24)
	}
	return daysSincePrior, int(now.Weekday()), now.Hour()
}

// Checkout converts the user's active cart into an order. Order, items,
// optional delivery, cart-item deletion and the cart status flip all commit
// in one transaction, so a concurrent second checkout of the same cart finds
// it already converted and fails on the empty-cart check.
func (s *OrderService) Checkout(userID uint, in *CheckoutIn) (*CheckoutOut, error) {
	var out CheckoutOut
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var cart entity.Cart
		err := tx.Where("user_id = ? AND status = ?", userID, entity.CartStatusActive).
			Preload("Items").
			First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartEmpty
		}
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return ErrCartEmpty
		}

		var subtotal float64
		for _, it := range cart.Items {
			subtotal += it.Total
		}
		pricing := ComputePricing(subtotal)

		prior, err := s.Repo.LatestForUser(tx, userID)
		if err != nil {
			return err
		}
		var priorAt *time.Time
		if prior != nil {
			priorAt = &prior.CreatedAt
		}
		now := time.Now()
		daysSincePrior, dow, hour := TemporalFeatures(now, priorAt)

		order := entity.Order{
			OrderNumber:         uuid.NewString(),
			UserID:              userID,
			Status:              entity.OrderStatusPlaced,
			PaymentMethod:       in.PaymentMethod,
			Subtotal:            pricing.Subtotal,
			Tax:                 pricing.Tax,
			DeliveryFee:         pricing.DeliveryFee,
			Total:               pricing.Total,
			DaysSincePriorOrder: daysSincePrior,
			OrderDow:            dow,
			OrderHourOfDay:      hour,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:   order.ID,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
				Total:     it.Total,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		if in.Delivery != nil {
			d := entity.Delivery{
				OrderID:    order.ID,
				Address:    in.Delivery.Address,
				City:       in.Delivery.City,
				PostalCode: in.Delivery.PostalCode,
			}
			if err := s.Repo.CreateDelivery(tx, &d); err != nil {
				return err
			}
		}

		if err := s.CartRepo.Convert(tx, cart.ID); err != nil {
			return err
		}

		out = CheckoutOut{
			ID:          order.ID,
			OrderNumber: order.OrderNumber,
			Subtotal:    order.Subtotal,
			Tax:         order.Tax,
			DeliveryFee: order.DeliveryFee,
			Total:       order.Total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *OrderService) ListForUser(userID uint, page, limit int) ([]repository.OrderSummary, int64, error) {
	return s.Repo.ListForUser(userID, page, limit)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	return s.Repo.GetForUser(userID, orderID)
}
