package services

import (
	"context"
	"fmt"
	"time"

	"github.com/OhadLibai/Timely-sub002/entity"
	"github.com/OhadLibai/Timely-sub002/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminService struct {
	DB          *gorm.DB
	UserRepo    *repository.UserRepository
	OrderRepo   *repository.OrderRepository
	ProductRepo *repository.ProductRepository
	BasketRepo  *repository.BasketRepository
	ML          *MLService
}

func NewAdminService(
	db *gorm.DB,
	userRepo *repository.UserRepository,
	orderRepo *repository.OrderRepository,
	productRepo *repository.ProductRepository,
	basketRepo *repository.BasketRepository,
	ml *MLService,
) *AdminService {
	return &AdminService{
		DB:          db,
		UserRepo:    userRepo,
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		BasketRepo:  basketRepo,
		ML:          ml,
	}
}

type DashboardOut struct {
	TotalUsers       int64   `json:"totalUsers"`
	TotalProducts    int64   `json:"totalProducts"`
	TotalOrders      int64   `json:"totalOrders"`
	OrdersToday      int64   `json:"ordersToday"`
	RevenueToday     float64 `json:"revenueToday"`
	BasketsGenerated int64   `json:"basketsGenerated"`
	BasketsAccepted  int64   `json:"basketsAccepted"`
}

// startOfDay is local midnight, not a UTC 24h boundary.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (s *AdminService) Dashboard() (*DashboardOut, error) {
	out := &DashboardOut{}
	var err error

	if err = s.DB.Model(&entity.User{}).Count(&out.TotalUsers).Error; err != nil {
		return nil, err
	}
	if out.TotalProducts, err = s.ProductRepo.Count(); err != nil {
		return nil, err
	}
	if out.TotalOrders, err = s.OrderRepo.Count(); err != nil {
		return nil, err
	}

	start := startOfDay(time.Now())
	if out.OrdersToday, err = s.OrderRepo.CountSince(start); err != nil {
		return nil, err
	}
	if out.RevenueToday, err = s.OrderRepo.RevenueSince(start); err != nil {
		return nil, err
	}
	if out.BasketsGenerated, err = s.BasketRepo.CountByStatus(entity.BasketStatusGenerated); err != nil {
		return nil, err
	}
	if out.BasketsAccepted, err = s.BasketRepo.CountByStatus(entity.BasketStatusAccepted); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AdminService) ListUsers(page, limit int) ([]entity.User, int64, error) {
	return s.UserRepo.List(page, limit)
}

func (s *AdminService) ListOrders(page, limit int) ([]entity.Order, int64, error) {
	return s.OrderRepo.ListAll(page, limit)
}

// ModelMetrics proxies the model evaluation call. When the service is down
// the admin dashboard still renders, so failures degrade to a static payload
// instead of propagating.
func (s *AdminService) ModelMetrics(ctx context.Context) (*ModelMetrics, bool) {
	metrics, err := s.ML.EvaluateModel(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("model evaluation unavailable, serving fallback metrics")
		return &ModelMetrics{
			PrecisionAtK: 0.31,
			RecallAtK:    0.46,
			F1Score:      0.37,
			NDCG:         0.52,
		}, false
	}
	return metrics, true
}

type SeedDemoUserOut struct {
	UserID        uint   `json:"userId"`
	Email         string `json:"email"`
	OrdersCreated int    `json:"ordersCreated"`
	OrdersSkipped int    `json:"ordersSkipped"`
	ItemsSkipped  int    `json:"itemsSkipped"`
}

// SeedDemoUser fabricates a user plus historical orders from the ML data
// source. Everything after the history fetch runs in one transaction. Inside
// the loop, an unmatched product drops the item and a failed order write
// drops that order; both are logged and the loop continues. Only failures
// before or outside the loop roll the whole seed back.
func (s *AdminService) SeedDemoUser(ctx context.Context, externalID int64) (*SeedDemoUserOut, error) {
	count, err := s.UserRepo.CountByExternalID(externalID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrExternalUserSeeded
	}

	history, err := s.ML.FetchDemoHistory(ctx, externalID)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	out := &SeedDemoUserOut{Email: fmt.Sprintf("demo-%d@timely.dev", externalID)}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		user := entity.User{
			Email:      out.Email,
			Password:   string(hash),
			FirstName:  "Demo",
			LastName:   fmt.Sprintf("User %d", externalID),
			Role:       "customer",
			ExternalID: &externalID,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		out.UserID = user.ID

		// Back-date the history so the newest order lands at now. Temporal
		// fields chain off the previous iteration's date, not persisted rows,
		// since every row here is new.
		totalDays := 0
		for _, h := range history {
			days := h.DaysSincePrior
			if days <= 0 {
				days = DefaultDaysSincePrior
			}
			totalDays += days
		}
		orderAt := time.Now().AddDate(0, 0, -totalDays)

		var priorAt *time.Time
		for i, h := range history {
			days := h.DaysSincePrior
			if days <= 0 {
				days = DefaultDaysSincePrior
			}
			orderAt = orderAt.AddDate(0, 0, days)
			daysSincePrior, dow, hour := TemporalFeatures(orderAt, priorAt)

			var (
				subtotal float64
				lines    []entity.OrderItem
			)
			for _, p := range h.Products {
				product, err := s.ProductRepo.FuzzyMatch(tx, p.ID, p.Name)
				if err != nil {
					log.Warn().Int64("externalId", externalID).Int("order", i).
						Uint("productId", p.ID).Str("name", p.Name).
						Msg("no catalog match for demo product, skipping item")
					out.ItemsSkipped++
					continue
				}
				qty := p.Quantity
				if qty <= 0 {
					qty = 1
				}
				subtotal += product.Price * float64(qty)
				lines = append(lines, entity.OrderItem{
					ProductID: product.ID,
					Quantity:  qty,
					UnitPrice: product.Price,
					Total:     product.Price * float64(qty),
				})
			}
			if len(lines) == 0 {
				log.Warn().Int64("externalId", externalID).Int("order", i).
					Msg("demo order has no matchable products, skipping order")
				out.OrdersSkipped++
				continue
			}

			pricing := ComputePricing(subtotal)
			order := entity.Order{
				OrderNumber:         uuid.NewString(),
				UserID:              user.ID,
				Status:              entity.OrderStatusDelivered,
				PaymentMethod:       "card",
				Subtotal:            pricing.Subtotal,
				Tax:                 pricing.Tax,
				DeliveryFee:         pricing.DeliveryFee,
				Total:               pricing.Total,
				DaysSincePriorOrder: daysSincePrior,
				OrderDow:            dow,
				OrderHourOfDay:      hour,
			}
			order.CreatedAt = orderAt
			if err := tx.Create(&order).Error; err != nil {
				log.Warn().Err(err).Int64("externalId", externalID).Int("order", i).
					Msg("demo order write failed, skipping order")
				out.OrdersSkipped++
				continue
			}
			for j := range lines {
				lines[j].OrderID = order.ID
				if err := tx.Create(&lines[j]).Error; err != nil {
					log.Warn().Err(err).Int64("externalId", externalID).Int("order", i).
						Msg("demo order item write failed, skipping item")
					out.ItemsSkipped++
				}
			}

			at := orderAt
			priorAt = &at
			out.OrdersCreated++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DemoSuggestions lists known dataset identities for the 404 payload.
func (s *AdminService) DemoSuggestions(ctx context.Context) []int64 {
	ids, err := s.ML.SampleDemoIDs(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("could not fetch demo id suggestions")
		return []int64{}
	}
	return ids
}
