package services

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/OhadLibai/Timely-sub002/entity"
	"github.com/OhadLibai/Timely-sub002/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAdminService(t *testing.T, db *gorm.DB, ml *MLService) *AdminService {
	t.Helper()
	return NewAdminService(
		db,
		repository.NewUserRepository(db),
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
		repository.NewBasketRepository(db),
		ml,
	)
}

func TestSeedDemoUser(t *testing.T) {
	t.Run("unknown external id creates nothing", func(t *testing.T) {
		db := newTestDB(t)
		ml := stubML(t, func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/sample") {
				w.Write([]byte(`[7, 42, 113]`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})
		svc := newAdminService(t, db, ml)

		_, err := svc.SeedDemoUser(context.Background(), 99999)
		assert.ErrorIs(t, err, ErrExternalUserNotFound)

		var users int64
		db.Model(&entity.User{}).Count(&users)
		assert.Zero(t, users)

		assert.Equal(t, []int64{7, 42, 113}, svc.DemoSuggestions(context.Background()))
	})

	t.Run("seeds user and chained order history", func(t *testing.T) {
		db := newTestDB(t)
		banana := seedProduct(t, db, "Banana", 0.26)
		seedProduct(t, db, "Organic Whole Milk", 4.49)

		ml := stubML(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[
				{"days_since_prior":0,"products":[{"id":0,"name":"banana","quantity":3}]},
				{"days_since_prior":5,"products":[{"id":0,"name":"whole milk","quantity":1},{"id":0,"name":"dragonfruit salsa","quantity":1}]}
			]`))
		})
		svc := newAdminService(t, db, ml)

		out, err := svc.SeedDemoUser(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, 2, out.OrdersCreated)
		assert.Equal(t, 0, out.OrdersSkipped)
		assert.Equal(t, 1, out.ItemsSkipped) // dragonfruit salsa has no match

		var user entity.User
		require.NoError(t, db.Where("external_id = ?", 42).First(&user).Error)
		assert.Equal(t, "demo-42@timely.dev", user.Email)

		var orders []entity.Order
		require.NoError(t, db.Where("user_id = ?", user.ID).Order("created_at ASC").Find(&orders).Error)
		require.Len(t, orders, 2)
		// first seeded order uses the default gap, second chains off the first
		assert.Equal(t, DefaultDaysSincePrior, orders[0].DaysSincePriorOrder)
		assert.Equal(t, 5, orders[1].DaysSincePriorOrder)
		assert.True(t, orders[0].CreatedAt.Before(orders[1].CreatedAt))

		// fuzzy name match resolved "banana" to the catalog row
		var items []entity.OrderItem
		require.NoError(t, db.Where("order_id = ?", orders[0].ID).Find(&items).Error)
		require.Len(t, items, 1)
		assert.Equal(t, banana.ID, items[0].ProductID)
		assert.Equal(t, 3, items[0].Quantity)
	})

	t.Run("order with no matchable products is skipped", func(t *testing.T) {
		db := newTestDB(t)
		seedProduct(t, db, "Banana", 0.26)

		ml := stubML(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[
				{"days_since_prior":0,"products":[{"id":0,"name":"plutonium","quantity":1}]},
				{"days_since_prior":3,"products":[{"id":0,"name":"banana","quantity":1}]}
			]`))
		})
		svc := newAdminService(t, db, ml)

		out, err := svc.SeedDemoUser(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, 1, out.OrdersCreated)
		assert.Equal(t, 1, out.OrdersSkipped)
	})

	t.Run("re-seeding the same identity conflicts", func(t *testing.T) {
		db := newTestDB(t)
		seedProduct(t, db, "Banana", 0.26)

		ml := stubML(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"days_since_prior":0,"products":[{"id":0,"name":"banana","quantity":1}]}]`))
		})
		svc := newAdminService(t, db, ml)

		_, err := svc.SeedDemoUser(context.Background(), 42)
		require.NoError(t, err)

		_, err = svc.SeedDemoUser(context.Background(), 42)
		assert.ErrorIs(t, err, ErrExternalUserSeeded)
	})
}

func TestModelMetricsFallback(t *testing.T) {
	t.Run("live metrics pass through", func(t *testing.T) {
		db := newTestDB(t)
		ml := stubML(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"precision_at_k":0.4,"recall_at_k":0.5,"f1_score":0.44,"ndcg":0.6}`))
		})
		svc := newAdminService(t, db, ml)

		metrics, live := svc.ModelMetrics(context.Background())
		assert.True(t, live)
		assert.InDelta(t, 0.4, metrics.PrecisionAtK, 1e-9)
	})

	t.Run("upstream failure serves fallback", func(t *testing.T) {
		db := newTestDB(t)
		ml := stubML(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		svc := newAdminService(t, db, ml)

		metrics, live := svc.ModelMetrics(context.Background())
		assert.False(t, live)
		assert.NotZero(t, metrics.F1Score)
	})
}

func TestDashboardCounts(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "dash@example.com")
	product := seedProduct(t, db, "Banana", 0.26)

	svc := newAdminService(t, db, stubML(t, func(w http.ResponseWriter, r *http.Request) {}))

	orderSvc := NewOrderService(db, svc.OrderRepo, repository.NewCartRepository(db))
	addCartLine(t, db, user.ID, product, 2)
	_, err := orderSvc.Checkout(user.ID, &CheckoutIn{PaymentMethod: "card"})
	require.NoError(t, err)

	// an order from late yesterday, local time, must stay out of today's figures
	yesterday := entity.Order{
		OrderNumber: "yesterday",
		UserID:      user.ID,
		Status:      entity.OrderStatusDelivered,
		Total:       10,
	}
	yesterday.CreatedAt = startOfDay(time.Now()).Add(-time.Hour)
	require.NoError(t, db.Create(&yesterday).Error)

	out, err := svc.Dashboard()
	require.NoError(t, err)
	assert.EqualValues(t, 1, out.TotalUsers)
	assert.EqualValues(t, 1, out.TotalProducts)
	assert.EqualValues(t, 2, out.TotalOrders)
	assert.EqualValues(t, 1, out.OrdersToday)
	assert.Greater(t, out.RevenueToday, 0.0)
	assert.Less(t, out.RevenueToday, 10.0)
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+11", 11*3600)
	now := time.Date(2025, 3, 7, 0, 30, 0, 0, loc)

	start := startOfDay(now)
	assert.Equal(t, time.Date(2025, 3, 7, 0, 0, 0, 0, loc), start)

	// an epoch-based 24h truncation lands mid-morning of the previous
	// local day in this zone
	truncated := now.Truncate(24 * time.Hour).In(loc)
	assert.NotEqual(t, start, truncated)
	assert.Equal(t, 6, truncated.Day())
}
