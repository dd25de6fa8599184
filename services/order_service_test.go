package services

import (
	"testing"
	"time"

	"github.com/OhadLibai/Timely-sub002/entity"
	"github.com/OhadLibai/Timely-sub002/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePricing(t *testing.T) {
	t.Run("delivery fee charged at or under threshold", func(t *testing.T) {
		p := ComputePricing(45.00)
		assert.InDelta(t, 3.9375, p.Tax, 1e-9)
		assert.InDelta(t, 5.99, p.DeliveryFee, 1e-9)
		assert.InDelta(t, 54.9275, p.Total, 1e-9)
	})

	t.Run("delivery fee waived over threshold", func(t *testing.T) {
		p := ComputePricing(60.00)
		assert.Zero(t, p.DeliveryFee)
		assert.InDelta(t, 60.00+60.00*TaxRate, p.Total, 1e-9)
	})

	t.Run("exactly at threshold still pays delivery", func(t *testing.T) {
		p := ComputePricing(50.00)
		assert.InDelta(t, 5.99, p.DeliveryFee, 1e-9)
	})

	t.Run("total is always the sum of components", func(t *testing.T) {
		for _, subtotal := range []float64{0.26, 12.34, 49.99, 50.01, 123.45} {
			p := ComputePricing(subtotal)
			assert.InDelta(t, p.Subtotal+p.Tax+p.DeliveryFee, p.Total, 1e-9)
		}
	})
}

func TestTemporalFeatures(t *testing.T) {
	now := time.Date(2025, 3, 12, 14, 30, 0, 0, time.UTC) // a Wednesday

	t.Run("first order uses default gap", func(t *testing.T) {
		days, dow, hour := TemporalFeatures(now, nil)
		assert.Equal(t, DefaultDaysSincePrior, days)
		assert.Equal(t, 3, dow)
		assert.Equal(t, 14, hour)
	})

	t.Run("gap is the integer day difference", func(t *testing.T) {
		prior := now.AddDate(0, 0, -5)
		days, _, _ := TemporalFeatures(now, &prior)
		assert.Equal(t, 5, days)
	})

	t.Run("partial days truncate", func(t *testing.T) {
		prior := now.Add(-(3*24 + 20) * time.Hour)
		days, _, _ := TemporalFeatures(now, &prior)
		assert.Equal(t, 3, days)
	})
}

func TestCheckout(t *testing.T) {
	setup := func(t *testing.T) (*OrderService, *entity.User, *entity.Product) {
		db := newTestDB(t)
		svc := NewOrderService(db, repository.NewOrderRepository(db), repository.NewCartRepository(db))
		user := seedUser(t, db, "shopper@example.com")
		product := seedProduct(t, db, "Whole Milk", 3.99)
		return svc, user, product
	}

	t.Run("empty cart is rejected", func(t *testing.T) {
		svc, user, _ := setup(t)
		_, err := svc.Checkout(user.ID, &CheckoutIn{PaymentMethod: "card"})
		assert.ErrorIs(t, err, ErrCartEmpty)
	})

	t.Run("creates order, moves items, converts cart", func(t *testing.T) {
		svc, user, product := setup(t)
		addCartLine(t, svc.DB, user.ID, product, 3)

		out, err := svc.Checkout(user.ID, &CheckoutIn{
			PaymentMethod: "card",
			Delivery:      &DeliveryIn{Address: "1 Main St", City: "Springfield"},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, out.OrderNumber)
		assert.InDelta(t, 11.97, out.Subtotal, 1e-9)
		assert.InDelta(t, out.Subtotal+out.Tax+out.DeliveryFee, out.Total, 1e-9)

		order, err := svc.Repo.GetForUser(user.ID, out.ID)
		require.NoError(t, err)
		require.Len(t, order.Items, 1)
		assert.Equal(t, 3, order.Items[0].Quantity)
		assert.Equal(t, DefaultDaysSincePrior, order.DaysSincePriorOrder)
		require.NotNil(t, order.Delivery)
		assert.Equal(t, "1 Main St", order.Delivery.Address)

		var cart entity.Cart
		require.NoError(t, svc.DB.Where("user_id = ?", user.ID).First(&cart).Error)
		assert.Equal(t, entity.CartStatusConverted, cart.Status)

		var itemCount int64
		svc.DB.Model(&entity.CartItem{}).Where("cart_id = ?", cart.ID).Count(&itemCount)
		assert.Zero(t, itemCount)
	})

	t.Run("second checkout of the same cart fails", func(t *testing.T) {
		svc, user, product := setup(t)
		addCartLine(t, svc.DB, user.ID, product, 1)

		_, err := svc.Checkout(user.ID, &CheckoutIn{PaymentMethod: "cash"})
		require.NoError(t, err)

		_, err = svc.Checkout(user.ID, &CheckoutIn{PaymentMethod: "cash"})
		assert.ErrorIs(t, err, ErrCartEmpty)
	})

	t.Run("second order computes gap from the first", func(t *testing.T) {
		svc, user, product := setup(t)

		// back-dated prior order
		prior := entity.Order{
			OrderNumber: "prior", UserID: user.ID,
			Status: entity.OrderStatusDelivered, Total: 10,
		}
		prior.CreatedAt = time.Now().AddDate(0, 0, -4)
		require.NoError(t, svc.DB.Create(&prior).Error)

		addCartLine(t, svc.DB, user.ID, product, 1)
		out, err := svc.Checkout(user.ID, &CheckoutIn{PaymentMethod: "card"})
		require.NoError(t, err)

		order, err := svc.Repo.GetForUser(user.ID, out.ID)
		require.NoError(t, err)
		assert.Equal(t, 4, order.DaysSincePriorOrder)
		assert.Equal(t, int(time.Now().Weekday()), order.OrderDow)
	})
}
