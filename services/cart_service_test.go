package services

import (
	"testing"

	"github.com/OhadLibai/Timely-sub002/entity"
	"github.com/OhadLibai/Timely-sub002/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCartService(t *testing.T, db *gorm.DB) *CartService {
	t.Helper()
	return NewCartService(db, repository.NewCartRepository(db), repository.NewProductRepository(db))
}

func TestCartAdd(t *testing.T) {
	t.Run("unknown product", func(t *testing.T) {
		db := newTestDB(t)
		user := seedUser(t, db, "cart@example.com")
		svc := newCartService(t, db)

		err := svc.Add(user.ID, &AddToCartIn{ProductID: 999, Quantity: 1})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("out of stock product", func(t *testing.T) {
		db := newTestDB(t)
		user := seedUser(t, db, "cart@example.com")
		p := &entity.Product{Name: "Empty Shelf", Price: 1.0, IsActive: true, InStock: false}
		require.NoError(t, db.Create(p).Error)

		// the false flag must survive the insert, not get swallowed by a
		// column default
		var stored entity.Product
		require.NoError(t, db.First(&stored, p.ID).Error)
		require.False(t, stored.InStock)

		svc := newCartService(t, db)
		err := svc.Add(user.ID, &AddToCartIn{ProductID: p.ID, Quantity: 1})
		assert.ErrorIs(t, err, ErrProductUnavailable)
	})

	t.Run("same product merges into one line", func(t *testing.T) {
		db := newTestDB(t)
		user := seedUser(t, db, "cart@example.com")
		milk := seedProduct(t, db, "Whole Milk", 3.99)
		svc := newCartService(t, db)

		require.NoError(t, svc.Add(user.ID, &AddToCartIn{ProductID: milk.ID, Quantity: 1}))
		require.NoError(t, svc.Add(user.ID, &AddToCartIn{ProductID: milk.ID, Quantity: 2}))

		cart, subtotal, err := svc.Get(user.ID)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 3, cart.Items[0].Quantity)
		assert.InDelta(t, 11.97, subtotal, 1e-9)
	})
}

func TestCartQuantityAndClear(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "cart@example.com")
	milk := seedProduct(t, db, "Whole Milk", 3.99)
	bread := seedProduct(t, db, "Sourdough Bread", 4.49)
	svc := newCartService(t, db)

	require.NoError(t, svc.Add(user.ID, &AddToCartIn{ProductID: milk.ID, Quantity: 1}))
	require.NoError(t, svc.Add(user.ID, &AddToCartIn{ProductID: bread.ID, Quantity: 1}))

	cart, _, err := svc.Get(user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)

	lineFor := func(productID uint) entity.CartItem {
		for _, it := range cart.Items {
			if it.ProductID == productID {
				return it
			}
		}
		t.Fatalf("no cart line for product %d", productID)
		return entity.CartItem{}
	}

	t.Run("quantity update reprices the line", func(t *testing.T) {
		milkLine := lineFor(milk.ID)
		require.NoError(t, svc.UpdateQuantity(user.ID, milkLine.ID, 4))
		updated, subtotal, err := svc.Get(user.ID)
		require.NoError(t, err)
		for _, it := range updated.Items {
			if it.ID == milkLine.ID {
				assert.Equal(t, 4, it.Quantity)
				assert.InDelta(t, it.UnitPrice*4, it.Total, 1e-9)
			}
		}
		assert.InDelta(t, 3.99*4+4.49, subtotal, 1e-9)
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		require.NoError(t, svc.UpdateQuantity(user.ID, lineFor(bread.ID).ID, 0))
		updated, _, err := svc.Get(user.ID)
		require.NoError(t, err)
		assert.Len(t, updated.Items, 1)
	})

	t.Run("clear empties the cart", func(t *testing.T) {
		require.NoError(t, svc.Clear(user.ID))
		updated, subtotal, err := svc.Get(user.ID)
		require.NoError(t, err)
		assert.Empty(t, updated.Items)
		assert.Zero(t, subtotal)
	})
}

func TestCartItemOwnership(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	milk := seedProduct(t, db, "Whole Milk", 3.99)
	svc := newCartService(t, db)

	require.NoError(t, svc.Add(owner.ID, &AddToCartIn{ProductID: milk.ID, Quantity: 1}))
	cart, _, err := svc.Get(owner.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	itemID := cart.Items[0].ID

	t.Run("nonexistent item id", func(t *testing.T) {
		assert.ErrorIs(t, svc.UpdateQuantity(owner.ID, 9999, 2), ErrNotFound)
		assert.ErrorIs(t, svc.RemoveItem(owner.ID, 9999), ErrNotFound)
	})

	t.Run("another user's item id", func(t *testing.T) {
		assert.ErrorIs(t, svc.UpdateQuantity(other.ID, itemID, 2), ErrNotFound)
		assert.ErrorIs(t, svc.RemoveItem(other.ID, itemID), ErrNotFound)

		// the owner's line is untouched
		cart, _, err := svc.Get(owner.ID)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 1, cart.Items[0].Quantity)
	})
}

func TestCartGetWithoutCart(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "nocart@example.com")
	svc := newCartService(t, db)

	cart, subtotal, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, subtotal)
	assert.Equal(t, entity.CartStatusActive, cart.Status)
}
