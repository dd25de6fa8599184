package services

import (
	"testing"

	"github.com/OhadLibai/Timely-sub002/entity"
	"github.com/OhadLibai/Timely-sub002/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Product{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.Delivery{},
		&entity.PredictedBasket{}, &entity.PredictedBasketItem{},
		&entity.UserPreference{}, &entity.Favorite{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", FirstName: "Test", LastName: "User", Role: "customer"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) *entity.Product {
	t.Helper()
	p := &entity.Product{Name: name, Price: price, Unit: "each", IsActive: true, InStock: true}
	require.NoError(t, db.Create(p).Error)
	return p
}

func addCartLine(t *testing.T, db *gorm.DB, userID uint, p *entity.Product, qty int) {
	t.Helper()
	cartRepo := repository.NewCartRepository(db)
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		cart, err := cartRepo.GetOrCreateActiveCart(tx, userID)
		if err != nil {
			return err
		}
		return cartRepo.UpsertItem(tx, cart.ID, &entity.CartItem{
			ProductID: p.ID,
			Quantity:  qty,
			UnitPrice: p.Price,
			Total:     p.Price * float64(qty),
		})
	}))
}
