package configs

import (
	"github.com/OhadLibai/Timely-sub002/entity"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

func SeedAdmin(cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Warn().Msg("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Info().Str("email", cfg.AdminEmail).Msg("admin already exists")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedCatalog inserts a starter grocery catalog so that fresh databases have
// something to browse and the demo seeder has products to match against.
func SeedCatalog() error {
	categories := []entity.Category{
		{Name: "Produce", Description: "Fresh fruits and vegetables", SortOrder: 1},
		{Name: "Dairy & Eggs", Description: "Milk, cheese, yogurt and eggs", SortOrder: 2},
		{Name: "Bakery", Description: "Bread and baked goods", SortOrder: 3},
		{Name: "Meat & Seafood", Description: "Fresh and packaged proteins", SortOrder: 4},
		{Name: "Pantry", Description: "Staples, canned goods and snacks", SortOrder: 5},
		{Name: "Beverages", Description: "Juice, soda, coffee and tea", SortOrder: 6},
		{Name: "Frozen", Description: "Frozen meals and desserts", SortOrder: 7},
	}
	for i := range categories {
		if err := db.Where(entity.Category{Name: categories[i].Name}).
			FirstOrCreate(&categories[i]).Error; err != nil {
			return err
		}
	}

	byName := make(map[string]uint, len(categories))
	for _, c := range categories {
		byName[c.Name] = c.ID
	}

	products := []entity.Product{
		{Name: "Banana", Price: 0.26, Unit: "each", CategoryID: byName["Produce"]},
		{Name: "Organic Strawberries", Price: 4.99, Unit: "lb", CategoryID: byName["Produce"]},
		{Name: "Organic Baby Spinach", Price: 3.49, Unit: "bag", CategoryID: byName["Produce"]},
		{Name: "Organic Hass Avocado", Price: 1.79, Unit: "each", CategoryID: byName["Produce"]},
		{Name: "Large Lemon", Price: 0.69, Unit: "each", CategoryID: byName["Produce"]},
		{Name: "Limes", Price: 0.49, Unit: "each", CategoryID: byName["Produce"]},
		{Name: "Cucumber Kirby", Price: 0.89, Unit: "each", CategoryID: byName["Produce"]},
		{Name: "Yellow Onions", Price: 1.29, Unit: "lb", CategoryID: byName["Produce"]},
		{Name: "Whole Milk", Price: 3.99, Unit: "gallon", CategoryID: byName["Dairy & Eggs"]},
		{Name: "Organic Reduced Fat Milk", Price: 4.49, Unit: "half gallon", CategoryID: byName["Dairy & Eggs"]},
		{Name: "Large Grade AA Eggs", Price: 4.29, Unit: "dozen", CategoryID: byName["Dairy & Eggs"]},
		{Name: "Unsalted Butter", Price: 4.99, Unit: "lb", CategoryID: byName["Dairy & Eggs"]},
		{Name: "Greek Whole Milk Yogurt", Price: 1.29, Unit: "cup", CategoryID: byName["Dairy & Eggs"]},
		{Name: "Sharp Cheddar Cheese", Price: 5.49, Unit: "8 oz", CategoryID: byName["Dairy & Eggs"]},
		{Name: "Sourdough Bread", Price: 4.49, Unit: "loaf", CategoryID: byName["Bakery"]},
		{Name: "100% Whole Wheat Bread", Price: 3.29, Unit: "loaf", CategoryID: byName["Bakery"]},
		{Name: "Plain Bagels", Price: 3.99, Unit: "6 pack", CategoryID: byName["Bakery"]},
		{Name: "Boneless Skinless Chicken Breasts", Price: 6.99, Unit: "lb", CategoryID: byName["Meat & Seafood"]},
		{Name: "Ground Beef 85/15", Price: 5.99, Unit: "lb", CategoryID: byName["Meat & Seafood"]},
		{Name: "Atlantic Salmon Fillet", Price: 12.99, Unit: "lb", CategoryID: byName["Meat & Seafood"]},
		{Name: "Extra Virgin Olive Oil", Price: 9.99, Unit: "500 ml", CategoryID: byName["Pantry"]},
		{Name: "Organic Peanut Butter", Price: 4.79, Unit: "jar", CategoryID: byName["Pantry"]},
		{Name: "Spaghetti Pasta", Price: 1.99, Unit: "lb", CategoryID: byName["Pantry"]},
		{Name: "Long Grain White Rice", Price: 3.49, Unit: "2 lb", CategoryID: byName["Pantry"]},
		{Name: "Black Beans", Price: 1.19, Unit: "can", CategoryID: byName["Pantry"]},
		{Name: "Sea Salt Tortilla Chips", Price: 3.29, Unit: "bag", CategoryID: byName["Pantry"]},
		{Name: "Sparkling Water Grapefruit", Price: 0.99, Unit: "can", CategoryID: byName["Beverages"]},
		{Name: "Orange Juice No Pulp", Price: 4.99, Unit: "52 oz", CategoryID: byName["Beverages"]},
		{Name: "Cold Brew Coffee", Price: 4.49, Unit: "bottle", CategoryID: byName["Beverages"]},
		{Name: "Frozen Blueberries", Price: 3.99, Unit: "bag", CategoryID: byName["Frozen"]},
		{Name: "Vanilla Bean Ice Cream", Price: 5.49, Unit: "pint", CategoryID: byName["Frozen"]},
		{Name: "Frozen Cheese Pizza", Price: 6.99, Unit: "each", CategoryID: byName["Frozen"]},
	}
	for i := range products {
		products[i].IsActive = true
		products[i].InStock = true
		if err := db.Where(entity.Product{Name: products[i].Name}).
			FirstOrCreate(&products[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
