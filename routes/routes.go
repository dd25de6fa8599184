package routes

import (
	"github.com/OhadLibai/Timely-sub002/configs"
	"github.com/OhadLibai/Timely-sub002/controllers"
	"github.com/OhadLibai/Timely-sub002/middlewares"
	"github.com/OhadLibai/Timely-sub002/repository"
	"github.com/OhadLibai/Timely-sub002/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, ml *services.MLService) {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	basketRepo := repository.NewBasketRepository(db)
	prefRepo := repository.NewPreferenceRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo, productRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo)
	predictionSvc := services.NewPredictionService(db, basketRepo, cartRepo, productRepo, ml)
	userSvc := services.NewUserService(prefRepo, favoriteRepo, productRepo)
	adminSvc := services.NewAdminService(db, userRepo, orderRepo, productRepo, basketRepo, ml)

	// Controllers
	healthCtrl := controllers.NewHealthController(db, ml)
	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(productRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	predictionCtrl := controllers.NewPredictionController(predictionSvc)
	userCtrl := controllers.NewUserController(userSvc)
	adminCtrl := controllers.NewAdminController(adminSvc)

	r.GET("/health", healthCtrl.Check)

	api := r.Group("/api")
	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")

	// Auth
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth, authCtrl.Me)
		a.PATCH("/me", auth, authCtrl.UpdateMe)
		a.PUT("/password", auth, authCtrl.ChangePassword)
	}

	// Catalog (public)
	p := api.Group("/products")
	{
		p.GET("", productCtrl.List)
		p.GET("/categories", productCtrl.Categories)
		p.GET("/:id", productCtrl.Detail)
	}

	// Cart
	cart := api.Group("/cart", auth)
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/:itemId", cartCtrl.UpdateQuantity)
		cart.DELETE("/items/:itemId", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders
	orders := api.Group("/orders", auth)
	{
		orders.POST("", orderCtrl.Checkout)
		orders.GET("", orderCtrl.ListMine)
		orders.GET("/:id", orderCtrl.Detail)
	}

	// Predicted baskets
	predictions := api.Group("/predictions", auth)
	{
		predictions.GET("/current", predictionCtrl.Current)
		predictions.POST("/:id/accept", predictionCtrl.Accept)
		predictions.POST("/:id/reject", predictionCtrl.Reject)
		predictions.PATCH("/items/:itemId", predictionCtrl.SetItemAccepted)
	}

	// Preferences & favorites
	users := api.Group("/users", auth)
	{
		users.GET("/preferences", userCtrl.GetPreferences)
		users.PUT("/preferences", userCtrl.UpdatePreferences)
		users.GET("/favorites", userCtrl.ListFavorites)
		users.POST("/favorites", userCtrl.AddFavorite)
		users.DELETE("/favorites/:productId", userCtrl.RemoveFavorite)
	}

	// Admin
	admin := api.Group("/admin", adminOnly)
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/users", adminCtrl.Users)
		admin.GET("/orders", adminCtrl.Orders)
		admin.GET("/metrics", adminCtrl.ModelMetrics)
		admin.POST("/demo-users", adminCtrl.SeedDemoUser)
	}
}
