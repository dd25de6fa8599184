package main

import (
	"fmt"
	"os"
	"time"

	"github.com/OhadLibai/Timely-sub002/configs"
	"github.com/OhadLibai/Timely-sub002/middlewares"
	"github.com/OhadLibai/Timely-sub002/repository"
	"github.com/OhadLibai/Timely-sub002/routes"
	"github.com/OhadLibai/Timely-sub002/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := configs.LoadConfig()

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate + seed
	configs.SetupDatabase()
	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatal().Err(err).Msg("seed admin failed")
	}
	if err := configs.SeedCatalog(); err != nil {
		log.Fatal().Err(err).Msg("seed catalog failed")
	}

	ml := services.NewMLService(cfg.MLServiceURL, cfg.MLTimeout)

	// HTTP
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.FrontendOrigin))
	r.Use(middlewares.RateLimitMiddleware(cfg.RateLimitMax, cfg.RateLimitWindow))

	routes.RegisterRoutes(r, db, cfg, ml)

	// scheduled auto-basket generation, off unless explicitly enabled
	if cfg.AutoBasket {
		prefRepo := repository.NewPreferenceRepository(db)
		predictionSvc := services.NewPredictionService(
			db,
			repository.NewBasketRepository(db),
			repository.NewCartRepository(db),
			repository.NewProductRepository(db),
			ml,
		)
		scheduler := services.NewBasketScheduler(prefRepo, predictionSvc)
		scheduler.Start()
		defer scheduler.Stop()
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Msg("server running")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
