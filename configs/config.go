package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port            string
	DBDriver        string
	DBSource        string
	JWTSecret       string
	JWTTTL          time.Duration
	MLServiceURL    string
	MLTimeout       time.Duration
	RateLimitMax    int
	RateLimitWindow time.Duration
	FrontendOrigin  string
	AdminEmail      string
	AdminPassword   string
	AutoBasket      bool
	LogLevel        string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}

	cfg := &Config{
		Port:            getEnv("PORT", "5000"),
		DBDriver:        getEnv("DB_DRIVER", "postgres"),
		DBSource:        getEnv("DB_SOURCE", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		JWTTTL:          time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		MLServiceURL:    getEnv("ML_SERVICE_URL", "http://localhost:8000"),
		MLTimeout:       time.Duration(getEnvInt("ML_TIMEOUT_SECONDS", 10)) * time.Second,
		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow: time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		FrontendOrigin:  getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
		AdminEmail:      getEnv("ADMIN_EMAIL", ""),
		AdminPassword:   getEnv("ADMIN_PASSWORD", ""),
		AutoBasket:      getEnvBool("AUTO_BASKET_ENABLED", false),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}
	if cfg.DBDriver == "postgres" && cfg.DBSource == "" {
		log.Fatal().Msg("DB_SOURCE is required when DB_DRIVER=postgres")
	}
	if cfg.DBDriver == "sqlite" && cfg.DBSource == "" {
		cfg.DBSource = "timely.db"
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Warn().Str("key", key).Str("value", v).Msg("invalid integer env value, using default")
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
