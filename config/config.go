package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	DatabaseURL string

	// JWTSecret signs bearer tokens. Loaded once at startup and
	// immutable for the life of the process.
	JWTSecret string
	TokenTTL  time.Duration

	SeedDemoData bool
}

func Load() *Config {
	ttlHours, err := strconv.Atoi(getEnv("TOKEN_TTL_HOURS", "10"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 10
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/fitness?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:    getEnv("JWT_SECRET", "your-secret-key"),
		TokenTTL:     time.Duration(ttlHours) * time.Hour,
		SeedDemoData: getEnv("SEED_DEMO_DATA", "true") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
