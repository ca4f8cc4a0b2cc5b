package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// DatabaseURL selects the ledger backend: empty runs the in-memory
	// ledger, a postgres URL runs the persistent one.
	DatabaseURL string

	// Redis availability cache; empty RedisAddr disables caching.
	RedisAddr            string
	RedisPassword        string
	RedisDB              int
	AvailabilityCacheTTL time.Duration

	// RateLimit is an ulule/limiter formatted rate, e.g. "120-M".
	RateLimit string

	// SeedDemoBookings pre-books the first place of the first three days
	// for the first fixture user, mirroring the demo dataset.
	SeedDemoBookings bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("AVAILABILITY_CACHE_TTL", "30s")
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("SEED_DEMO_BOOKINGS", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("PGSQL_URL not set, running with the in-memory ledger.")
	}

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")

	ttlStr := viper.GetString("AVAILABILITY_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = 30 * time.Second
		log.Printf("Warning: Invalid value for AVAILABILITY_CACHE_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl)
	}
	cfg.AvailabilityCacheTTL = ttl

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.SeedDemoBookings = viper.GetBool("SEED_DEMO_BOOKINGS")

	return cfg, nil
}
