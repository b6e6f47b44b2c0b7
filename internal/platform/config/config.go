package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Event propagation settings.
	EventBufferSize      int
	EventWorkers         int
	EventDeliveryTimeout time.Duration

	// RateLimit is a limiter format string such as "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("EVENT_BUFFER_SIZE", 64)
	viper.SetDefault("EVENT_WORKERS", 4)
	viper.SetDefault("EVENT_DELIVERY_TIMEOUT", "30s")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.EventBufferSize = viper.GetInt("EVENT_BUFFER_SIZE")
	if cfg.EventBufferSize < 1 {
		cfg.EventBufferSize = 64
	}
	cfg.EventWorkers = viper.GetInt("EVENT_WORKERS")
	if cfg.EventWorkers < 1 {
		cfg.EventWorkers = 4
	}

	deliveryTimeoutStr := viper.GetString("EVENT_DELIVERY_TIMEOUT")
	deliveryTimeout, err := time.ParseDuration(deliveryTimeoutStr)
	if err != nil {
		deliveryTimeout = 30 * time.Second
		if deliveryTimeoutStr != "" {
			log.Printf("Warning: Invalid value for EVENT_DELIVERY_TIMEOUT ('%s'). Defaulting to %s.\n", deliveryTimeoutStr, deliveryTimeout)
		}
	}
	cfg.EventDeliveryTimeout = deliveryTimeout

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
