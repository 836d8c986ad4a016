package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL           string
	Port                  string
	IsProduction          bool
	EnableDBCheck         bool
	ReferenceCurrencyCode string
	SearchTimeout         time.Duration
	SearchRateLimit       string // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins    []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("REFERENCE_CURRENCY_CODE", "MAD")
	viper.SetDefault("SEARCH_TIMEOUT", "5s")
	viper.SetDefault("SEARCH_RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.ReferenceCurrencyCode = viper.GetString("REFERENCE_CURRENCY_CODE")
	if cfg.ReferenceCurrencyCode == "" {
		cfg.ReferenceCurrencyCode = "MAD"
		log.Printf("Warning: REFERENCE_CURRENCY_CODE not set. Defaulting to %s.\n", cfg.ReferenceCurrencyCode)
	}

	searchTimeoutStr := viper.GetString("SEARCH_TIMEOUT")
	searchTimeout, err := time.ParseDuration(searchTimeoutStr)
	if err != nil {
		searchTimeout = 5 * time.Second
		if searchTimeoutStr != "" {
			log.Printf("Warning: Invalid value for SEARCH_TIMEOUT ('%s'). Defaulting to %s.\n", searchTimeoutStr, searchTimeout)
		}
	}
	cfg.SearchTimeout = searchTimeout

	cfg.SearchRateLimit = viper.GetString("SEARCH_RATE_LIMIT")
	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")

	return cfg, nil
}
