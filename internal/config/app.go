package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig is the process configuration, built once at startup and passed
// down explicitly rather than read from ambient state inside the
// derivation layer.
type AppConfig struct {
	RedisAddr    string
	BrandingFile string
	BrandingTTL  time.Duration
	LogLevel     string
}

// LoadAppConfig reads configuration from the environment, loading a .env
// file first when one exists alongside the binary.
func LoadAppConfig() AppConfig {
	_ = godotenv.Load()

	cfg := AppConfig{
		RedisAddr:    os.Getenv("PROPFORMA_REDIS_ADDR"),
		BrandingFile: os.Getenv("PROPFORMA_BRANDING_FILE"),
		BrandingTTL:  15 * time.Minute,
		LogLevel:     os.Getenv("PROPFORMA_LOG_LEVEL"),
	}
	if raw := os.Getenv("PROPFORMA_BRANDING_TTL_MINUTES"); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
			cfg.BrandingTTL = time.Duration(minutes) * time.Minute
		}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg
}
