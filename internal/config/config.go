package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Upload strategies. Chosen once at startup, never per-request.
const (
	StrategyDisk   = "disk"
	StrategyInline = "inline"
)

// Config holds every environment-driven setting, read once at process start.
type Config struct {
	Production bool

	// Hosted mode: a single connection string (encrypted transport).
	DatabaseURL string

	// Local mode: discrete connection fields (unencrypted).
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	BaseURL        string
	Port           string
	UploadStrategy string
	UploadDir      string
	MaxBodyBytes   int64
}

// Load reads the environment into a Config and validates it eagerly, so a
// misconfigured process dies at startup instead of on the first request.
func Load() (*Config, error) {
	cfg := &Config{
		Production:     os.Getenv("APP_ENV") == "production",
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		BaseURL:        os.Getenv("BASE_URL"),
		Port:           os.Getenv("PORT"),
		UploadStrategy: os.Getenv("UPLOAD_STRATEGY"),
		UploadDir:      os.Getenv("UPLOAD_DIR"),
		MaxBodyBytes:   1 << 20,
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:5000"
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.UploadStrategy == "" {
		cfg.UploadStrategy = StrategyDisk
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if raw := os.Getenv("MAX_BODY_BYTES"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid MAX_BODY_BYTES %q", raw)
		}
		cfg.MaxBodyBytes = n
	}

	if cfg.UploadStrategy != StrategyDisk && cfg.UploadStrategy != StrategyInline {
		return nil, fmt.Errorf("invalid UPLOAD_STRATEGY %q (want %q or %q)", cfg.UploadStrategy, StrategyDisk, StrategyInline)
	}

	if cfg.Production {
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is required when APP_ENV=production")
		}
	} else {
		var missing []string
		for _, f := range []struct {
			name, val string
		}{
			{"DB_HOST", cfg.DBHost},
			{"DB_PORT", cfg.DBPort},
			{"DB_USER", cfg.DBUser},
			{"DB_PASSWORD", cfg.DBPassword},
			{"DB_NAME", cfg.DBName},
		} {
			if f.val == "" {
				missing = append(missing, f.name)
			}
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("missing local database settings: %v", missing)
		}
	}

	return cfg, nil
}
