package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the admin API server
type Config struct {
	// HTTP Configuration
	HTTP HTTPConfig

	// Database Configuration
	Database DatabaseConfig

	// Upload Configuration
	Uploads UploadConfig

	// Voucher housekeeping
	Vouchers VoucherConfig

	// Logging Configuration
	Logging LoggingConfig
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	Addr        string // listen address (host:port)
	CORSOrigin  string // allowed origin for the web admin
	PublicURL   string // base URL used when building upload URLs
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL string
}

// UploadConfig holds file upload configuration
type UploadConfig struct {
	Dir string // directory uploaded files are written to
}

// VoucherConfig holds voucher housekeeping configuration
type VoucherConfig struct {
	SweepSchedule string // cron expression for the expired-voucher sweep, empty = disabled
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // json, console
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env files (fails silently if files don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	return &Config{
		HTTP: HTTPConfig{
			Addr:       getenv("LISTEN_ADDR", ":3000"),
			CORSOrigin: getenv("CORS_ORIGIN", "http://localhost:5173"),
			PublicURL:  getenv("PUBLIC_URL", "http://localhost:3000"),
		},
		Database: DatabaseConfig{
			URL: getenv("DATABASE_URL", "eshop.sqlite"),
		},
		Uploads: UploadConfig{
			Dir: getenv("UPLOAD_DIR", "uploads"),
		},
		Vouchers: VoucherConfig{
			// 2am daily by default
			SweepSchedule: getenv("VOUCHER_SWEEP_SCHEDULE", "0 2 * * *"),
		},
		Logging: LoggingConfig{
			Level:  getenv("LOG_LEVEL", "info"),
			Format: getenv("LOG_FORMAT", "json"),
		},
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
