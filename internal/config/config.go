package config

import (
	"log"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

// Config holds application configuration values. Business settings that used
// to live in a mutable settings store (tax rate, currency, low-stock
// threshold) are loaded here once and passed explicitly to the components that
// need them; callers re-run Load to pick up changes.
type Config struct {
	Secret            string
	DatabasePath      string
	BackupDir         string
	HTTPPort          string
	Currency          string
	TaxRate           decimal.Decimal
	LowStockThreshold int64
}

// Load reads configuration from environment variables with reasonable defaults.
func Load() Config {
	secret := os.Getenv("SECRET")
	if secret == "" {
		secret = "dev_secret"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}
	if _, err := strconv.Atoi(port); err != nil {
		log.Printf("invalid HTTP_PORT value %q, defaulting to 8080", port)
		port = "8080"
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "app.db"
	}

	backupDir := os.Getenv("BACKUP_DIR")
	if backupDir == "" {
		backupDir = "backups"
	}

	currency := os.Getenv("CURRENCY")
	if currency == "" {
		currency = "USD"
	}

	taxRate := decimal.NewFromFloat(0.15)
	if raw := os.Getenv("TAX_RATE"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil || parsed.IsNegative() {
			log.Printf("invalid TAX_RATE value %q, defaulting to 0.15", raw)
		} else {
			taxRate = parsed
		}
	}

	lowStock := int64(5)
	if raw := os.Getenv("LOW_STOCK_THRESHOLD"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			log.Printf("invalid LOW_STOCK_THRESHOLD value %q, defaulting to 5", raw)
		} else {
			lowStock = parsed
		}
	}

	return Config{
		Secret:            secret,
		DatabasePath:      dbPath,
		BackupDir:         backupDir,
		HTTPPort:          port,
		Currency:          currency,
		TaxRate:           taxRate,
		LowStockThreshold: lowStock,
	}
}
