package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings, loaded from the environment (optionally
// seeded from a .env file).
type Config struct {
	Port               string
	LogLevel           string
	DatabaseURL        string
	RedisAddr          string
	RedisPassword      string
	FCMCredentialsPath string
	MarketDataBaseURL  string
	ScanInterval       time.Duration
	SwingThreshold     int
	IntradayThreshold  int
	NotifyCooldown     time.Duration
}

// Load reads configuration from the environment. A missing .env file is not
// an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:               envStr("PORT", "8080"),
		LogLevel:           envStr("LOG_LEVEL", "info"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisAddr:          envStr("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		FCMCredentialsPath: os.Getenv("FIREBASE_CREDENTIALS_PATH"),
		MarketDataBaseURL:  os.Getenv("MARKET_DATA_BASE_URL"),
		ScanInterval:       envDuration("SCAN_INTERVAL", 15*time.Minute),
		SwingThreshold:     envInt("SWING_THRESHOLD", 70),
		IntradayThreshold:  envInt("INTRADAY_THRESHOLD", 75),
		NotifyCooldown:     envDuration("NOTIFY_COOLDOWN", 30*time.Minute),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
