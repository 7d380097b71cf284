package cli

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BaseURL   string // Base URL of the joko backend (default: http://localhost:8080)
	SessionDB string // Path to the SQLite session file (default: ./joko-session.db)

	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: warn)
	LogFormat string // Log format (json, text) (default: text)

	WatchInterval time.Duration // Refresh interval for watch mode (default: 2s)
}

// LoadConfig reads configuration from the environment, after loading a .env
// file from the working directory when one exists.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		BaseURL:       getEnvOrDefault("JOKO_BASE_URL", "http://localhost:8080"),
		SessionDB:     getEnvOrDefault("JOKO_SESSION_DB", "joko-session.db"),
		Env:           getEnvOrDefault("ENV", "dev"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "warn"),
		LogFormat:     getEnvOrDefault("LOG_FORMAT", "text"),
		WatchInterval: getEnvDurationOrDefault("JOKO_WATCH_INTERVAL", 2*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
