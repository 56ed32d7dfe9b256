package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Issuer       string        // Optional: issuer claim for session tokens (default: userhub-emulator)
	DatabaseFile string        // Optional: path to SQLite database file (default: ./hub.db)
	SessionTTL   time.Duration // Optional: session token lifetime (default: 1h)

	// SeedUsername/SeedPassword create a password user at startup so a
	// fresh database is immediately usable.
	SeedUsername string
	SeedPassword string

	// AllowedProviders is the space-separated identity-provider allow-list
	// for token exchange (default: "google github").
	AllowedProviders []string

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:              getEnvOrDefault("HUB_ISSUER", "userhub-emulator"),
		DatabaseFile:        getEnvOrDefault("HUB_DATABASE_FILE", "hub.db"),
		SessionTTL:          getEnvDurationOrDefault("HUB_SESSION_TTL", 1*time.Hour),
		SeedUsername:        os.Getenv("HUB_SEED_USERNAME"),
		SeedPassword:        os.Getenv("HUB_SEED_PASSWORD"),
		AllowedProviders:    strings.Fields(getEnvOrDefault("HUB_PROVIDERS", "google github")),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
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
