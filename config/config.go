// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreDriverMemory = "memory"
	StoreDriverSQLite = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	Server       ServerConfig
	Store        StoreConfig
	Redis        RedisConfig
	Notification NotificationConfig
	RateLimit    RateLimitConfig
	Log          LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// StoreConfig selects where the session ledger lives.
type StoreConfig struct {
	Driver string
	DSN    string
}

// RedisConfig holds Redis configuration for change events.
type RedisConfig struct {
	Enabled  bool
	URL      string
	Password string
	DB       int
	Channel  string
}

// NotificationConfig holds the change-event relay settings.
type NotificationConfig struct {
	QueueSize      int
	PublishTimeout time.Duration
}

// RateLimitConfig holds the per-client limits applied to mutation routes.
type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Store: StoreConfig{
			Driver: getEnv("STORE_DRIVER", StoreDriverMemory),
			DSN:    getEnv("STORE_DSN", ":memory:"),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			URL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Channel:  getEnv("REDIS_CHANNEL", "ledger:changes"),
		},
		Notification: NotificationConfig{
			QueueSize:      getEnvAsInt("NOTIFICATION_QUEUE_SIZE", 256),
			PublishTimeout: getEnvAsDuration("NOTIFICATION_PUBLISH_TIMEOUT", 2*time.Second),
		},
		RateLimit: RateLimitConfig{
			MaxRequests: getEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 120),
			Window:      getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
