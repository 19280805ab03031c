package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Session  SessionConfig
	Jobs     JobsConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// SessionConfig holds session token configuration.
// Key is a base64url-encoded 32-byte fernet key; when empty a random key is
// generated at startup and sessions do not survive a restart.
type SessionConfig struct {
	Key string
	TTL time.Duration
}

// JobsConfig holds scheduled job configuration.
type JobsConfig struct {
	// RecomputeSchedule is a cron expression for the nightly full profit
	// recomputation across all users.
	RecomputeSchedule string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	sessionTTLHours, err := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "72"))
	if err != nil || sessionTTLHours <= 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL_HOURS: %v", os.Getenv("SESSION_TTL_HOURS"))
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/trade_tracker.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Session: SessionConfig{
			Key: getEnv("SESSION_KEY", ""),
			TTL: time.Duration(sessionTTLHours) * time.Hour,
		},
		Jobs: JobsConfig{
			RecomputeSchedule: getEnv("RECOMPUTE_SCHEDULE", "0 3 * * *"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
