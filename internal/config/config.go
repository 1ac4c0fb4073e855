package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting, populated from environment variables.
type Config struct {
	Env  string
	Port string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// SessionSecret signs session tokens; SessionTTL bounds both the token
	// and the redis session record.
	SessionSecret string
	SessionTTL    time.Duration

	// OwnerOpenID is the one external identifier auto-promoted to admin.
	OwnerOpenID string

	// GatewayID / GatewaySecretHash authenticate the external login gateway
	// on the session exchange endpoint. The hash is bcrypt.
	GatewayID         string
	GatewaySecretHash string

	LogLevel string
}

// Load reads configuration from the environment. A .env file is loaded
// first when present so local runs need no exported variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:               getEnv("ENV", "production"),
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           getIntEnv("REDIS_DB", 0),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		SessionTTL:        getDurationEnv("SESSION_TTL", 24*time.Hour),
		OwnerOpenID:       os.Getenv("OWNER_OPEN_ID"),
		GatewayID:         os.Getenv("GATEWAY_ID"),
		GatewaySecretHash: os.Getenv("GATEWAY_SECRET_HASH"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the service cannot run without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if c.GatewayID == "" {
		return fmt.Errorf("GATEWAY_ID is required")
	}
	if c.GatewaySecretHash == "" {
		return fmt.Errorf("GATEWAY_SECRET_HASH is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
