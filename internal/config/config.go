package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Inventory source values.
const (
	InventorySourceSeed     = "seed"
	InventorySourcePostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Inventory InventoryConfig
	Anthropic AnthropicConfig
	Logging   LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// InventoryConfig selects where the car inventory is loaded from at startup.
type InventoryConfig struct {
	Source             string // "seed" (embedded) or "postgres"
	DSN                string // full connection string, takes precedence
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
}

// AnthropicConfig holds Anthropic Messages API configuration
type AnthropicConfig struct {
	APIKey    string
	APIBase   string
	Model     string
	MaxTokens int
	Timeout   int // seconds
	Enabled   bool
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Inventory: InventoryConfig{
			Source:             getEnv("INVENTORY_SOURCE", InventorySourceSeed),
			DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "churro"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
		},
		Anthropic: AnthropicConfig{
			APIKey:    getEnv("ANTHROPIC_API_KEY", ""),
			APIBase:   getEnv("ANTHROPIC_API_BASE", "https://api.anthropic.com/v1"),
			Model:     getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-6"),
			MaxTokens: getEnvAsInt("ANTHROPIC_MAX_TOKENS", 1024),
			Timeout:   getEnvAsInt("ANTHROPIC_TIMEOUT", 30),
			Enabled:   getEnv("ANTHROPIC_API_KEY", "") != "",
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	if cfg.Inventory.Source != InventorySourceSeed && cfg.Inventory.Source != InventorySourcePostgres {
		return nil, fmt.Errorf("invalid INVENTORY_SOURCE %q (must be %q or %q)",
			cfg.Inventory.Source, InventorySourceSeed, InventorySourcePostgres)
	}

	return cfg, nil
}

// GetPostgresDSN returns the PostgreSQL connection string
func (c *Config) GetPostgresDSN() string {
	if c.Inventory.DSN != "" {
		return c.Inventory.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Inventory.Host,
		c.Inventory.Port,
		c.Inventory.User,
		c.Inventory.Password,
		c.Inventory.Database,
		c.Inventory.SSLMode,
	)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		logrus.Warnf("invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}
