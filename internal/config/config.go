// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Cart storage backends
const (
	CartBackendFile  = "file"
	CartBackendRedis = "redis"
)

// Config holds all configuration for the storefront client
type Config struct {
	App      AppConfig
	API      APIConfig
	Server   ServerConfig
	Cart     CartConfig
	Session  SessionConfig
	Checkout CheckoutConfig
	Catalog  CatalogConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Logging  LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Debug       bool
}

// APIConfig contains the backend API collaborator configuration
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ServerConfig contains HTTP server configuration for the mock API
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// CartConfig contains cart persistence configuration
type CartConfig struct {
	Backend  string
	FilePath string
	RedisKey string
	TTL      time.Duration
}

// SessionConfig contains session persistence configuration
type SessionConfig struct {
	FilePath string
}

// CheckoutConfig contains checkout pricing rules. Amounts are in cents.
type CheckoutConfig struct {
	FreeShippingThreshold int64
	ShippingFee           int64
	TaxRate               float64
}

// CatalogConfig contains product listing configuration. PriceMax is in cents.
type CatalogConfig struct {
	PriceMax        int64
	PageSize        int
	PaginationDelta int
}

// RedisConfig contains Redis configuration
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// JWTConfig contains JWT token configuration. The secret is used by the mock
// API to sign tokens; the client only reads claims for local expiry checks.
type JWTConfig struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Storefront Client"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			Debug:       getEnvAsBool("APP_DEBUG", true),
		},
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:8080/api/v1"),
			Timeout: getEnvAsDuration("API_TIMEOUT", 10*time.Second),
		},
		Server: ServerConfig{
			Port:         getEnv("APP_PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Cart: CartConfig{
			Backend:  getEnv("CART_BACKEND", CartBackendFile),
			FilePath: getEnv("CART_FILE_PATH", defaultStatePath("cart.json")),
			RedisKey: getEnv("CART_REDIS_KEY", "cart:local"),
			TTL:      getEnvAsDuration("CART_TTL", 24*time.Hour),
		},
		Session: SessionConfig{
			FilePath: getEnv("SESSION_FILE_PATH", defaultStatePath("session.json")),
		},
		Checkout: CheckoutConfig{
			FreeShippingThreshold: getEnvAsInt64("CHECKOUT_FREE_SHIPPING_THRESHOLD", 5000),
			ShippingFee:           getEnvAsInt64("CHECKOUT_SHIPPING_FEE", 999),
			TaxRate:               getEnvAsFloat("CHECKOUT_TAX_RATE", 0.08),
		},
		Catalog: CatalogConfig{
			PriceMax:        getEnvAsInt64("CATALOG_PRICE_MAX", 50000),
			PageSize:        getEnvAsInt("CATALOG_PAGE_SIZE", 15),
			PaginationDelta: getEnvAsInt("CATALOG_PAGINATION_DELTA", 2),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", "your-super-secret-jwt-key-change-in-production"),
			AccessTokenExpiry: getEnvAsDuration("JWT_ACCESS_EXPIRE", 24*time.Hour),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}

	if c.Cart.Backend != CartBackendFile && c.Cart.Backend != CartBackendRedis {
		return fmt.Errorf("CART_BACKEND must be %q or %q", CartBackendFile, CartBackendRedis)
	}

	if c.Cart.Backend == CartBackendRedis && c.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST is required when CART_BACKEND=redis")
	}

	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}

	if c.Checkout.TaxRate < 0 || c.Checkout.TaxRate >= 1 {
		return fmt.Errorf("CHECKOUT_TAX_RATE must be in [0, 1)")
	}

	if c.Catalog.PageSize <= 0 {
		return fmt.Errorf("CATALOG_PAGE_SIZE must be positive")
	}

	if c.Catalog.PriceMax <= 0 {
		return fmt.Errorf("CATALOG_PRICE_MAX must be positive")
	}

	if c.Server.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// defaultStatePath places persisted client state under the user config
// directory, falling back to the working directory when unavailable.
func defaultStatePath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return name
	}
	return filepath.Join(dir, "storefront", name)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
