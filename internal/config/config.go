package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Market   MarketConfig
	Exchange ExchangeConfig
	Security SecurityConfig
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

// MarketConfig holds the market-data provider configuration.
// BaseURL serves current prices, item search and market analysis;
// FeedURL serves the arbitrage opportunity feed.
type MarketConfig struct {
	BaseURL string
	FeedURL string
}

// ExchangeConfig holds the exchange-rate source configuration.
type ExchangeConfig struct {
	BaseURL string
}

// SecurityConfig holds secrets used by the service.
// FernetKey encrypts the provider token at rest; InternalAPIKey protects the
// settings endpoints.
type SecurityConfig struct {
	FernetKey      string
	InternalAPIKey string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/investments.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: strings.Split(
				getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost"), ","),
		},
		Market: MarketConfig{
			BaseURL: getEnv("MARKET_API_URL", "https://market-api.example.com"),
			FeedURL: getEnv("ARBITRAGE_FEED_URL", "https://arbitrage-feed.example.com"),
		},
		Exchange: ExchangeConfig{
			BaseURL: getEnv("EXCHANGE_API_URL", "https://open.er-api.com/v6"),
		},
		Security: SecurityConfig{
			FernetKey:      os.Getenv("FERNET_KEY"),
			InternalAPIKey: os.Getenv("INTERNAL_API_KEY"),
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
