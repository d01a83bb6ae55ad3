package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Quote provider names accepted in QUOTE_PROVIDER.
const (
	QuoteProviderSimulated = "simulated"
	QuoteProviderBrapi     = "brapi"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Quote    QuoteConfig
	Secret   SecretConfig
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

// QuoteConfig holds quote lookup configuration.
// Provider selects the price source; RefreshSpec is a cron expression for
// the background quote refresh; CacheTTL bounds how long a fetched quote is
// served from cache.
type QuoteConfig struct {
	Provider    string
	RefreshSpec string
	CacheTTL    time.Duration
}

// SecretConfig holds the fernet key used to encrypt the quote API token at rest.
type SecretConfig struct {
	FernetKey string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	cacheTTL, err := time.ParseDuration(getEnv("QUOTE_CACHE_TTL", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid QUOTE_CACHE_TTL: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/controle_acoes.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Quote: QuoteConfig{
			Provider:    getEnv("QUOTE_PROVIDER", QuoteProviderSimulated),
			RefreshSpec: getEnv("QUOTE_REFRESH_SPEC", "@every 1m"),
			CacheTTL:    cacheTTL,
		},
		Secret: SecretConfig{
			FernetKey: getEnv("FERNET_KEY", ""),
		},
	}

	if config.Quote.Provider != QuoteProviderSimulated && config.Quote.Provider != QuoteProviderBrapi {
		return nil, fmt.Errorf("unknown QUOTE_PROVIDER: %s", config.Quote.Provider)
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
