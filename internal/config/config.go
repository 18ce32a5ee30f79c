// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Document store connection
	MongoURI string
	DBName   string

	// Valkey (Redis-compatible cache) — optional, empty host disables it
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// Token signing
	SecretKey       string
	TokenAlgorithm  string
	TokenTTLMinutes int

	// AllowedOrigins lists the origins permitted by CORS.
	AllowedOrigins []string

	// ArticleAccess gates article mutations: "authenticated" requires a
	// valid bearer token, "open" leaves them public.
	ArticleAccess string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load() (*Config, error) {
	ttl, err := strconv.Atoi(envOrDefault("TOKEN_TTL_MINUTES", "20"))
	if err != nil {
		return nil, fmt.Errorf("TOKEN_TTL_MINUTES must be an integer: %w", err)
	}

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		MongoURI: envOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		DBName:   envOrDefault("MONGO_DB", "pressroom"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		SecretKey:       os.Getenv("SECRET_KEY"),
		TokenAlgorithm:  envOrDefault("TOKEN_ALGORITHM", "HS256"),
		TokenTTLMinutes: ttl,

		AllowedOrigins: splitOrigins(envOrDefault("ALLOWED_ORIGINS", "http://127.0.0.1:8000")),

		ArticleAccess: envOrDefault("ARTICLE_ACCESS", "authenticated"),
	}

	if cfg.ArticleAccess != "authenticated" && cfg.ArticleAccess != "open" {
		return nil, fmt.Errorf("ARTICLE_ACCESS must be \"authenticated\" or \"open\", got %q", cfg.ArticleAccess)
	}

	if cfg.SecretKey == "" {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("SECRET_KEY must be set in production")
		}
		// Development convenience: a random per-process secret. Tokens
		// do not survive a restart.
		cfg.SecretKey = randomSecret()
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// DatabaseName returns the database to use, namespaced per environment
// so development and test runs never touch production collections.
func (c *Config) DatabaseName() string {
	switch c.Env {
	case "production":
		return c.DBName
	case "testing":
		return c.DBName + "_test"
	default:
		return c.DBName + "_dev"
	}
}

// CacheEnabled returns true if a Valkey host is configured.
func (c *Config) CacheEnabled() bool {
	return c.ValkeyHost != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitOrigins parses a comma-separated origin list, trimming whitespace.
func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// randomSecret generates a 64-byte hex-encoded signing secret.
func randomSecret() string {
	b := make([]byte, 64)
	if _, err := rand.Read(b); err != nil {
		panic(err) // the system CSPRNG failing is not recoverable
	}
	return hex.EncodeToString(b)
}
