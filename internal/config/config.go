package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// TLS; enabled when both cert and key are set, mTLS when a CA is set too
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string

	// Database
	DatabaseURL string

	// Redis-backed sessions; in-memory sessions when empty
	RedisURL string

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Dataset
	DatasetPath           string        // env: DATASET_PATH, default: "Groceries_dataset.csv"
	DatasetReloadInterval time.Duration // env: DATASET_RELOAD_INTERVAL, 0 disables the watcher

	// Chatbot
	FAQPath       string  // env: FAQ_PATH, default: "faq.yaml"
	FAQThreshold  float64 // env: FAQ_THRESHOLD, default: 0.4
	FAQSimilarity string  // env: FAQ_SIMILARITY, "sequence" or "trigram"

	// OIDC (optional second login method)
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	// YAML file with seeded users
	ConfigFile string

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Market Basket Analysis"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	cfg := &Config{
		Env:           getEnv("ENV", "development"),
		ServerAddr:    getEnv("SERVER_ADDR", ":3000"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:   getEnv("DATABASE_URL", "postgres://localhost:5432/basketlens?sslmode=disable"),
		RedisURL:      getEnv("REDIS_URL", ""),
		SessionSecret: getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		CORSOrigins:   getEnv("CORS_ORIGINS", ""),

		DatasetPath:           getEnv("DATASET_PATH", "Groceries_dataset.csv"),
		DatasetReloadInterval: getEnvDuration("DATASET_RELOAD_INTERVAL", 0),

		FAQPath:       getEnv("FAQ_PATH", "faq.yaml"),
		FAQThreshold:  getEnvFloat("FAQ_THRESHOLD", 0.4),
		FAQSimilarity: getEnv("FAQ_SIMILARITY", "sequence"),

		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:  getEnv("OIDC_REDIRECT_URL", "http://localhost:3000/auth/callback"),

		ConfigFile: getEnv("CONFIG_FILE", "config.yaml"),

		SiteTitle:   getEnv("SITE_TITLE", "Market Basket Analysis"),
		SiteTagline: getEnv("SITE_TAGLINE", "Frequent itemsets, association rules and item pair checks"),
		SiteFooter:  getEnv("SITE_FOOTER", "basketlens - market basket analysis dashboard"),

		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:   getEnv("TLS_CA_FILE", ""),
	}
	cfg.TLSEnabled = cfg.TLSCertFile != "" && cfg.TLSKeyFile != ""

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// OIDCEnabled returns true if an OIDC issuer is configured.
func (c *Config) OIDCEnabled() bool {
	return c.OIDCIssuer != ""
}
