package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env      string // "development", "production", etc.
	LogLevel string // debug, info, warn, error; empty uses the environment default

	// Server
	ServerAddr string
	BaseURL    string

	// Database (optional, enables query analytics)
	DatabaseURL       string
	QueryLogRetention time.Duration

	// Redis (optional, backs sessions and rate limiting)
	RedisURL string

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Rate limiting
	RateLimitMax int // requests per minute per IP

	// Case study gate; empty disables it
	CaseStudyPassword string

	// Content
	SiteFile   string // YAML with the knowledge base, env: SITE_FILE
	ViewsDir   string
	ContentDir string
	StaticDir  string

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Vani Balasundaram"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:               getEnv("ENV", "development"),
		LogLevel:          getEnv("LOG_LEVEL", ""),
		ServerAddr:        getEnv("SERVER_ADDR", ":3000"),
		BaseURL:           getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		QueryLogRetention: getDuration("QUERY_LOG_RETENTION", 30*24*time.Hour),
		RedisURL:          getEnv("REDIS_URL", ""),
		SessionSecret:     getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		CORSOrigins:       getEnv("CORS_ORIGINS", ""),
		RateLimitMax:      getInt("RATE_LIMIT_MAX", 100),
		CaseStudyPassword: getEnv("CASE_STUDY_PASSWORD", ""),
		SiteFile:          getEnv("SITE_FILE", "site.yaml"),
		ViewsDir:          getEnv("VIEWS_DIR", "./views"),
		ContentDir:        getEnv("CONTENT_DIR", "./content"),
		StaticDir:         getEnv("STATIC_DIR", "./static"),

		SiteTitle:   getEnv("SITE_TITLE", "Vani Balasundaram"),
		SiteTagline: getEnv("SITE_TAGLINE", "Senior Product Designer"),
		SiteFooter:  getEnv("SITE_FOOTER", "Vani Balasundaram - Product Design Portfolio"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n > 0 {
		return n
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsGateEnabled returns true if case study pages require a password.
func (c *Config) IsGateEnabled() bool {
	return c.CaseStudyPassword != ""
}

// HasDatabase returns true if query analytics are backed by Postgres.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}
