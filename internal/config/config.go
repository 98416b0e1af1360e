package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// Blog platform configuration
	Blog BlogConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds MongoDB connection settings
type DatabaseConfig struct {
	URI            string
	Name           string
	ConnectTimeout time.Duration
	QueryTimeout   time.Duration
}

// BlogConfig holds blog platform settings
type BlogConfig struct {
	// SiteURL is the canonical public base URL, used for short-link redirects
	SiteURL string

	// DefaultAuthor is stamped on posts created without an author
	DefaultAuthor string

	// DefaultCategory is substituted when a post is created without categories
	DefaultCategory string

	// CronAPIKey gates the cron publish trigger (x-api-key header)
	CronAPIKey string

	// AdminUsername/AdminPassword guard the authoring endpoints (basic auth)
	AdminUsername string
	AdminPassword string

	// AutoPublishInterval is the minimum spacing between opportunistic
	// reconcile runs triggered by public page traffic
	AutoPublishInterval time.Duration
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			URI:            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Name:           getEnv("DB_NAME", "blog"),
			ConnectTimeout: getDurationEnv("DB_CONNECT_TIMEOUT", 10*time.Second),
			QueryTimeout:   getDurationEnv("DB_QUERY_TIMEOUT", 15*time.Second),
		},
		Blog: BlogConfig{
			SiteURL:             getEnv("SITE_URL", "http://localhost:8080"),
			DefaultAuthor:       getEnv("DEFAULT_AUTHOR", "Emin Mammadov"),
			DefaultCategory:     getEnv("DEFAULT_CATEGORY", "General"),
			CronAPIKey:          getEnv("CRON_API_KEY", ""),
			AdminUsername:       getEnv("ADMIN_USERNAME", ""),
			AdminPassword:       getEnv("ADMIN_PASSWORD", ""),
			AutoPublishInterval: getDurationEnv("AUTO_PUBLISH_INTERVAL", 6*time.Hour),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.URI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.Blog.AdminUsername == "" || c.Blog.AdminPassword == "" {
		return fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD are required")
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
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
