// ABOUTME: Centralized configuration for the DC court research tools
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/openclerk/dccourt/internal/courtlistener"
)

// Config holds all configuration for the research layer.
type Config struct {
	// CourtListener settings
	CourtListenerToken string
	CourtListenerURL   string
	HTTPTimeout        time.Duration

	// Perplexity research fallback
	PerplexityKey string

	// Rule corpus
	RulesDir string

	// Caller-side pagination policy
	MaxPageSize int

	// Research client retry behavior
	MaxRetries int
	RetryDelay time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		CourtListenerToken: os.Getenv("COURTLISTENER_API_TOKEN"),
		CourtListenerURL:   getEnv("COURTLISTENER_BASE_URL", courtlistener.DefaultBaseURL),
		HTTPTimeout:        getEnvDuration("DCCOURT_HTTP_TIMEOUT", 30*time.Second),
		PerplexityKey:      os.Getenv("PERPLEXITY_API_KEY"),
		RulesDir:           getEnv("DCCOURT_RULES_DIR", "data/rules"),
		MaxPageSize:        getEnvInt("DCCOURT_MAX_PAGE_SIZE", 50),
		MaxRetries:         getEnvInt("DCCOURT_MAX_RETRIES", 3),
		RetryDelay:         getEnvDuration("DCCOURT_RETRY_DELAY", 2*time.Second),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.MaxPageSize < 1 || c.MaxPageSize > 100 {
		return fmt.Errorf("DCCOURT_MAX_PAGE_SIZE must be 1-100, got %d", c.MaxPageSize)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("DCCOURT_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("DCCOURT_HTTP_TIMEOUT must be positive, got %v", c.HTTPTimeout)
	}
	return nil
}

// HasCourtListener reports whether a CourtListener API token is
// configured. The client is only constructed when this is true.
func (c *Config) HasCourtListener() bool {
	return c.CourtListenerToken != ""
}

// HasPerplexity reports whether the research fallback is configured.
func (c *Config) HasPerplexity() bool {
	return c.PerplexityKey != ""
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
