// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Client construction, pagination clamping, and small string helpers
package commands

import (
	"fmt"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/openclerk/dccourt/internal/config"
	"github.com/openclerk/dccourt/internal/courtlistener"
)

// loadConfig loads .env (if present) and the environment configuration.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()
	return config.Load()
}

// newClient builds a CourtListener client, or errors if no token is
// configured. The client itself never carries an unconfigured state.
func newClient(cfg *config.Config) (*courtlistener.Client, error) {
	if !cfg.HasCourtListener() {
		return nil, fmt.Errorf("CourtListener is not configured: set COURTLISTENER_API_TOKEN")
	}
	return courtlistener.NewClient(cfg.CourtListenerToken,
		courtlistener.WithBaseURL(cfg.CourtListenerURL),
		courtlistener.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout})), nil
}

// clampPageSize applies the caller-side pagination ceiling.
func clampPageSize(size, max int) int {
	if max > 0 && size > max {
		return max
	}
	return size
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return string(runes[:maxLen-3]) + "..."
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}
