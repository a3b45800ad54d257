// Package sanity implements the content store gateway against a Sanity
// Content Lake query endpoint. It translates the repository access patterns
// into parameterized GROQ queries and decodes the results into domain
// entities.
//
// Reliability: every request carries an explicit timeout and passes through
// a circuit breaker and an outbound token-bucket rate limiter. There are no
// retries and no caching: each call is a fresh read, and upstream failures
// surface to the caller as repository.ErrStoreUnavailable.
package sanity

import (
	"fmt"
	"strings"
	"time"

	"backbar/pkg/config"
)

// Config holds the configuration for the content store client.
type Config struct {
	// BaseURL is the API origin, e.g. "https://<project>.api.sanity.io".
	// When empty it is derived from ProjectID.
	BaseURL string

	// ProjectID is the Sanity project identifier. Required unless BaseURL
	// is set explicitly (tests point BaseURL at a local server).
	ProjectID string

	// Dataset is the dataset to query. Default: "production".
	Dataset string

	// APIVersion is the date-pinned API version. Default: "2024-01-01".
	APIVersion string

	// Token is an optional read token sent as a Bearer credential. Public
	// datasets need no token.
	Token string

	// Category is the coarse taxonomy partition every query is scoped to.
	// Default: "spirits".
	Category string

	// Site is the publication channel an article must be a member of to be
	// eligible for this surface. Default: "backbar".
	Site string

	// Timeout is the per-request timeout for store queries. Default: 10s.
	Timeout time.Duration

	// RequestsPerSecond and Burst bound the outbound request rate so a
	// burst of page views cannot exhaust the store API quota.
	// Defaults: 25 req/s, burst 50.
	RequestsPerSecond float64
	Burst             int
}

// DefaultConfig returns the default content store configuration.
func DefaultConfig() Config {
	return Config{
		Dataset:           "production",
		APIVersion:        "2024-01-01",
		Category:          "spirits",
		Site:              "backbar",
		Timeout:           10 * time.Second,
		RequestsPerSecond: 25,
		Burst:             50,
	}
}

// LoadConfigFromEnv loads the content store configuration from environment
// variables, falling back to defaults, and validates the result.
//
// Environment variables:
//   - SANITY_BASE_URL: explicit API origin (overrides SANITY_PROJECT_ID)
//   - SANITY_PROJECT_ID: project identifier
//   - SANITY_DATASET: dataset name (default: "production")
//   - SANITY_API_VERSION: pinned API version (default: "2024-01-01")
//   - SANITY_TOKEN: optional read token
//   - CONTENT_CATEGORY: category scope (default: "spirits")
//   - CONTENT_SITE: channel membership value (default: "backbar")
//   - CONTENT_TIMEOUT: per-request timeout (default: "10s")
//   - CONTENT_RATE_LIMIT: outbound requests per second (default: 25)
//   - CONTENT_RATE_BURST: outbound burst size (default: 50)
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	cfg.BaseURL = config.GetEnvString("SANITY_BASE_URL", "")
	cfg.ProjectID = config.GetEnvString("SANITY_PROJECT_ID", "")
	cfg.Dataset = config.GetEnvString("SANITY_DATASET", cfg.Dataset)
	cfg.APIVersion = config.GetEnvString("SANITY_API_VERSION", cfg.APIVersion)
	cfg.Token = config.GetEnvString("SANITY_TOKEN", "")
	cfg.Category = config.GetEnvString("CONTENT_CATEGORY", cfg.Category)
	cfg.Site = config.GetEnvString("CONTENT_SITE", cfg.Site)
	cfg.Timeout = config.GetEnvDuration("CONTENT_TIMEOUT", cfg.Timeout)
	cfg.RequestsPerSecond = float64(config.GetEnvInt("CONTENT_RATE_LIMIT", int(cfg.RequestsPerSecond)))
	cfg.Burst = config.GetEnvInt("CONTENT_RATE_BURST", cfg.Burst)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("content store configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is complete and safe.
func (c *Config) Validate() error {
	if c.BaseURL == "" && c.ProjectID == "" {
		return fmt.Errorf("either SANITY_BASE_URL or SANITY_PROJECT_ID must be set")
	}
	if c.BaseURL != "" && !strings.HasPrefix(c.BaseURL, "http") {
		return fmt.Errorf("base URL must be an http(s) origin, got %q", c.BaseURL)
	}
	if c.Dataset == "" {
		return fmt.Errorf("dataset must not be empty")
	}
	if c.Category == "" {
		return fmt.Errorf("category scope must not be empty")
	}
	if c.Site == "" {
		return fmt.Errorf("site channel must not be empty")
	}
	if err := config.ValidateDurationRange(c.Timeout, 100*time.Millisecond, time.Minute); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if c.RequestsPerSecond <= 0 {
		return fmt.Errorf("rate limit must be positive, got %v", c.RequestsPerSecond)
	}
	if c.Burst < 1 {
		return fmt.Errorf("burst must be at least 1, got %d", c.Burst)
	}
	return nil
}

// Origin returns the API origin for query requests.
func (c *Config) Origin() string {
	if c.BaseURL != "" {
		return strings.TrimSuffix(c.BaseURL, "/")
	}
	return fmt.Sprintf("https://%s.api.sanity.io", c.ProjectID)
}
