// Package pagination provides deterministic, stateless slicing of
// pre-ordered article sets into fixed-size listing pages.
package pagination

import "backbar/pkg/config"

// Config holds pagination configuration. The page size is fixed for the
// lifetime of the process; there is no per-request override.
type Config struct {
	PageSize int // Items per listing page
}

// DefaultConfig returns the default pagination configuration (12 items per
// page, matching the listing grid).
func DefaultConfig() Config {
	return Config{PageSize: 12}
}

// LoadFromEnv loads pagination config from the PAGINATION_PAGE_SIZE
// environment variable, falling back to the default when unset or invalid.
func LoadFromEnv() Config {
	size := config.GetEnvInt("PAGINATION_PAGE_SIZE", 12)
	if size < 1 {
		size = 12
	}
	return Config{PageSize: size}
}
