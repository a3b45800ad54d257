package middleware

import (
	"fmt"
	"strings"

	"backbar/pkg/config"
)

// Geo gate environment defaults. The country header matches what the edge
// provider stamps on every request; the blocklist matches the publication's
// distribution policy.
const (
	DefaultCountryHeader = "X-Vercel-IP-Country"
)

var defaultBlockedCountries = []string{"CN", "RU"}

// GeoConfig holds the geography gate configuration. It is loaded once at
// startup and never mutated afterwards.
type GeoConfig struct {
	// CountryHeader is the trusted request header carrying the ISO 3166-1
	// alpha-2 country code of the requester.
	CountryHeader string

	// blocked is the uppercase country-code blocklist.
	blocked map[string]struct{}
}

// NewGeoConfig builds a GeoConfig from a header name and a list of country
// codes. Codes are normalized to upper case.
func NewGeoConfig(countryHeader string, blockedCountries []string) GeoConfig {
	blocked := make(map[string]struct{}, len(blockedCountries))
	for _, c := range blockedCountries {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			blocked[c] = struct{}{}
		}
	}
	return GeoConfig{
		CountryHeader: countryHeader,
		blocked:       blocked,
	}
}

// LoadGeoConfigFromEnv loads the gate configuration from environment
// variables:
//
//	GEO_COUNTRY_HEADER    trusted country header (default X-Vercel-IP-Country)
//	GEO_BLOCKED_COUNTRIES comma-separated blocklist (default CN,RU)
func LoadGeoConfigFromEnv() GeoConfig {
	return NewGeoConfig(
		config.GetEnvString("GEO_COUNTRY_HEADER", DefaultCountryHeader),
		config.GetEnvStringList("GEO_BLOCKED_COUNTRIES", defaultBlockedCountries),
	)
}

// Validate checks the configuration for startup fail-fast.
func (c GeoConfig) Validate() error {
	if c.CountryHeader == "" {
		return fmt.Errorf("geo gate: country header is required")
	}
	for code := range c.blocked {
		if len(code) != 2 {
			return fmt.Errorf("geo gate: invalid country code %q (want ISO 3166-1 alpha-2)", code)
		}
	}
	return nil
}

// IsBlocked reports whether the given uppercase country code is on the
// blocklist. The empty string (absent header) is never blocked.
func (c GeoConfig) IsBlocked(country string) bool {
	if country == "" {
		return false
	}
	_, blocked := c.blocked[country]
	return blocked
}

// BlockedCount returns the size of the blocklist, for startup logging.
func (c GeoConfig) BlockedCount() int {
	return len(c.blocked)
}
