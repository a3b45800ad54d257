// Package pathutil provides URL path helpers for the HTTP layer, chiefly
// path normalization for metric labels.
package pathutil

import (
	"regexp"
	"strings"
)

// pathPattern pairs a route regex with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns lists the dynamic routes of the service, most specific
// first. Pre-compiled at initialization so normalization stays cheap on the
// hot path.
var pathPatterns = []pathPattern{
	{pattern: regexp.MustCompile(`^/articles/page/[^/]+$`), template: "/articles/page/:page"},
	{pattern: regexp.MustCompile(`^/articles/subcategory/[^/]+$`), template: "/articles/subcategory/:subcategory"},
	{pattern: regexp.MustCompile(`^/articles/tag/[^/]+$`), template: "/articles/tag/:tag"},

	// Catch-all slug route, matched last so the scoped routes above win
	{pattern: regexp.MustCompile(`^/articles/[^/]+$`), template: "/articles/:slug"},
}

// NormalizePath collapses dynamic URL paths to templates so metric label
// cardinality stays bounded regardless of how many articles, subcategories,
// or tags exist.
//
// Examples:
//
//	NormalizePath("/articles/rye-basics")            // "/articles/:slug"
//	NormalizePath("/articles/page/2")                // "/articles/page/:page"
//	NormalizePath("/articles/subcategory/single-malt") // "/articles/subcategory/:subcategory"
//	NormalizePath("/articles/tag/cocktails")         // "/articles/tag/:tag"
//	NormalizePath("/articles")                       // "/articles" (unchanged)
//	NormalizePath("/health")                         // "/health" (unchanged)
//
// Query parameters and trailing slashes are stripped before matching:
//
//	NormalizePath("/articles/rye-basics?ref=home")   // "/articles/:slug"
//	NormalizePath("/articles/rye-basics/")           // "/articles/:slug"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}

	// Static paths like /articles, /health, /metrics pass through unchanged
	return path
}
