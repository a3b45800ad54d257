// Package middleware provides HTTP middleware for the handler layer that is
// specific enough not to live in the parent package, currently the
// geography-based access gate.
package middleware

import (
	"net/http"
	"strings"
)

// restrictedPage is the fixed response body served to blocked regions. It is
// deliberately static: no templating, no request data, identical bytes for
// every denied request.
const restrictedPage = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Access Restricted | BACKBAR</title>
    <style>
      * { margin: 0; padding: 0; box-sizing: border-box; }
      body {
        font-family: 'Roboto', -apple-system, BlinkMacSystemFont, sans-serif;
        background-color: #002228;
        color: #ffffff;
        min-height: 100vh;
        display: flex;
        align-items: center;
        justify-content: center;
        text-align: center;
        padding: 20px;
      }
      .container { max-width: 500px; }
      h1 {
        font-size: 32px;
        margin-bottom: 16px;
        color: #c9a227;
      }
      p {
        font-size: 16px;
        opacity: 0.9;
        line-height: 1.6;
      }
    </style>
  </head>
  <body>
    <div class="container">
      <h1>Access Restricted</h1>
      <p>BACKBAR is not available in your region.</p>
    </div>
  </body>
</html>
`

// exemptSuffixes are static-asset extensions the gate never blocks.
var exemptSuffixes = []string{".png", ".jpg", ".svg", ".ico"}

// exemptPrefixes are path prefixes the gate never blocks: static assets and
// the operational endpoints probes must always reach.
var exemptPrefixes = []string{"/static/"}

// exemptPaths are exact paths the gate never blocks.
var exemptPaths = map[string]struct{}{
	"/favicon.ico": {},
	"/health":      {},
	"/ready":       {},
	"/live":        {},
	"/metrics":     {},
}

// GeoGate blocks requests from configured countries based on a trusted
// edge-provided country header.
//
// The decision is made before any downstream component runs: a blocked
// request never reaches a handler and never triggers a content-store query.
// An absent or unrecognized header value allows the request (fail-open);
// the gate restricts regions, it does not authenticate anyone.
type GeoGate struct {
	cfg GeoConfig
}

// NewGeoGate creates a geography gate from the given configuration. The
// configuration is immutable after construction; changing the blocklist
// means restarting the process.
func NewGeoGate(cfg GeoConfig) *GeoGate {
	return &GeoGate{cfg: cfg}
}

// Middleware returns the gate as a standard middleware function.
func (g *GeoGate) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isExempt(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			country := strings.ToUpper(strings.TrimSpace(r.Header.Get(g.cfg.CountryHeader)))
			if g.cfg.IsBlocked(country) {
				recordDecision("deny", country)
				w.Header().Set("Content-Type", "text/html")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(restrictedPage))
				return
			}

			recordDecision("allow", country)
			next.ServeHTTP(w, r)
		})
	}
}

// isExempt reports whether the path bypasses the gate entirely.
func isExempt(path string) bool {
	if _, ok := exemptPaths[path]; ok {
		return true
	}
	for _, prefix := range exemptPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	for _, suffix := range exemptSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}
