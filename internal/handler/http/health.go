// Package http provides the HTTP handlers and middleware of the service:
// article routes, health check endpoints, metrics collection, and the
// middleware chain applied in cmd/api.
package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`   // Application version
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`            // "healthy" or "unhealthy"
	Message string         `json:"message,omitempty"` // Optional status message
	Details map[string]any `json:"details,omitempty"` // Optional additional details
}

// StorePinger is the slice of the content-store repository the health
// endpoints need: a cheap reachability probe.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check endpoint requests. It probes the
// remote content store and reports the circuit breaker state for
// operational monitoring.
type HealthHandler struct {
	Store   StorePinger
	Version string

	// BreakerState reports the content-store circuit breaker state
	// (closed/open/half-open). Optional.
	BreakerState func() string
}

// ServeHTTP performs health checks and returns the application health
// status. Returns 200 OK if healthy, or 503 Service Unavailable if the
// content store is unreachable.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	allHealthy := true

	storeCheck := h.checkContentStore(ctx)
	checks["content_store"] = storeCheck
	if storeCheck.Status == "unhealthy" {
		allHealthy = false
	}

	status := "healthy"
	statusCode := http.StatusOK
	if !allHealthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("health: failed to encode response: %v", err)
	}
}

// checkContentStore probes the remote content store.
//
// An open circuit breaker is reported as a detail, not a failure: the
// breaker opening is the service protecting itself, and readiness is
// already governed by /ready.
func (h *HealthHandler) checkContentStore(ctx context.Context) CheckStatus {
	if h.Store == nil {
		return CheckStatus{
			Status:  "unhealthy",
			Message: "not configured",
		}
	}

	details := make(map[string]any)
	if h.BreakerState != nil {
		details["circuit_breaker"] = h.BreakerState()
	}

	if err := h.Store.Ping(ctx); err != nil {
		return CheckStatus{
			Status:  "unhealthy",
			Message: err.Error(),
			Details: details,
		}
	}

	return CheckStatus{
		Status:  "healthy",
		Details: details,
	}
}

// ReadyHandler handles Kubernetes readiness probe requests. It checks that
// the content store answers a cheap query before the pod accepts traffic.
type ReadyHandler struct {
	Store StorePinger
}

// ServeHTTP performs readiness checks and returns 200 OK if ready,
// or 503 Service Unavailable if the content store is not reachable.
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.Store == nil {
		http.Error(w, "content store not configured", http.StatusServiceUnavailable)
		return
	}

	if err := h.Store.Ping(ctx); err != nil {
		http.Error(w, "content store not ready: "+err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ready")); err != nil {
		log.Printf("ready: failed to write response: %v", err)
	}
}

// LiveHandler handles Kubernetes liveness probe requests. It performs a
// lightweight check to verify the application is responsive.
type LiveHandler struct{}

// ServeHTTP performs a simple liveness check and always returns 200 OK
// if the application is running and able to respond.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("alive")); err != nil {
		log.Printf("alive: failed to write response: %v", err)
	}
}
