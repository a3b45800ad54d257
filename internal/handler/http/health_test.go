package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(_ context.Context) error { return s.err }

func TestHealthHandler_Healthy(t *testing.T) {
	handler := &HealthHandler{
		Store:        &stubPinger{},
		Version:      "test",
		BreakerState: func() string { return "closed" },
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("status = %q, want healthy", resp.Status)
	}
	if resp.Version != "test" {
		t.Errorf("version = %q, want test", resp.Version)
	}
	store, ok := resp.Checks["content_store"]
	if !ok {
		t.Fatal("content_store check missing")
	}
	if store.Status != "healthy" {
		t.Errorf("content_store = %q, want healthy", store.Status)
	}
	if store.Details["circuit_breaker"] != "closed" {
		t.Errorf("circuit_breaker = %v, want closed", store.Details["circuit_breaker"])
	}
}

func TestHealthHandler_StoreDown(t *testing.T) {
	handler := &HealthHandler{
		Store:   &stubPinger{err: errors.New("connection refused")},
		Version: "test",
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "unhealthy" {
		t.Errorf("status = %q, want unhealthy", resp.Status)
	}
}

func TestHealthHandler_StoreNotConfigured(t *testing.T) {
	handler := &HealthHandler{Version: "test"}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
}

func TestReadyHandler(t *testing.T) {
	cases := []struct {
		name     string
		store    StorePinger
		wantCode int
	}{
		{"ready", &stubPinger{}, http.StatusOK},
		{"store down", &stubPinger{err: errors.New("timeout")}, http.StatusServiceUnavailable},
		{"not configured", nil, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := &ReadyHandler{Store: tc.store}
			req := httptest.NewRequest(http.MethodGet, "/ready", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantCode)
			}
		})
	}
}

func TestLiveHandler(t *testing.T) {
	handler := &LiveHandler{}
	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if rr.Body.String() != "alive" {
		t.Errorf("body = %q, want alive", rr.Body.String())
	}
}
