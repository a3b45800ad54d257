package requestid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFromContext_Empty(t *testing.T) {
	if got := FromContext(context.Background()); got != "" {
		t.Errorf("FromContext = %q, want empty", got)
	}
}

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc-123")
	if got := FromContext(ctx); got != "abc-123" {
		t.Errorf("FromContext = %q, want abc-123", got)
	}
}

func TestMiddleware_GeneratesID(t *testing.T) {
	var seen string
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if seen == "" {
		t.Error("no request ID in handler context")
	}
	if got := rr.Header().Get(RequestIDHeader); got != seen {
		t.Errorf("response header = %q, context = %q", got, seen)
	}
}

func TestMiddleware_PropagatesExistingID(t *testing.T) {
	var seen string
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	req.Header.Set(RequestIDHeader, "client-supplied")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if seen != "client-supplied" {
		t.Errorf("context ID = %q, want client-supplied", seen)
	}
	if got := rr.Header().Get(RequestIDHeader); got != "client-supplied" {
		t.Errorf("response header = %q, want client-supplied", got)
	}
}
