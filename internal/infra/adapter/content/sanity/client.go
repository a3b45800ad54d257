package sanity

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"backbar/internal/resilience/circuitbreaker"
	"backbar/internal/repository"
)

// maxResponseBody caps how much of a store response is read, preventing
// memory exhaustion from a misbehaving upstream.
const maxResponseBody = 10 * 1024 * 1024 // 10MB

// Client issues GROQ queries against the Sanity query endpoint.
//
// Thread safety: Client is safe for concurrent use.
type Client struct {
	http    *http.Client
	breaker *circuitbreaker.CircuitBreaker
	limiter *rate.Limiter
	config  Config
}

// NewClient creates a ready-to-use content store client from the given
// configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		http: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				TLSClientConfig: &tls.Config{
					MinVersion: tls.VersionTLS12,
				},
			},
		},
		breaker: circuitbreaker.New(circuitbreaker.ContentStoreConfig()),
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		config:  cfg,
	}
}

// BreakerState reports the current circuit breaker state for health checks.
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}

// envelope is the wire shape of a query response.
type envelope struct {
	Result json.RawMessage `json:"result"`
	Ms     float64         `json:"ms"`
}

// Query executes a parameterized GROQ query and unmarshals the result into
// out. name labels the query in metrics and must be a bounded set of values.
//
// The request inherits the client timeout and passes through the outbound
// rate limiter and the circuit breaker. Transport failures, non-200
// responses, and malformed bodies are wrapped in
// repository.ErrStoreUnavailable.
func (c *Client) Query(ctx context.Context, name string, q Query, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		recordQueryError(name, "ratelimit")
		return fmt.Errorf("%w: rate limiter: %s", repository.ErrStoreUnavailable, err)
	}

	start := time.Now()
	raw, err := c.breaker.Execute(func() (interface{}, error) {
		return c.do(ctx, name, q)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			recordQueryError(name, "breaker")
			return fmt.Errorf("%w: circuit open", repository.ErrStoreUnavailable)
		}
		return err
	}
	recordQuery(name, time.Since(start))

	result := raw.(json.RawMessage)
	if out == nil || len(result) == 0 || string(result) == "null" {
		return nil
	}
	if err := json.Unmarshal(result, out); err != nil {
		recordQueryError(name, "decode")
		return fmt.Errorf("%w: decode result: %s", repository.ErrStoreUnavailable, err)
	}
	return nil
}

// do performs the HTTP round trip and returns the raw result payload.
func (c *Client) do(ctx context.Context, name string, q Query) (json.RawMessage, error) {
	values, err := q.Encode()
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v%s/data/query/%s?%s",
		c.config.Origin(), c.config.APIVersion, c.config.Dataset, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build store request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		recordQueryError(name, "transport")
		return nil, fmt.Errorf("%w: %s", repository.ErrStoreUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		recordQueryError(name, "transport")
		return nil, fmt.Errorf("%w: read response: %s", repository.ErrStoreUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		recordQueryError(name, "status")
		return nil, fmt.Errorf("%w: store returned %d", repository.ErrStoreUnavailable, resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		recordQueryError(name, "decode")
		return nil, fmt.Errorf("%w: decode envelope: %s", repository.ErrStoreUnavailable, err)
	}
	return env.Result, nil
}
