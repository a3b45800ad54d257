// Package observability groups the observability infrastructure of the
// service: structured logging, Prometheus metrics, and OpenTelemetry
// tracing.
//
// Subpackages:
//   - logging: structured logging utilities built on log/slog
//   - tracing: OpenTelemetry tracing middleware and tracer access
//
// Prometheus metrics are registered per package via promauto next to the
// code they measure; there is no central registry here.
package observability
