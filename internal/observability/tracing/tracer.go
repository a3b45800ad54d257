// Package tracing provides OpenTelemetry tracing integration: HTTP
// middleware that opens a server span per request and a shared tracer for
// creating spans elsewhere in the service.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the shared tracer instance for the backbar service.
var tracer = otel.Tracer("backbar")

// GetTracer returns the shared tracer for creating spans.
//
//	ctx, span := tracing.GetTracer().Start(ctx, "operation-name")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}
