package tracing

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

const (
	// MetadataKey, gRPC metadata'sında trace kimliğini taşır.
	MetadataKey = "x-trace-id"
	// HeaderKey, HTTP isteklerinde trace kimliğini taşır.
	HeaderKey = "X-Trace-Id"
)

// TraceID picks the request trace id: the caller supplied value, else the
// active OpenTelemetry span, else a fresh UUID.
func TraceID(ctx context.Context, incoming string) string {
	if incoming != "" {
		return incoming
	}
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		return sc.TraceID().String()
	}
	return uuid.NewString()
}
