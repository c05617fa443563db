package spans

import (
	"context"

	"github.com/amp-labs/amp-validator/contexts"
	"go.opentelemetry.io/otel/trace"
)

type contextKey string

// TracerKey is the context key holding the trace.Tracer used by StartVal and
// StartValErr.
const TracerKey contextKey = "tracer"

// WithTracer returns a context whose spans are created by tracer.
func WithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	return contexts.WithValue[contextKey, trace.Tracer](ctx, TracerKey, tracer)
}

// TracerFromContext returns the tracer installed by WithTracer, if any.
func TracerFromContext(ctx context.Context) (trace.Tracer, bool) {
	return contexts.GetValue[contextKey, trace.Tracer](ctx, TracerKey)
}
