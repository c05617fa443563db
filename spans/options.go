package spans

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Option customizes how a span is started and finished.
type Option func(*runner)

// WithAttribute sets an attribute when the span starts.
func WithAttribute(key attribute.Key, value attribute.Value) Option {
	return func(r *runner) {
		r.sso = append(r.sso, trace.WithAttributes(attribute.KeyValue{
			Key:   key,
			Value: value,
		}))
	}
}

// WithSuccessMessage sets the status description used when the span
// succeeds. Note that the OpenTelemetry SDK only keeps descriptions on Error
// statuses, so this mostly matters for other tracer implementations.
func WithSuccessMessage(description string) Option {
	return func(r *runner) {
		r.success = description
	}
}

// WithErrorMessage prefixes the error text in the status description.
func WithErrorMessage(description string) Option {
	return func(r *runner) {
		r.failure = description
	}
}

// WithSpanDecorator runs f on the span before the operation, if it's
// recording. Use it for attributes that are costly to compute, since f is
// skipped entirely when the span is sampled out.
func WithSpanDecorator(f func(span trace.Span)) Option {
	return func(r *runner) {
		r.decorate = append(r.decorate, f)
	}
}
