// Package spans wraps operations in OpenTelemetry spans. The tracer travels
// on the context (see WithTracer), so library code can trace without a
// global provider and without caring whether tracing is configured at all.
package spans

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// StartVal returns an orchestrator; calling Enter runs f inside a span named
// name and returns f's value.
//
//	res := spans.StartVal[Result](ctx, "validate.email").Enter(
//	    func(ctx context.Context, span trace.Span) Result {
//	        return v.Run(value)
//	    })
func StartVal[Value any](ctx context.Context, name string, opts ...Option) *StartValueOrchestrator[Value] {
	return &StartValueOrchestrator[Value]{
		ctx:  ctx,
		name: name,
		opts: opts,
	}
}

// StartValErr is StartVal for functions that can fail. A returned error is
// recorded on the span and sets its status to Error.
func StartValErr[Value any](ctx context.Context, name string, opts ...Option) *StartValueErrorOrchestrator[Value] {
	return &StartValueErrorOrchestrator[Value]{
		ctx:  ctx,
		name: name,
		opts: opts,
	}
}

// StartValueOrchestrator holds the span settings captured by StartVal until
// Enter runs the traced function. It is single use in practice, though
// calling Enter again starts a fresh span.
type StartValueOrchestrator[T any] struct {
	ctx  context.Context //nolint:containedctx
	name string
	opts []Option
}

// Enter runs f in the span and returns its value. f receives the span's
// context, so spans started inside it become children. A nil f returns the
// zero value without starting a span.
func (o *StartValueOrchestrator[T]) Enter(f func(ctx context.Context, span trace.Span) T) T {
	if f == nil {
		var zero T

		return zero
	}

	value, _ := run(o.ctx, o.name, func(ctx context.Context, span trace.Span) (T, error) {
		return f(ctx, span), nil
	}, o.opts...)

	return value
}

// StartValueErrorOrchestrator is the StartValErr counterpart of
// StartValueOrchestrator.
type StartValueErrorOrchestrator[T any] struct {
	ctx  context.Context //nolint:containedctx
	name string
	opts []Option
}

// Enter runs f in the span. A non-nil error is recorded as a span event and
// sets the status to Error, prefixed by WithErrorMessage when given;
// otherwise the status is Ok. A nil f returns zero values.
//
// Example:
//
//	res, err := spans.StartValErr[Result](ctx, "validate.cli.value",
//	    spans.WithErrorMessage("writing result"),
//	).Enter(func(ctx context.Context, span trace.Span) (Result, error) {
//	    res := validate.RunContext(ctx, v, value)
//
//	    return res, write(res)
//	})
func (o *StartValueErrorOrchestrator[T]) Enter(f func(ctx context.Context, span trace.Span) (T, error)) (T, error) {
	if f == nil {
		var zero T

		return zero, nil
	}

	return run(o.ctx, o.name, f, o.opts...)
}
