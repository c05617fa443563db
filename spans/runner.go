package spans

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type runner struct {
	spanName string
	success  string
	failure  string
	sso      []trace.SpanStartOption
	decorate []func(span trace.Span)
}

func newRunner(spanName string, opts ...Option) *runner {
	r := &runner{spanName: spanName}

	for _, option := range opts {
		if option != nil {
			option(r)
		}
	}

	return r
}

func (r *runner) setErrorStatus(span trace.Span, err error) {
	if len(r.failure) > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%s: %s", r.failure, err.Error()))
	} else {
		span.SetStatus(codes.Error, err.Error())
	}
}

func (r *runner) setSuccessStatus(span trace.Span) {
	if len(r.success) > 0 {
		span.SetStatus(codes.Ok, r.success)
	} else {
		span.SetStatus(codes.Ok, "ok")
	}
}

// run wraps call in a span from the context's tracer. Without a tracer the
// call still runs, against whatever span the context already carries.
// Panics are recorded on the span and then re-raised.
func run[T any](
	ctx context.Context, name string,
	call func(ctx context.Context, span trace.Span) (T, error), opts ...Option,
) (valOut T, errOut error) {
	tracer, found := TracerFromContext(ctx)
	if !found || tracer == nil {
		spanWithoutTracerCounter.WithLabelValues(name).Inc()

		return call(ctx, trace.SpanFromContext(ctx))
	}

	r := newRunner(name, opts...)

	startOpts := make([]trace.SpanStartOption, 0, len(r.sso)+1)
	startOpts = append(startOpts, r.sso...)
	// Spans here wrap in-process work; they are never the server or client
	// side of a call.
	startOpts = append(startOpts, trace.WithSpanKind(trace.SpanKindInternal))

	ctx, span := tracer.Start(ctx, r.spanName, startOpts...)

	defer func() {
		defer span.End()

		if panicErr := recover(); panicErr != nil {
			span.SetAttributes(attribute.Int64("panic", 1))
			r.setErrorStatus(span, fmt.Errorf("panic: %v", panicErr)) //nolint:err113

			panic(panicErr)
		}
	}()

	if span.IsRecording() {
		for _, decorate := range r.decorate {
			if decorate != nil {
				decorate(span)
			}
		}
	}

	val, err := call(ctx, span)
	if err != nil {
		span.RecordError(err)
		r.setErrorStatus(span, err)
	} else {
		r.setSuccessStatus(span)
	}

	return val, err
}
