package validate

import (
	"context"
	"time"

	"github.com/amp-labs/amp-validator/contexts"
	"github.com/amp-labs/amp-validator/logger"
	"github.com/amp-labs/amp-validator/spans"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type instrumented[T any] struct {
	name  string
	inner Validator[T]
}

func (i *instrumented[T]) Run(value T) Result {
	start := time.Now()
	res := i.inner.Run(value)
	observe(i.name, res.IsSuccess(), time.Since(start))

	return res
}

func (i *instrumented[T]) Name() string {
	return i.name
}

// Instrument wraps v so that every Run is counted and timed in Prometheus
// under v's name (see Named).
//
// Instrumenting twice doesn't double count, including through names:
// Instrument(Named("b", Instrument(a))) records each run once, under "b".
//
// Example:
//
//	var emailValidator = validate.Instrument(validate.Named("email", validate.All(
//	    rules.NotBlank(),
//	    rules.MaxLength(254),
//	)))
func Instrument[T any](v Validator[T]) Validator[T] {
	if inst, ok := v.(*instrumented[T]); ok {
		return inst
	}

	return &instrumented[T]{name: NameOf(v), inner: uninstrumented(v)}
}

// uninstrumented strips every instrumented layer reachable through named
// wrappers, keeping the names. The result records no metrics of its own.
func uninstrumented[T any](v Validator[T]) Validator[T] {
	out, _ := stripInstrumentation(v)

	return out
}

// stripInstrumentation reports whether anything was removed. Validators may
// be uncomparable (Func), so changes are tracked rather than compared.
func stripInstrumentation[T any](v Validator[T]) (Validator[T], bool) {
	switch w := v.(type) {
	case *instrumented[T]:
		inner, _ := stripInstrumentation(w.inner)

		return inner, true
	case *named[T]:
		if inner, changed := stripInstrumentation(w.inner); changed {
			return &named[T]{name: w.name, inner: inner}, true
		}
	}

	return v, false
}

// RunContext runs v once on behalf of a caller holding a context. On top of
// the metrics recorded by Instrument it:
//   - opens a "validate.<name>" span when ctx carries a tracer
//     (spans.WithTracer), annotated with the outcome and failure codes
//   - logs failures at debug level through the context logger
//
// A failed Result is an expected outcome and leaves the span status OK.
func RunContext[T any](ctx context.Context, v Validator[T], value T) Result {
	ctx = contexts.EnsureContext(ctx)
	name := NameOf(v)

	// Metrics are recorded below, so instrumented layers must not count too.
	v = uninstrumented(v)

	return spans.StartVal[Result](ctx, "validate."+name,
		spans.WithAttribute("validator", attribute.StringValue(name)),
	).Enter(func(ctx context.Context, span trace.Span) Result {
		start := time.Now()
		res := v.Run(value)
		observe(name, res.IsSuccess(), time.Since(start))

		span.SetAttributes(
			attribute.Bool("validation.success", res.IsSuccess()),
			attribute.Int("validation.failures", len(res.failures)),
		)

		if res.IsFailure() {
			span.SetAttributes(attribute.StringSlice("validation.codes", res.Codes()))

			logger.Get(ctx).Debug("validation failed",
				"validator", name,
				"failures", res.Messages())
		}

		return res
	})
}
