package validate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amp-labs/amp-validator/contexts"
	commonErrors "github.com/amp-labs/amp-validator/errors"
	"github.com/amp-labs/amp-validator/logger"
)

// Validator is a validation rule for values of type T.
//
// Run reports whether value satisfies the rule. A value that breaks the rule
// yields a failed Result with at least one Failure; Run does not panic or
// signal an error for it. Implementations should be free of side effects so
// they can be reused, composed and called concurrently.
type Validator[T any] interface {
	Run(value T) Result
}

// Func adapts a plain function to the Validator interface. A nil Func
// accepts everything.
type Func[T any] func(value T) Result

var _ Validator[string] = Func[string](nil)

func (f Func[T]) Run(value T) Result {
	if f == nil {
		return Success()
	}

	return f(value)
}

// Predicate builds a validator from a boolean check; values for which ok
// returns false fail with the given code and message.
func Predicate[T any](code, message string, ok func(T) bool) Validator[T] {
	return Func[T](func(value T) Result {
		if ok == nil || ok(value) {
			return Success()
		}

		return Fail(code, message)
	})
}

// FromError adapts an error-returning check. A nil error is success. An
// *Error keeps its Result, a Failure is kept as-is, and any other error
// becomes a single failure with CodeInvalid and the error's text.
func FromError[T any](check func(T) error) Validator[T] {
	return Func[T](func(value T) Result {
		if check == nil {
			return Success()
		}

		return resultFromError(check(value))
	})
}

func resultFromError(err error) Result {
	if err == nil {
		return Success()
	}

	var verr *Error
	if errors.As(err, &verr) {
		return verr.Result()
	}

	var failure Failure
	if errors.As(err, &failure) {
		return Failed(failure)
	}

	return Fail(CodeInvalid, err.Error())
}

// HasValidate is implemented by types that can validate themselves.
type HasValidate interface {
	Validate() error
}

// HasValidateWithContext is HasValidate for checks that need a context.
type HasValidateWithContext interface {
	Validate(ctx context.Context) error
}

// Self returns a validator that defers to the value's own Validate method.
// Nil-ish values fail with CodeRequired rather than being dereferenced.
func Self[T HasValidate]() Validator[T] {
	return Func[T](func(value T) Result {
		if isNilish(value) {
			return Fail(CodeRequired, "value is required")
		}

		return resultFromError(value.Validate())
	})
}

// Validate checks any value that implements HasValidate or
// HasValidateWithContext. Failures are wrapped with errors.ErrValidation
// unless the context disables wrapping (see WithWrappedError).
//
// Nil-ish values and values that implement neither interface pass; the
// latter is logged as a warning since it usually means a missing method.
func Validate(ctx context.Context, value any) error {
	ctx = contexts.EnsureContext(ctx)

	start := time.Now()
	err := validateInternal(ctx, value)
	observe(fmt.Sprintf("%T", value), err == nil, time.Since(start))

	if err == nil {
		return nil
	}

	var pe *panicError
	if errors.As(err, &pe) {
		return pe.cause
	}

	if !wantWrappedErrors(ctx) || errors.Is(err, commonErrors.ErrValidation) {
		return err
	}

	return fmt.Errorf("%w: %w", commonErrors.ErrValidation, err)
}

func validateInternal(ctx context.Context, value any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{cause: fmt.Errorf("%w: %v", commonErrors.ErrValidatorPanic, r)}
		}
	}()

	if isNilish(value) {
		return nil
	}

	switch v := value.(type) {
	case HasValidate:
		return v.Validate()
	case HasValidateWithContext:
		return v.Validate(ctx)
	default:
		logger.Get(ctx).Warn("Validate called on unsupported type",
			"type", fmt.Sprintf("%T", v))

		return nil
	}
}

// panicError marks a recovered panic so Validate can skip the
// ErrValidation wrapping.
type panicError struct {
	cause error
}

func (p *panicError) Error() string {
	return p.cause.Error()
}
