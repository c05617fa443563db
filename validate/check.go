package validate

import (
	"context"

	"github.com/amp-labs/amp-validator/logger"
)

// Check runs v through RunContext and converts the outcome to an error.
// Success is nil. Failure is a *Error matching errors.ErrValidation and
// annotated with the validator name and failure codes for logging, unless
// the context turned wrapping off (WithWrappedError), in which case the
// failures are returned as a plain joined error.
func Check[T any](ctx context.Context, v Validator[T], value T) error {
	res := RunContext(ctx, v, value)
	if res.IsSuccess() {
		return nil
	}

	if !wantWrappedErrors(ctx) {
		return res.joined()
	}

	return logger.AnnotateError(res.Err(),
		"validator", NameOf(v),
		"failure_codes", res.Codes())
}

// AsCheckFunc turns v into an error-returning check, for APIs that take a
// func(T) error such as envutil.Validate.
func AsCheckFunc[T any](v Validator[T]) func(T) error {
	return func(value T) error {
		return v.Run(value).Err()
	}
}
