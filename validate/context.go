package validate

import (
	"context"

	"github.com/amp-labs/amp-validator/contexts"
)

type contextKey string

// wantWrappedErrorsKey holds the caller's preference for wrapping validation
// errors with errors.ErrValidation. Absent means true.
const wantWrappedErrorsKey contextKey = "wantWrappedErrors"

// WithWrappedError sets whether Validate and Check wrap failures with
// errors.ErrValidation (the default). With wrapping off, callers get the
// underlying failure errors only, which is useful when the message is shown
// to a user as-is.
//
//	ctx = validate.WithWrappedError(ctx, false)
//	err := validate.Check(ctx, rules.NonEmpty(), "")
//	fmt.Println(err) // value must not be empty
func WithWrappedError(ctx context.Context, wantWrapped bool) context.Context {
	return contexts.WithValue(ctx, wantWrappedErrorsKey, wantWrapped)
}

func wantWrappedErrors(ctx context.Context) bool {
	return contexts.GetValueOr(ctx, wantWrappedErrorsKey, true)
}
