// Package validate defines the Validator contract and the Result it returns.
//
// A Validator[T] inspects one value and reports success, or failure with one
// or more Failure entries. Ordinary validation failure is data, not an error:
// Run never panics or returns an error for a value that merely breaks the
// rule. Callers that want an error (for example at an API boundary) convert
// with Result.Err or Check, and can recognise the outcome with
// errors.Is(err, errors.ErrValidation).
//
// Validators are plain values. Everything in this package is stateless and
// safe to share between goroutines, and composes with All, First, Field, Each,
// Required and Optional. RunContext adds tracing, metrics and debug logging
// around a single run for code that has a context to hand.
//
// Types that already know how to validate themselves (HasValidate and
// HasValidateWithContext) are supported through Validate and Self.
package validate
