package envutil

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	ErrBadEnvVar     = errors.New("error parsing environment variable")
	ErrEnvVarMissing = errors.New("missing environment variable")
)

// Reader carries the outcome of reading one configuration key: whether it
// was present, the parsed value, and any parse or validation error.
//
// Readers are immutable values. Options and methods such as WithDefault and
// Map return a new Reader, and errors stick: once a parse or validation step
// fails, later steps are skipped and Value reports the first failure,
// wrapped with ErrBadEnvVar and the key.
//
// A missing key is not an error by itself. Value reports ErrEnvVarMissing
// for it, but Default fills it in and IfMissing swaps in a caller error.
//
// Example:
//
//	maxLen, err := envutil.Int(ctx, "VALIDATE_MAX_LENGTH",
//	    envutil.Default(64),
//	    envutil.Validate(validate.AsCheckFunc(rules.Min(0))),
//	).Value()
type Reader[A any] struct {
	key     string
	present bool
	err     error

	value A
}

// Key is the configuration key the Reader was built for.
func (e Reader[A]) Key() string {
	return e.key
}

// Value returns the value, or an error if it was missing or failed to parse.
func (e Reader[A]) Value() (A, error) { //nolint:ireturn
	if e.err != nil {
		return e.value, fmt.Errorf("%w %s: %w", ErrBadEnvVar, e.key, e.err)
	}

	if !e.present {
		return e.value, fmt.Errorf("%w %s", ErrEnvVarMissing, e.key)
	}

	return e.value, nil
}

// ValueOrElse returns the value, or v if it is missing or invalid. Invalid
// values are logged so misconfiguration doesn't pass silently.
func (e Reader[A]) ValueOrElse(v A) A { //nolint:ireturn
	if e.present && e.err == nil {
		return e.value
	}

	if e.err != nil {
		slog.Warn("error reading environment variable, using fallback value",
			"key", e.key, "error", e.err, "fallback", v)
	}

	return v
}

func (e Reader[A]) HasValue() bool {
	return e.present && e.err == nil
}

func (e Reader[A]) HasError() bool {
	return e.err != nil
}

func (e Reader[A]) Error() error {
	return e.err
}

func (e Reader[A]) String() string {
	if e.present && e.err == nil {
		return fmt.Sprintf("%s=%v", e.key, e.value)
	}

	if e.err != nil {
		return fmt.Sprintf("%s=<error: %v>", e.key, e.err)
	}

	return e.key + "=<not set>"
}

func (e Reader[A]) WithErrorIfMissing(err error) Reader[A] { //nolint:ireturn
	if e.present || e.err != nil {
		return e
	}

	return Reader[A]{
		key: e.key,
		err: err,
	}
}

func (e Reader[A]) WithDefault(v A) Reader[A] { //nolint:ireturn
	if e.present {
		return e
	}

	return Reader[A]{
		key:     e.key,
		present: true,
		err:     e.err,
		value:   v,
	}
}

func (e Reader[A]) Map(f func(A) (A, error)) Reader[A] { //nolint:ireturn
	return Map(e, f)
}

// Map returns a new Reader with the value transformed by the given function.
// This can translate types, so it is more flexible than Reader.Map.
func Map[A any, B any](env Reader[A], f func(A) (B, error)) Reader[B] {
	if !env.present || env.err != nil {
		return Reader[B]{
			key:     env.key,
			present: env.present,
			err:     env.err,
		}
	}

	val, err := f(env.value)

	return Reader[B]{
		present: true,
		key:     env.key,
		err:     err,
		value:   val,
	}
}
