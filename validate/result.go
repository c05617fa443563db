package validate

import (
	"strings"

	"github.com/amp-labs/amp-validator/errors"
)

// Failure codes used by this module. Validators defined elsewhere are free
// to use their own.
const (
	CodeInvalid  = "invalid"
	CodeRequired = "required"
)

// Failure describes one reason a value was rejected.
type Failure struct {
	// Field is a dotted path to the offending part of the value, such as
	// "user.email" or "items[2]". It is empty when the value itself failed.
	Field string `json:"field,omitempty"`

	// Code is a short machine-readable key, e.g. "empty" or "too_short".
	Code string `json:"code"`

	// Message is the human-readable explanation.
	Message string `json:"message"`
}

// NewFailure returns a Failure with no field path.
func NewFailure(code, message string) Failure {
	return Failure{Code: code, Message: message}
}

func (f Failure) Error() string {
	if f.Field == "" {
		return f.Message
	}

	return f.Field + ": " + f.Message
}

func (f Failure) withField(prefix string) Failure {
	switch {
	case prefix == "":
	case f.Field == "":
		f.Field = prefix
	case strings.HasPrefix(f.Field, "["):
		f.Field = prefix + f.Field
	default:
		f.Field = prefix + "." + f.Field
	}

	return f
}

// Result is the outcome of running a validator. The zero value is a success.
// Results are immutable; every method that "changes" one returns a copy.
type Result struct {
	failures []Failure
}

// Success returns a successful Result.
func Success() Result {
	return Result{}
}

// Failed returns a failed Result carrying the given failures. A failed result
// always explains itself: with no failures given, a generic one is used.
func Failed(failures ...Failure) Result {
	if len(failures) == 0 {
		return Result{failures: []Failure{NewFailure(CodeInvalid, "validation failed")}}
	}

	out := make([]Failure, len(failures))
	copy(out, failures)

	return Result{failures: out}
}

// Fail is shorthand for Failed(NewFailure(code, message)).
func Fail(code, message string) Result {
	return Failed(NewFailure(code, message))
}

// IsSuccess reports whether the value passed. It is the exact opposite of
// IsFailure; the zero Result is a success.
func (r Result) IsSuccess() bool {
	return len(r.failures) == 0
}

// IsFailure reports whether the value was rejected. A failed Result always
// carries at least one Failure, so Failures, Messages and Codes are never
// empty when this is true.
func (r Result) IsFailure() bool {
	return len(r.failures) > 0
}

// Failures returns a copy of the failures, in the order they were reported.
func (r Result) Failures() []Failure {
	if len(r.failures) == 0 {
		return nil
	}

	out := make([]Failure, len(r.failures))
	copy(out, r.failures)

	return out
}

// Messages returns each failure rendered as text (field path included).
func (r Result) Messages() []string {
	if len(r.failures) == 0 {
		return nil
	}

	out := make([]string, len(r.failures))
	for i, f := range r.failures {
		out[i] = f.Error()
	}

	return out
}

// Codes returns the failure codes, in order, duplicates included.
func (r Result) Codes() []string {
	if len(r.failures) == 0 {
		return nil
	}

	out := make([]string, len(r.failures))
	for i, f := range r.failures {
		out[i] = f.Code
	}

	return out
}

// Merge returns a Result holding r's failures followed by other's.
func (r Result) Merge(other Result) Result {
	switch {
	case other.IsSuccess():
		return r
	case r.IsSuccess():
		return other
	}

	out := make([]Failure, 0, len(r.failures)+len(other.failures))
	out = append(out, r.failures...)
	out = append(out, other.failures...)

	return Result{failures: out}
}

// WithField nests every failure under prefix: "" becomes "prefix",
// "name" becomes "prefix.name" and "[0]" becomes "prefix[0]".
func (r Result) WithField(prefix string) Result {
	if prefix == "" || r.IsSuccess() {
		return r
	}

	out := make([]Failure, len(r.failures))
	for i, f := range r.failures {
		out[i] = f.withField(prefix)
	}

	return Result{failures: out}
}

// Err returns nil for a successful Result, and an *Error otherwise.
func (r Result) Err() error {
	if r.IsSuccess() {
		return nil
	}

	return &Error{result: r}
}

// String renders "ok" or "failed: " followed by the messages, joined with
// "; ". It is meant for logs and test output, not for parsing.
func (r Result) String() string {
	if r.IsSuccess() {
		return "ok"
	}

	return "failed: " + strings.Join(r.Messages(), "; ")
}

// joined returns the failures as a plain joined error, without the
// ErrValidation marker.
func (r Result) joined() error {
	var errs errors.Collection

	for _, f := range r.failures {
		errs.Add(f)
	}

	return errs.GetError()
}

// Error is the error form of a failed Result. It matches
// errors.Is(err, errors.ErrValidation), and errors.As can extract either the
// *Error (to recover the Result) or the first Failure. When any failure has
// CodeRequired it also matches errors.ErrNilValue.
type Error struct {
	result Result
}

func (e *Error) Error() string {
	return errors.ErrValidation.Error() + ": " + strings.Join(e.result.Messages(), "; ")
}

func (e *Error) Unwrap() []error {
	out := make([]error, 0, len(e.result.failures)+2) //nolint:mnd
	out = append(out, errors.ErrValidation)

	missing := false

	for _, f := range e.result.failures {
		out = append(out, f)
		missing = missing || f.Code == CodeRequired
	}

	if missing {
		out = append(out, errors.ErrNilValue)
	}

	return out
}

// Result returns the failed Result this error was made from.
func (e *Error) Result() Result {
	return e.result
}
