// Package errors holds the sentinel errors shared across the validator
// packages, plus a small accumulator for collecting several errors into one.
package errors

import "errors"

var (
	// ErrValidation marks every error produced from a failed validation result.
	// Use errors.Is(err, ErrValidation) to tell validation failures apart from
	// other errors.
	ErrValidation = errors.New("validation failed")

	// ErrNilValue is matched by validation errors whose failures include a
	// missing required value (validate.Required, validate.NotNil,
	// validate.Self on a nil receiver), so callers can tell "absent" apart
	// from "present but wrong":
	//
	//	if errors.Is(err, errors.ErrNilValue) {
	//	    return http.StatusBadRequest, "missing field"
	//	}
	ErrNilValue = errors.New("nil value")

	// ErrValidatorPanic is returned by Validate when a value's own Validate
	// method panics. It is deliberately not an ErrValidation: the value was
	// never judged.
	ErrValidatorPanic = errors.New("validator panicked")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// Errors returns a copy of the collected errors, in insertion order.
func (c *Collection) Errors() []error {
	if len(c.errors) == 0 {
		return nil
	}

	out := make([]error, len(c.errors))
	copy(out, c.errors)

	return out
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
