// Package rules is a library of ready-made validators for common value
// shapes: strings, ordered values, sets of allowed values, patterns and
// identifiers.
//
// Every constructor returns a validate.Validator that is stateless and safe
// for concurrent use. Failures carry a stable Code (the Code* constants) and
// an English Message. Combine rules with validate.All or validate.First:
//
//	username := validate.Named("username", validate.All(
//	    rules.NotBlank(),
//	    rules.LengthBetween(3, 32),
//	    rules.Matches(`^[a-z0-9_]+$`, "lowercase letters, digits and underscores"),
//	))
//
// Strings are never nil in Go. For optional or nullable input, validate a
// *string with validate.Required (nil fails) or validate.Optional (nil passes).
package rules

// Failure codes reported by this package.
const (
	CodeEmpty    = "empty"
	CodeBlank    = "blank"
	CodeTooShort = "too_short"
	CodeTooLong  = "too_long"
	CodePattern  = "pattern"
	CodeOneOf    = "one_of"
	CodeTooSmall = "too_small"
	CodeTooLarge = "too_large"
	CodeNaN      = "nan"
	CodeUUID     = "uuid"
)
