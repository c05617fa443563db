package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/amp-labs/amp-validator/validate"
	"golang.org/x/text/unicode/norm"
)

// NonEmpty rejects the empty string. Whitespace counts as content; use
// NotBlank to reject it too.
func NonEmpty() validate.Validator[string] {
	return validate.Predicate(CodeEmpty, "value must not be empty", func(s string) bool {
		return s != ""
	})
}

// NotBlank rejects strings that are empty or only whitespace.
func NotBlank() validate.Validator[string] {
	return validate.Predicate(CodeBlank, "value must not be blank", func(s string) bool {
		return strings.TrimSpace(s) != ""
	})
}

// length counts characters the way a reader would: in code points, after
// NFC normalization, so "é" is one character whether or not it arrived
// precomposed.
func length(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

// MinLength rejects strings shorter than minLen characters.
func MinLength(minLen int) validate.Validator[string] {
	return validate.Predicate(CodeTooShort,
		fmt.Sprintf("must be at least %d characters long", minLen),
		func(s string) bool {
			return length(s) >= minLen
		})
}

// MaxLength rejects strings longer than maxLen characters.
func MaxLength(maxLen int) validate.Validator[string] {
	return validate.Predicate(CodeTooLong,
		fmt.Sprintf("must be at most %d characters long", maxLen),
		func(s string) bool {
			return length(s) <= maxLen
		})
}

// LengthBetween accepts strings of minLen to maxLen characters inclusive.
// It panics if minLen > maxLen.
func LengthBetween(minLen, maxLen int) validate.Validator[string] {
	if minLen > maxLen {
		panic(fmt.Sprintf("rules.LengthBetween: min %d is greater than max %d", minLen, maxLen))
	}

	message := fmt.Sprintf("must be between %d and %d characters long", minLen, maxLen)

	return validate.Func[string](func(s string) validate.Result {
		switch n := length(s); {
		case n < minLen:
			return validate.Fail(CodeTooShort, message)
		case n > maxLen:
			return validate.Fail(CodeTooLong, message)
		default:
			return validate.Success()
		}
	})
}
