package rules

import (
	"regexp"

	"github.com/amp-labs/amp-validator/validate"
	"github.com/google/uuid"
)

// Matches accepts strings matching the regular expression pattern.
// description names the expected shape in the failure message; when empty
// the pattern itself is shown. An invalid pattern panics, as with
// regexp.MustCompile.
func Matches(pattern, description string) validate.Validator[string] {
	re := regexp.MustCompile(pattern)

	if description == "" {
		description = "pattern " + pattern
	}

	return validate.Predicate(CodePattern, "must match "+description, re.MatchString)
}

// UUID accepts any form google/uuid can parse (canonical, braced, urn:uuid:
// or bare hex).
func UUID() validate.Validator[string] {
	return validate.Predicate(CodeUUID, "must be a valid UUID", func(s string) bool {
		return uuid.Validate(s) == nil
	})
}
