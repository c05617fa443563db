package rules

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/amp-labs/amp-validator/validate"
)

// OneOf accepts only the listed values.
func OneOf[T comparable](allowed ...T) validate.Validator[T] {
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = fmt.Sprint(a)
	}

	set := slices.Clone(allowed)

	return validate.Predicate(CodeOneOf, "must be one of: "+strings.Join(names, ", "),
		func(value T) bool {
			return slices.Contains(set, value)
		})
}

// isNaN reports whether v is a floating-point NaN. NaN is the only value of
// a cmp.Ordered type that is not equal to itself.
func isNaN[T cmp.Ordered](v T) bool {
	return v != v //nolint:gocritic,staticcheck
}

// ordered runs check only on values that have a place in the order. NaN
// fails every bound with CodeNaN, since it is neither above nor below one.
func ordered[T cmp.Ordered](check func(T) validate.Result) validate.Validator[T] {
	return validate.Func[T](func(value T) validate.Result {
		if isNaN(value) {
			return validate.Fail(CodeNaN, "must be a number")
		}

		return check(value)
	})
}

func mustBeOrdered[T cmp.Ordered](rule string, bounds ...T) {
	for _, b := range bounds {
		if isNaN(b) {
			panic("rules." + rule + ": bound is NaN")
		}
	}
}

// Min rejects values below minValue. NaN input fails with CodeNaN, and a NaN
// bound panics.
func Min[T cmp.Ordered](minValue T) validate.Validator[T] {
	mustBeOrdered("Min", minValue)

	message := fmt.Sprintf("must be at least %v", minValue)

	return ordered(func(value T) validate.Result {
		if cmp.Compare(value, minValue) < 0 {
			return validate.Fail(CodeTooSmall, message)
		}

		return validate.Success()
	})
}

// Max rejects values above maxValue. NaN input fails with CodeNaN, and a NaN
// bound panics.
func Max[T cmp.Ordered](maxValue T) validate.Validator[T] {
	mustBeOrdered("Max", maxValue)

	message := fmt.Sprintf("must be at most %v", maxValue)

	return ordered(func(value T) validate.Result {
		if cmp.Compare(value, maxValue) > 0 {
			return validate.Fail(CodeTooLarge, message)
		}

		return validate.Success()
	})
}

// Between accepts values in [minValue, maxValue]. NaN input fails with
// CodeNaN. It panics if minValue > maxValue or either bound is NaN.
func Between[T cmp.Ordered](minValue, maxValue T) validate.Validator[T] {
	mustBeOrdered("Between", minValue, maxValue)

	if cmp.Compare(minValue, maxValue) > 0 {
		panic(fmt.Sprintf("rules.Between: min %v is greater than max %v", minValue, maxValue))
	}

	message := fmt.Sprintf("must be between %v and %v", minValue, maxValue)

	return ordered(func(value T) validate.Result {
		switch {
		case cmp.Compare(value, minValue) < 0:
			return validate.Fail(CodeTooSmall, message)
		case cmp.Compare(value, maxValue) > 0:
			return validate.Fail(CodeTooLarge, message)
		default:
			return validate.Success()
		}
	})
}
