package validate

import "fmt"

// All runs every validator and reports all of their failures, in order.
// Nil validators are skipped; with none left the value passes.
func All[T any](validators ...Validator[T]) Validator[T] {
	return Func[T](func(value T) Result {
		res := Success()

		for _, v := range validators {
			if v != nil {
				res = res.Merge(v.Run(value))
			}
		}

		return res
	})
}

// First runs the validators in order and stops at the first failure.
func First[T any](validators ...Validator[T]) Validator[T] {
	return Func[T](func(value T) Result {
		for _, v := range validators {
			if v == nil {
				continue
			}

			if res := v.Run(value); res.IsFailure() {
				return res
			}
		}

		return Success()
	})
}

// Not inverts v: values v accepts fail with code and message, values it
// rejects pass.
func Not[T any](code, message string, v Validator[T]) Validator[T] {
	return Func[T](func(value T) Result {
		if v != nil && v.Run(value).IsFailure() {
			return Success()
		}

		return Fail(code, message)
	})
}

// Field validates the part of S selected by get, reporting failures under
// name.
//
//	validate.Field("email", func(u User) string { return u.Email }, rules.NonEmpty())
func Field[S, F any](name string, get func(S) F, v Validator[F]) Validator[S] {
	return Func[S](func(value S) Result {
		return v.Run(get(value)).WithField(name)
	})
}

// Each validates every element of a slice, reporting failures as "[i]".
// A nil or empty slice passes; combine with NotNil or a length rule to
// reject it.
func Each[T any](v Validator[T]) Validator[[]T] {
	return Func[[]T](func(values []T) Result {
		res := Success()

		for i, value := range values {
			res = res.Merge(v.Run(value).WithField(fmt.Sprintf("[%d]", i)))
		}

		return res
	})
}

// Required lifts v to pointers. A nil pointer fails with CodeRequired;
// otherwise v runs on the pointed-to value.
func Required[T any](v Validator[T]) Validator[*T] {
	return Func[*T](func(value *T) Result {
		if value == nil {
			return Fail(CodeRequired, "value is required")
		}

		return v.Run(*value)
	})
}

// Optional lifts v to pointers. A nil pointer passes; otherwise v runs on
// the pointed-to value.
func Optional[T any](v Validator[T]) Validator[*T] {
	return Func[*T](func(value *T) Result {
		if value == nil {
			return Success()
		}

		return v.Run(*value)
	})
}

// NotNil rejects nil-ish values (nil pointers, maps, slices, channels,
// functions and interfaces) with CodeRequired. Other values pass.
func NotNil[T any]() Validator[T] {
	return Func[T](func(value T) Result {
		if isNilish(value) {
			return Fail(CodeRequired, "value is required")
		}

		return Success()
	})
}
