// Package contexts holds small, type-safe helpers around context.Context values.
package contexts

import "context"

// EnsureContext will choose the first non-nil context passed in. If all values
// are nil, a new context will be created.
func EnsureContext(ctx ...context.Context) context.Context {
	for _, c := range ctx {
		if c != nil {
			return c
		}
	}

	return context.Background()
}

// WithValue is a type-safe wrapper around context.WithValue that stores a value
// of type V with a key of type K. If ctx is nil, a new background context is created.
func WithValue[K comparable, V any](ctx context.Context, key K, value V) context.Context {
	return context.WithValue(EnsureContext(ctx), key, value)
}

// WithValues stores every entry of the map under its own key. Iteration order
// doesn't matter since keys are distinct.
func WithValues[K comparable, V any](ctx context.Context, values map[K]V) context.Context {
	ctx = EnsureContext(ctx)

	for key, value := range values {
		ctx = context.WithValue(ctx, key, value)
	}

	return ctx
}

// GetValue is a type-safe wrapper around context.Value that retrieves a value of type V
// using a key of type K. Returns the value and true if found and type matches, or the
// zero value of V and false otherwise. Returns false if ctx is nil.
func GetValue[K comparable, V any](ctx context.Context, key K) (V, bool) {
	var zero V

	if ctx == nil {
		return zero, false
	}

	v, ok := ctx.Value(key).(V)
	if !ok {
		return zero, false
	}

	return v, true
}

// GetValueOr is GetValue with a fallback for missing (or mistyped) entries.
func GetValueOr[K comparable, V any](ctx context.Context, key K, fallback V) V {
	if v, ok := GetValue[K, V](ctx, key); ok {
		return v
	}

	return fallback
}
