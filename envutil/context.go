package envutil

import (
	"context"

	"github.com/amp-labs/amp-validator/contexts"
)

type envContextKey string

// WithEnvOverride makes key read as value for every reader using ctx.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	return contexts.WithValue[envContextKey, string](ctx, envContextKey(key), value)
}

// WithEnvOverrides applies WithEnvOverride for every entry, typically the
// output of LoadEnvFile.
func WithEnvOverrides(ctx context.Context, values map[string]string) context.Context {
	overrides := make(map[envContextKey]string, len(values))
	for key, value := range values {
		overrides[envContextKey(key)] = value
	}

	return contexts.WithValues(ctx, overrides)
}

func getEnvOverride(ctx context.Context, key string) (string, bool) {
	return contexts.GetValue[envContextKey, string](ctx, envContextKey(key))
}
