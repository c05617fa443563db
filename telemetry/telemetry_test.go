package telemetry

import (
	"testing"
	"time"

	"github.com/amp-labs/amp-validator/envutil"
	"github.com/amp-labs/amp-validator/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	t.Parallel()

	ctx := logger.WithSubsystem(t.Context(), "validate-cli")

	cfg, err := LoadConfigFromEnv(ctx, "test")
	require.NoError(t, err)

	assert.False(t, cfg.Enabled)
	assert.Equal(t, "validate-cli", cfg.ServiceName)
	assert.Equal(t, defaultServiceVersion, cfg.ServiceVersion)
	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, defaultTimeout, cfg.Timeout)
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	t.Parallel()

	ctx := envutil.WithEnvOverrides(t.Context(), map[string]string{
		"OTEL_ENABLED":                       "true",
		"OTEL_SERVICE_NAME":                  "custom",
		"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT": "http://collector:4318",
		"OTEL_EXPORTER_OTLP_TRACES_TIMEOUT":  "2s",
	})

	cfg, err := LoadConfigFromEnv(ctx, "prod")
	require.NoError(t, err)

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "custom", cfg.ServiceName)
	assert.Equal(t, "http://collector:4318", cfg.Endpoint)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestLoadConfigFromEnv_BadValue(t *testing.T) {
	t.Parallel()

	ctx := envutil.WithEnvOverride(t.Context(), "OTEL_ENABLED", "maybe")

	_, err := LoadConfigFromEnv(ctx, "test")
	require.ErrorIs(t, err, envutil.ErrBadEnvVar)
}

func TestInitialize_NoOp(t *testing.T) {
	t.Parallel()

	ctx := logger.WithMuted(t.Context(), true)

	require.NoError(t, Initialize(ctx, nil))
	require.NoError(t, Initialize(ctx, &Config{Enabled: false}))
	require.NoError(t, Initialize(ctx, &Config{Enabled: true}))
	require.NoError(t, Shutdown(ctx))
	assert.NotNil(t, Tracer("test"))
}
