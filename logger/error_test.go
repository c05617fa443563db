package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBase = errors.New("base failure")

func TestAnnotateError_NilError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, AnnotateError(nil, "key", "value"))
}

func TestAnnotateError_PreservesChain(t *testing.T) {
	t.Parallel()

	err := AnnotateError(errBase, "validator", "email")

	require.Error(t, err)
	assert.Equal(t, "base failure", err.Error())
	assert.ErrorIs(t, err, errBase)
}

func TestErrorAttrs_Chained(t *testing.T) {
	t.Parallel()

	inner := AnnotateError(errBase, "inner", 1)
	outer := AnnotateError(inner, "outer", "x")

	attrs := ErrorAttrs(outer)
	require.Len(t, attrs, 2)
	assert.Equal(t, "outer", attrs[0].Key)
	assert.Equal(t, "inner", attrs[1].Key)

	assert.Empty(t, ErrorAttrs(errBase))
}

func TestSlogErrorLogger_Handle(t *testing.T) {
	t.Parallel()

	t.Run("expands annotated errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		logger := slog.New(&slogErrorLogger{inner: slog.NewJSONHandler(&buf, nil)})
		logger.Info("failed", "error", AnnotateError(errBase, "codes", "empty"))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "base failure", record["error"])
		assert.Equal(t, "empty", record["codes"])
	})

	t.Run("keeps plain errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		logger := slog.New(&slogErrorLogger{inner: slog.NewJSONHandler(&buf, nil)})
		logger.Info("failed", "error", errBase, "n", 3)

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "base failure", record["error"])
		assert.InDelta(t, 3, record["n"], 0)
	})

	t.Run("with attrs and group stay wrapped", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		handler := &slogErrorLogger{inner: slog.NewJSONHandler(&buf, nil)}

		_, ok := handler.WithAttrs([]slog.Attr{slog.String("a", "b")}).(*slogErrorLogger)
		assert.True(t, ok)

		_, ok = handler.WithGroup("g").(*slogErrorLogger)
		assert.True(t, ok)
	})
}
