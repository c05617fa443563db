package validate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithWrappedError(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	// Default is true
	assert.True(t, wantWrappedErrors(ctx))

	ctx = WithWrappedError(ctx, false)
	assert.False(t, wantWrappedErrors(ctx))

	ctx = WithWrappedError(ctx, true)
	assert.True(t, wantWrappedErrors(ctx))
}

func TestWithWrappedError_Propagation(t *testing.T) {
	t.Parallel()

	parentCtx := WithWrappedError(t.Context(), false)
	childCtx := context.WithValue(parentCtx, contextKey("other"), "value")

	assert.False(t, wantWrappedErrors(childCtx))
}

func TestWantWrappedErrors_NilContext(t *testing.T) {
	t.Parallel()

	//nolint:staticcheck // Testing nil context behavior
	assert.True(t, wantWrappedErrors(nil))
}
