package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinels_Distinct(t *testing.T) {
	t.Parallel()

	assert.NotErrorIs(t, ErrValidation, ErrNilValue)
	assert.NotErrorIs(t, ErrNilValue, ErrValidation)
	assert.Equal(t, "validation failed", ErrValidation.Error())
}

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("adds non-nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errors.New("error 1")) //nolint:err113
		c.Add(errors.New("error 2")) //nolint:err113

		assert.True(t, c.HasError())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Zero(t, c.Len())
	})
}

func TestCollection_Clear(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	c.Add(errors.New("error 1")) //nolint:err113
	c.Clear()

	assert.False(t, c.HasError())
	assert.Nil(t, c.Errors())

	c.Add(errors.New("second batch")) //nolint:err113
	require.Error(t, c.GetError())
	assert.Contains(t, c.GetError().Error(), "second batch")
}

func TestCollection_Errors(t *testing.T) {
	t.Parallel()

	err1 := errors.New("error 1") //nolint:err113
	err2 := errors.New("error 2") //nolint:err113

	c := &Collection{}
	c.Add(err1)
	c.Add(err2)

	out := c.Errors()
	require.Len(t, out, 2)
	assert.Equal(t, err1, out[0])
	assert.Equal(t, err2, out[1])

	// Mutating the returned slice must not affect the collection.
	out[0] = nil

	assert.Equal(t, err1, c.Errors()[0])
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when empty", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		assert.NoError(t, c.GetError())
	})

	t.Run("returns the single error unchanged", func(t *testing.T) {
		t.Parallel()

		err1 := errors.New("only") //nolint:err113

		c := &Collection{}
		c.Add(err1)

		assert.Equal(t, err1, c.GetError())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		t.Parallel()

		err1 := errors.New("error 1") //nolint:err113
		err2 := ErrValidation

		c := &Collection{}
		c.Add(err1)
		c.Add(err2)

		err := c.GetError()
		require.Error(t, err)
		require.ErrorIs(t, err, err1)
		require.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "error 1")
	})
}
