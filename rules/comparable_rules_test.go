package rules_test

import (
	"math"
	"testing"
	"time"

	"github.com/amp-labs/amp-validator/rules"
	"github.com/amp-labs/amp-validator/validate"
	"github.com/stretchr/testify/assert"
)

func TestOneOf(t *testing.T) {
	t.Parallel()

	v := rules.OneOf("red", "green", "blue")

	assert.True(t, v.Run("green").IsSuccess())

	res := v.Run("purple")
	assert.Equal(t, []string{rules.CodeOneOf}, res.Codes())
	assert.Equal(t, []string{"must be one of: red, green, blue"}, res.Messages())

	assert.True(t, rules.OneOf(1, 2, 3).Run(2).IsSuccess())
	assert.True(t, rules.OneOf[int]().Run(2).IsFailure())
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	assert.True(t, rules.Min(18).Run(18).IsSuccess())
	assert.Equal(t, []string{"must be at least 18"}, rules.Min(18).Run(17).Messages())

	assert.True(t, rules.Max(1.5).Run(1.5).IsSuccess())
	assert.Equal(t, []string{rules.CodeTooLarge}, rules.Max(1.5).Run(1.6).Codes())

	assert.True(t, rules.Min("b").Run("c").IsSuccess())
	assert.True(t, rules.Min("b").Run("a").IsFailure())

	assert.True(t, rules.Max(time.Second).Run(time.Millisecond).IsSuccess())
}

func TestBetween(t *testing.T) {
	t.Parallel()

	v := rules.Between(1, 10)

	assert.Equal(t, []string{rules.CodeTooSmall}, v.Run(0).Codes())
	assert.True(t, v.Run(1).IsSuccess())
	assert.True(t, v.Run(10).IsSuccess())
	assert.Equal(t, []string{rules.CodeTooLarge}, v.Run(11).Codes())
	assert.Equal(t, []string{"must be between 1 and 10"}, v.Run(11).Messages())

	assert.Panics(t, func() {
		rules.Between(10, 1)
	})
}

func TestBounds_NaN(t *testing.T) {
	t.Parallel()

	nan := math.NaN()

	tests := []struct {
		name string
		v    validate.Validator[float64]
	}{
		{name: "min", v: rules.Min(0.0)},
		{name: "max", v: rules.Max(10.0)},
		{name: "between", v: rules.Between(0.0, 10.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := tt.v.Run(nan)
			assert.True(t, res.IsFailure())
			assert.Equal(t, []string{rules.CodeNaN}, res.Codes())
		})
	}

	// Infinities are ordered and stay subject to the bounds.
	assert.True(t, rules.Min(0.0).Run(math.Inf(1)).IsSuccess())
	assert.Equal(t, []string{rules.CodeTooLarge}, rules.Max(10.0).Run(math.Inf(1)).Codes())
	assert.Equal(t, []string{rules.CodeTooSmall}, rules.Between(0.0, 10.0).Run(math.Inf(-1)).Codes())

	assert.Panics(t, func() { rules.Min(nan) })
	assert.Panics(t, func() { rules.Max(nan) })
	assert.Panics(t, func() { rules.Between(0, nan) })
}
