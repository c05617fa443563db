package rules_test

import (
	"testing"

	"github.com/amp-labs/amp-validator/rules"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	t.Parallel()

	t.Run("with description", func(t *testing.T) {
		t.Parallel()

		v := rules.Matches(`^[a-z0-9_]+$`, "lowercase letters, digits and underscores")

		assert.True(t, v.Run("user_01").IsSuccess())

		res := v.Run("User 01")
		assert.Equal(t, []string{rules.CodePattern}, res.Codes())
		assert.Equal(t, []string{"must match lowercase letters, digits and underscores"}, res.Messages())
	})

	t.Run("without description", func(t *testing.T) {
		t.Parallel()

		res := rules.Matches(`^\d+$`, "").Run("x")
		assert.Equal(t, []string{`must match pattern ^\d+$`}, res.Messages())
	})

	t.Run("invalid pattern panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			rules.Matches(`(`, "")
		})
	})
}

func TestUUID(t *testing.T) {
	t.Parallel()

	valid := uuid.NewString()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"canonical", valid, true},
		{"urn form", "urn:uuid:" + valid, true},
		{"braced", "{" + valid + "}", true},
		{"empty", "", false},
		{"garbage", "not-a-uuid", false},
		{"truncated", valid[:30], false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			res := rules.UUID().Run(test.value)
			assert.Equal(t, test.valid, res.IsSuccess())

			if !test.valid {
				assert.Equal(t, []string{rules.CodeUUID}, res.Codes())
			}
		})
	}
}
