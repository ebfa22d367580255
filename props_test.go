package collapse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeProps(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		props, err := DecodeProps(map[string]any{"when": true})
		require.NoError(t, err)

		assert.True(t, props.When)
		assert.Equal(t, 0.0, props.BaseHeight)
		assert.Equal(t, "div", props.As)
		assert.Empty(t, props.Attrs)
	})

	t.Run("weakly typed values", func(t *testing.T) {
		props, err := DecodeProps(map[string]any{
			"when":       "true",
			"baseHeight": "48",
			"as":         "section",
		})
		require.NoError(t, err)

		assert.True(t, props.When)
		assert.Equal(t, 48.0, props.BaseHeight)
		assert.Equal(t, "section", props.As)
	})

	t.Run("forwards other attributes", func(t *testing.T) {
		props, err := DecodeProps(map[string]any{
			"when":  false,
			"id":    "faq",
			"class": "panel",
		})
		require.NoError(t, err)

		assert.Equal(t, map[string]any{"id": "faq", "class": "panel"}, props.Attrs)
	})

	t.Run("rejects bad base heights", func(t *testing.T) {
		for _, h := range []any{-1, math.NaN(), math.Inf(1)} {
			_, err := DecodeProps(map[string]any{"baseHeight": h})
			assert.ErrorIs(t, err, ErrInvalidBaseHeight, "%v", h)
		}
	})

	t.Run("rejects bad tags", func(t *testing.T) {
		for _, tag := range []string{"", "DIV", "1div", "my tag", "<script>"} {
			_, err := DecodeProps(map[string]any{"as": tag})
			assert.ErrorIs(t, err, ErrInvalidTag, "%q", tag)
		}

		_, err := DecodeProps(map[string]any{"as": "my-element"})
		assert.NoError(t, err)
	})

	t.Run("wraps decode errors", func(t *testing.T) {
		_, err := DecodeProps(map[string]any{"baseHeight": map[string]any{"px": 1}})
		assert.ErrorContains(t, err, "collapse: decoding props")
	})
}
