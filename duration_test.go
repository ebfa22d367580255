package collapse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutoDuration(t *testing.T) {
	t.Run("known values", func(t *testing.T) {
		cases := map[float64]int{
			0:    0,
			36:   192,
			100:  239,
			500:  357,
			1000: 440,
		}

		for height, want := range cases {
			assert.Equal(t, want, AutoDuration(height), "height %v", height)
		}
	})

	t.Run("degenerate input is zero", func(t *testing.T) {
		for _, h := range []float64{-1, -500, math.NaN(), math.Inf(1), math.Inf(-1)} {
			assert.Equal(t, 0, AutoDuration(h), "height %v", h)
		}
	})

	t.Run("huge input saturates", func(t *testing.T) {
		assert.Positive(t, AutoDuration(1e20))

		for _, h := range []float64{1e21, 1e25, 1e300, math.MaxFloat64} {
			assert.Equal(t, math.MaxInt, AutoDuration(h), "height %v", h)
		}
	})

	t.Run("monotonic across magnitudes", func(t *testing.T) {
		prev := AutoDuration(0)
		for h := 1.0; h < 1e307; h *= 10 {
			d := AutoDuration(h)
			assert.GreaterOrEqual(t, d, prev, "height %v", h)
			prev = d
		}
		assert.GreaterOrEqual(t, AutoDuration(math.MaxFloat64), prev)
	})

	t.Run("monotonic", func(t *testing.T) {
		prev := AutoDuration(0)
		for h := 0.5; h < 20000; h *= 1.3 {
			d := AutoDuration(h)
			assert.GreaterOrEqual(t, d, prev, "height %v", h)
			prev = d
		}
	})
}
