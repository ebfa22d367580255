package collapse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleString(t *testing.T) {
	assert.Equal(t, "display: none; padding: 0; border: 0; margin: 0;", CollapsedStyle(0).String())
	assert.Equal(t, "padding: 0; border: 0; margin: 0; overflow: hidden; height: 12.5px;", CollapsedStyle(12.5).String())
	assert.Equal(t, "", Style{}.String())

	s := heightStyle(expandFromStyle(0), 200, 0, DefaultTransition)
	assert.Equal(t,
		"padding: 0; border: 0; margin: 0; will-change: height; overflow: hidden; height: 200px; "+
			"transition: height var(--vc-auto-duration) cubic-bezier(0.33, 1, 0.68, 1); --vc-auto-duration: 281ms;",
		s.String(),
	)
}

func TestStyleMap(t *testing.T) {
	assert.Equal(t, map[string]string{
		"padding":             "0",
		"border":              "0",
		"margin":              "0",
		"overflow":            "hidden",
		"height":              "30px",
		"display":             "none",
		"transition-duration": "0s",
	}, resizedStyle(30).merge(Style{Display: "none"}).Map())

	assert.Empty(t, Style{}.Map())
}

func TestStyleMerge(t *testing.T) {
	base := Style{Height: "10px", Overflow: "hidden"}
	merged := base.merge(Style{Height: "20px", WillChange: "height"})

	assert.Equal(t, Style{Height: "20px", Overflow: "hidden", WillChange: "height"}, merged)
	assert.Equal(t, "10px", base.Height, "merge does not touch the receiver")
}

func TestParsePx(t *testing.T) {
	assert.Equal(t, 120.0, parsePx("120px"))
	assert.Equal(t, 0.5, parsePx(" 0.5px "))
	assert.Equal(t, 42.0, parsePx("42"))
	assert.True(t, math.IsNaN(parsePx("")))
	assert.True(t, math.IsNaN(parsePx("auto")))
}

func TestFallbackTransition(t *testing.T) {
	for _, computed := range []string{"", "all", "all 0s ease 0s"} {
		assert.Equal(t, DefaultTransition, fallbackTransition(computed), computed)
	}

	assert.Empty(t, fallbackTransition("height 300ms ease-out"))
}

func TestTransitionDisabled(t *testing.T) {
	assert.True(t, transitionDisabled("none"))
	assert.True(t, transitionDisabled("height 0s ease 0s"))
	assert.False(t, transitionDisabled("height 0.3s ease 0s"))
	assert.False(t, transitionDisabled("all 0s ease 0s"))
}

func TestState(t *testing.T) {
	assert.True(t, StateExpanding.Transient())
	assert.True(t, StateCollapsing.Transient())
	assert.False(t, StateExpanded.Transient())
	assert.False(t, StateCollapsed.Transient())
	assert.Equal(t, "collapsing", StateCollapsing.String())
}
