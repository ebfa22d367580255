package collapse

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AutoDurationVar is the custom property carrying the computed duration,
// so stylesheets can use `transition-duration: var(--vc-auto-duration)`.
const AutoDurationVar = "--vc-auto-duration"

// DefaultTransition is applied when the element declares no transition of its own.
const DefaultTransition = "height var(" + AutoDurationVar + ") cubic-bezier(0.33, 1, 0.68, 1)"

// Style is the set of inline CSS properties the engine controls.
// Empty fields are not set. Style is comparable, so two snapshots can be
// checked for equality with ==.
type Style struct {
	Display            string
	Padding            string
	Border             string
	Margin             string
	WillChange         string
	Overflow           string
	Height             string
	Transition         string
	TransitionDuration string
	AutoDuration       string
}

// properties lists the CSS name of each Style field, in render order.
func (s Style) properties() [][2]string {
	return [][2]string{
		{"display", s.Display},
		{"padding", s.Padding},
		{"border", s.Border},
		{"margin", s.Margin},
		{"will-change", s.WillChange},
		{"overflow", s.Overflow},
		{"height", s.Height},
		{"transition", s.Transition},
		{"transition-duration", s.TransitionDuration},
		{AutoDurationVar, s.AutoDuration},
	}
}

// Map returns the set properties keyed by CSS name.
func (s Style) Map() map[string]string {
	m := make(map[string]string)
	for _, p := range s.properties() {
		if p[1] != "" {
			m[p[0]] = p[1]
		}
	}

	return m
}

// String renders the style as an inline style attribute value.
// The output is stable: equal snapshots render to identical strings.
func (s Style) String() string {
	var b strings.Builder
	for _, p := range s.properties() {
		if p[1] == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s: %s;", p[0], p[1])
	}

	return b.String()
}

// merge overlays the set fields of over onto s.
func (s Style) merge(over Style) Style {
	set(&s.Display, over.Display)
	set(&s.Padding, over.Padding)
	set(&s.Border, over.Border)
	set(&s.Margin, over.Margin)
	set(&s.WillChange, over.WillChange)
	set(&s.Overflow, over.Overflow)
	set(&s.Height, over.Height)
	set(&s.Transition, over.Transition)
	set(&s.TransitionDuration, over.TransitionDuration)
	set(&s.AutoDuration, over.AutoDuration)

	return s
}

func set(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

var (
	fixedStyle = Style{Padding: "0", Border: "0", Margin: "0"}
	perfStyle  = Style{WillChange: "height"}
)

func visibleStyle(baseHeight float64) Style {
	return Style{Overflow: "hidden", Height: px(baseHeight)}
}

// ExpandedStyle is the settled expanded snapshot: the height is left to the content.
func ExpandedStyle() Style {
	return fixedStyle
}

// CollapsedStyle is the settled collapsed snapshot for baseHeight.
func CollapsedStyle(baseHeight float64) Style {
	if baseHeight == 0 {
		return fixedStyle.merge(Style{Display: "none"})
	}

	return fixedStyle.merge(visibleStyle(baseHeight))
}

// expandFromStyle makes the element measurable while it still looks collapsed.
func expandFromStyle(baseHeight float64) Style {
	return fixedStyle.merge(perfStyle).merge(visibleStyle(baseHeight))
}

// heightStyle pins prev to an explicit height and the matching auto duration.
func heightStyle(prev Style, height, baseHeight float64, transition string) Style {
	return prev.merge(Style{
		Height:       px(height),
		AutoDuration: strconv.Itoa(AutoDuration(height-baseHeight)) + "ms",
		Transition:   transition,
	})
}

// collapseFromStyle freezes the current auto height into pixels.
func collapseFromStyle(prev Style, height, baseHeight float64, transition string) Style {
	return heightStyle(prev.merge(perfStyle), height, baseHeight, transition)
}

func collapseToStyle(prev Style, baseHeight float64) Style {
	return prev.merge(visibleStyle(baseHeight))
}

// resizedStyle follows a baseHeight change while collapsed, without animating.
func resizedStyle(baseHeight float64) Style {
	return CollapsedStyle(baseHeight).merge(Style{
		Height:             px(baseHeight),
		TransitionDuration: "0s",
	})
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// parsePx reads a "<n>px" value the way parseFloat would, returning NaN on failure.
func parsePx(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px")), 64)
	if err != nil {
		return math.NaN()
	}

	return v
}

// sanitizeHeight maps negative and non-finite heights to 0.
func sanitizeHeight(h float64) float64 {
	if !(h > 0) || math.IsInf(h, 0) {
		return 0
	}

	return h
}

// fallbackTransition returns DefaultTransition when the computed transition is
// the browser default, i.e. nothing was declared.
func fallbackTransition(computed string) string {
	switch strings.TrimSpace(computed) {
	// Gecko reports "all" since Firefox 124
	case "", "all", "all 0s ease 0s":
		return DefaultTransition
	}

	return ""
}

func transitionDisabled(computed string) bool {
	return strings.Contains(computed, "none") || strings.Contains(computed, "height 0s")
}
