package collapse

// Source is a reactive value the engine reads.
// *sig.Signal, *sig.Computed and sig.Constant all satisfy it.
type Source[T any] interface {
	Read() T
}

// Element is the handle on the rendered node being animated.
// The engine only measures it and listens for transitionend on it.
type Element interface {
	// ScrollHeight is the full content height, clipped or not.
	ScrollHeight() float64

	// InlineHeight is the height currently set on the element's style attribute, e.g. "120px".
	InlineHeight() string

	// ComputedTransition is the resolved `transition` shorthand of the element.
	ComputedTransition() string

	// OnTransitionEnd subscribes fn to transitionend events on the element.
	// Calling the returned func removes the listener.
	OnTransitionEnd(fn func(TransitionEvent)) (release func())
}

// MotionPreference can be implemented by an Element to report the user's
// prefers-reduced-motion setting.
type MotionPreference interface {
	PrefersReducedMotion() bool
}

// TransitionEvent is the subset of a DOM TransitionEvent the engine needs.
type TransitionEvent struct {
	Target       Element
	PropertyName string
	ElapsedTime  float64
}
