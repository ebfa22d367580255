package collapse

// State is the phase of the height transition.
// Its value is what gets exposed as the element's data-collapse attribute.
type State string

const (
	StateExpanding  State = "expanding"
	StateExpanded   State = "expanded"
	StateCollapsing State = "collapsing"
	StateCollapsed  State = "collapsed"
)

func (s State) String() string { return string(s) }

// Transient reports whether a transition is in flight.
func (s State) Transient() bool {
	return s == StateExpanding || s == StateCollapsing
}
