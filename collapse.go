package collapse

import (
	"go.uber.org/zap"

	"github.com/AnatoleLucet/collapse/frame"
	"github.com/AnatoleLucet/collapse/sig"
)

// Collapse animates the height of one element between a collapsed and an
// expanded state, driven by a reactive boolean.
//
// All methods must be called from the goroutine (UI thread) that created it.
type Collapse struct {
	isExpanded Source[bool]
	baseHeight Source[float64]

	onExpand    func()
	onExpanded  func()
	onCollapse  func()
	onCollapsed func()

	frames        frame.Scheduler
	logger        *zap.Logger
	instantSettle bool

	owner *sig.Owner
	style *sig.Signal[Style]
	state *sig.Signal[State]

	el      Element
	release func()

	// baseHeight targeted by the collapse in flight
	target float64
}

// New creates a Collapse watching isExpanded. Transitions are staged on
// frames requested from the given scheduler.
func New(isExpanded Source[bool], frames frame.Scheduler, opts ...Option) *Collapse {
	c := &Collapse{
		isExpanded: isExpanded,
		baseHeight: sig.NewConstant(0.0),

		onExpand:    func() {},
		onExpanded:  func() {},
		onCollapse:  func() {},
		onCollapsed: func() {},

		frames: frames,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	base := sig.Untrack(c.readBaseHeight)
	if sig.Untrack(isExpanded.Read) {
		c.style = sig.NewSignal(ExpandedStyle())
		c.state = sig.NewSignal(StateExpanded)
	} else {
		c.style = sig.NewSignal(CollapsedStyle(base))
		c.state = sig.NewSignal(StateCollapsed)
	}
	c.target = base

	c.owner = sig.NewOwner()
	c.owner.Run(func() error {
		sig.Watch(isExpanded, c.toggle)
		sig.Watch(sig.NewComputed(c.readBaseHeight), c.resize)
		return nil
	})

	return c
}

// Style returns the live style snapshot. It is tracked when read from a reactive context.
func (c *Collapse) Style() Style {
	return c.style.Read()
}

// State returns the live transition state. It is tracked when read from a reactive context.
func (c *Collapse) State() State {
	return c.state.Read()
}

// Ref attaches the engine to el, or detaches it when el is nil.
// The transitionend listener follows the attached element.
func (c *Collapse) Ref(el Element) {
	if c.el == el {
		return
	}

	if c.release != nil {
		c.release()
		c.release = nil
	}

	c.el = el
	if el != nil {
		c.release = el.OnTransitionEnd(c.HandleTransitionEnd)
	}
}

// Close detaches the element and stops watching the sources.
func (c *Collapse) Close() {
	c.Ref(nil)
	c.owner.Dispose()
}

func (c *Collapse) readBaseHeight() float64 {
	return sanitizeHeight(c.baseHeight.Read())
}

func (c *Collapse) currentStyle() Style   { return sig.Untrack(c.style.Read) }
func (c *Collapse) currentState() State   { return sig.Untrack(c.state.Read) }
func (c *Collapse) currentBase() float64  { return sig.Untrack(c.readBaseHeight) }
func (c *Collapse) currentExpanded() bool { return sig.Untrack(c.isExpanded.Read) }

func (c *Collapse) write(style Style, state State) {
	sig.NewBatch(func() {
		c.style.Write(style)
		c.state.Write(state)
	})
}

func (c *Collapse) toggle(expanding bool) {
	c.logger.Debug("collapse: toggled",
		zap.Bool("expanded", expanding),
		zap.Stringer("state", c.currentState()),
	)

	if expanding {
		c.frames.Request(c.expandFrom)
	} else {
		c.frames.Request(c.collapseFrom)
	}
}

// expandFrom lifts display:none while keeping the element at baseHeight,
// so the next frame has a painted start value to transition from.
func (c *Collapse) expandFrom() {
	if c.el == nil {
		return
	}

	c.style.Write(expandFromStyle(c.currentBase()))
	c.frames.Request(c.expandTo)
}

func (c *Collapse) expandTo() {
	if c.el == nil {
		return
	}

	base := c.currentBase()
	height := c.el.ScrollHeight()
	transition := c.el.ComputedTransition()

	if c.skipTransition(transition) {
		c.write(heightStyle(c.currentStyle(), height, base, ""), StateExpanding)
		c.onExpand()
		c.settleExpanded()
		return
	}

	c.write(heightStyle(c.currentStyle(), height, base, fallbackTransition(transition)), StateExpanding)

	c.logger.Debug("collapse: expanding",
		zap.Float64("from", base),
		zap.Float64("to", height),
		zap.Int("duration_ms", AutoDuration(height-base)),
	)

	c.onExpand()
}

// collapseFrom freezes the auto height into pixels so the browser has a
// concrete value to transition from.
func (c *Collapse) collapseFrom() {
	if c.el == nil {
		return
	}

	transition := c.el.ComputedTransition()
	if c.skipTransition(transition) {
		transition = ""
	} else {
		transition = fallbackTransition(transition)
	}

	c.style.Write(collapseFromStyle(c.currentStyle(), c.el.ScrollHeight(), c.currentBase(), transition))
	c.frames.Request(c.collapseTo)
}

func (c *Collapse) collapseTo() {
	if c.el == nil {
		return
	}

	c.target = c.currentBase()
	c.write(collapseToStyle(c.currentStyle(), c.target), StateCollapsing)

	if c.skipTransition(c.el.ComputedTransition()) {
		c.onCollapse()
		c.settleCollapsed()
		return
	}

	c.logger.Debug("collapse: collapsing", zap.Float64("to", c.target))

	c.onCollapse()
}

// HandleTransitionEnd settles the engine once the height transition it
// started has reached its target. Events for other elements, other
// properties, or superseded transitions are ignored.
func (c *Collapse) HandleTransitionEnd(ev TransitionEvent) {
	if c.el == nil || ev.Target != c.el || ev.PropertyName != "height" {
		return
	}

	state := c.currentState()

	if c.currentExpanded() {
		if state == StateExpanding && parsePx(c.el.InlineHeight()) == c.el.ScrollHeight() {
			c.settleExpanded()
		}
		return
	}

	if state == StateCollapsing && c.el.InlineHeight() == px(c.target) {
		c.settleCollapsed()
	}
}

func (c *Collapse) settleExpanded() {
	c.write(ExpandedStyle(), StateExpanded)
	c.logger.Debug("collapse: expanded")

	c.onExpanded()
}

// settleCollapsed picks up the live baseHeight, so changes made while the
// transition was running apply here.
func (c *Collapse) settleCollapsed() {
	c.write(CollapsedStyle(c.currentBase()), StateCollapsed)
	c.logger.Debug("collapse: collapsed")

	c.onCollapsed()
}

// resize tracks baseHeight while collapsed. In any other state, or once an
// expand has been requested, the new value waits for the next collapse to
// settle; frame 2 of an expand reads it live.
func (c *Collapse) resize(base float64) {
	if c.currentState() != StateCollapsed || c.currentExpanded() {
		c.logger.Debug("collapse: base height change deferred", zap.Float64("base_height", base))
		return
	}

	c.target = base
	c.style.Write(resizedStyle(base))
}

func (c *Collapse) skipTransition(computed string) bool {
	if !c.instantSettle {
		return false
	}

	if transitionDisabled(computed) {
		return true
	}

	pref, ok := c.el.(MotionPreference)
	return ok && pref.PrefersReducedMotion()
}
