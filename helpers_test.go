package collapse

import (
	"github.com/AnatoleLucet/collapse/frame"
	"github.com/AnatoleLucet/collapse/sig"
)

// fakeElement stands in for a DOM node. Its inline style follows the engine
// through a render effect, and its scrollHeight is the content height unless
// the element is display:none.
type fakeElement struct {
	content    float64
	transition string
	reduced    bool

	style     Style
	listeners map[int]func(TransitionEvent)
	nextID    int
}

func newFakeElement(content float64) *fakeElement {
	return &fakeElement{
		content:    content,
		transition: "all 0s ease 0s",
		listeners:  map[int]func(TransitionEvent){},
	}
}

func (e *fakeElement) ScrollHeight() float64 {
	if e.style.Display == "none" {
		return 0
	}
	return e.content
}

func (e *fakeElement) InlineHeight() string       { return e.style.Height }
func (e *fakeElement) ComputedTransition() string { return e.transition }
func (e *fakeElement) PrefersReducedMotion() bool { return e.reduced }

func (e *fakeElement) OnTransitionEnd(fn func(TransitionEvent)) func() {
	id := e.nextID
	e.nextID++
	e.listeners[id] = fn

	return func() { delete(e.listeners, id) }
}

// transitionEnd dispatches a transitionend event for property to every listener.
func (e *fakeElement) transitionEnd(property string) {
	for _, fn := range e.listeners {
		fn(TransitionEvent{Target: e, PropertyName: property})
	}
}

type fixture struct {
	open   *sig.Signal[bool]
	base   *sig.Signal[float64]
	frames *frame.Queue
	el     *fakeElement
	c      *Collapse
	log    []string
}

func newFixture(open bool, base, content float64, opts ...Option) *fixture {
	f := &fixture{
		open:   sig.NewSignal(open),
		base:   sig.NewSignal(base),
		frames: frame.NewQueue(),
		el:     newFakeElement(content),
	}

	opts = append([]Option{
		WithBaseHeight(f.base),
		OnExpand(func() { f.log = append(f.log, "expand") }),
		OnExpanded(func() { f.log = append(f.log, "expanded") }),
		OnCollapse(func() { f.log = append(f.log, "collapse") }),
		OnCollapsed(func() { f.log = append(f.log, "collapsed") }),
	}, opts...)

	f.c = New(f.open, f.frames, opts...)

	sig.NewRenderEffect(func() {
		f.el.style = f.c.Style()
	})
	f.c.Ref(f.el)

	return f
}

// settle plays both staging frames, then ends the height transition.
func (f *fixture) settle() {
	f.frames.Flush(10)
	f.el.transitionEnd("height")
}
