// Package frame schedules callbacks on the next paint of a render loop.
package frame

// Scheduler requests a callback before the next paint, the way
// window.requestAnimationFrame does. Callbacks requested from inside a
// callback run on the following frame, never on the current one.
type Scheduler interface {
	Request(fn func())
}

// Func adapts a plain function to the Scheduler interface.
type Func func(fn func())

func (f Func) Request(fn func()) { f(fn) }

// Queue is a manually driven Scheduler. Each call to Tick plays one frame.
// It is what tests and non-browser hosts use to step animations.
type Queue struct {
	pending []func()
	frames  int
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Request(fn func()) {
	q.pending = append(q.pending, fn)
}

// Tick runs the callbacks requested before this call, in request order.
// It reports how many ran.
func (q *Queue) Tick() int {
	callbacks := q.pending
	q.pending = nil
	q.frames++

	for _, fn := range callbacks {
		fn()
	}

	return len(callbacks)
}

// Flush ticks until no callback is pending or max frames were played.
// It returns the number of frames played.
func (q *Queue) Flush(max int) int {
	n := 0
	for n < max && len(q.pending) > 0 {
		q.Tick()
		n++
	}

	return n
}

func (q *Queue) Pending() int {
	return len(q.pending)
}

// Frames returns the number of ticks played so far.
func (q *Queue) Frames() int {
	return q.frames
}
