package internal

import (
	"iter"
)

type Owner struct {
	rt *Runtime

	// cleanup functions to be called once, on the next reset or dispose
	cleanups []func()

	// functions to be called each time the owner is disposed
	disposers []func()

	// panic error handlers
	catchers []func(any)

	parent       *Owner
	prevSibling  *Owner
	nextSibling  *Owner
	childrenHead *Owner
}

// NewOwner creates an owner attached to the current owner, if any.
func (r *Runtime) NewOwner() *Owner {
	o := &Owner{rt: r}

	if parent := r.tracker.CurrentOwner(); parent != nil {
		parent.AddChild(o)
	}

	return o
}

func (o *Owner) Run(fn func()) {
	o.rt.tracker.RunWithOwner(o, fn)
}

func (parent *Owner) AddChild(child *Owner) {
	child.parent = parent
	child.prevSibling = nil
	child.nextSibling = parent.childrenHead

	if parent.childrenHead != nil {
		parent.childrenHead.prevSibling = child
	}

	parent.childrenHead = child
}

func (parent *Owner) removeChild(child *Owner) {
	if child.prevSibling != nil {
		child.prevSibling.nextSibling = child.nextSibling
	} else if parent.childrenHead == child {
		parent.childrenHead = child.nextSibling
	}

	if child.nextSibling != nil {
		child.nextSibling.prevSibling = child.prevSibling
	}

	child.parent = nil
	child.prevSibling = nil
	child.nextSibling = nil
}

// Children iterates from the most recently added child to the oldest.
func (o *Owner) Children() iter.Seq[*Owner] {
	return func(yield func(*Owner) bool) {
		child := o.childrenHead

		for child != nil {
			next := child.nextSibling
			if !yield(child) {
				return
			}

			child = next
		}
	}
}

// Dispose tears down the owner's children, runs its cleanups and disposers,
// then detaches it from its parent.
func (o *Owner) Dispose() {
	o.Reset()

	for _, fn := range o.disposers {
		fn()
	}

	if o.parent != nil {
		o.parent.removeChild(o)
	}
}

// Reset disposes the children and runs pending cleanups, keeping the owner usable.
func (o *Owner) Reset() {
	o.DisposeChildren()

	cleanups := o.cleanups
	o.cleanups = nil

	for _, fn := range cleanups {
		fn()
	}
}

func (o *Owner) DisposeChildren() {
	for child := range o.Children() {
		child.Dispose()
	}
	o.childrenHead = nil
}

func (o *Owner) OnCleanup(fn func()) {
	o.cleanups = append(o.cleanups, fn)
}

func (o *Owner) OnDispose(fn func()) {
	o.disposers = append(o.disposers, fn)
}

func (o *Owner) OnError(fn func(any)) {
	o.catchers = append(o.catchers, fn)
}

// catch hands a recovered panic to the closest owner with error listeners.
// Without any listener up the tree, the panic propagates.
func (o *Owner) catch(r any) {
	for owner := o; owner != nil; owner = owner.parent {
		if len(owner.catchers) == 0 {
			continue
		}

		for _, catcher := range owner.catchers {
			catcher(r)
		}
		return
	}

	panic(r)
}
