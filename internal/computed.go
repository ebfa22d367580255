package internal

import "iter"

type Computed struct {
	*Owner
	*Signal

	flags NodeFlags

	// called whenever the node is pulled out of the dirty heap
	fn func()

	depsHead *DependencyLink

	compute func() any
}

func (r *Runtime) newComputedNode() *Computed {
	c := &Computed{
		Owner:  r.NewOwner(),
		Signal: r.NewSignal(nil),
	}

	c.OnDispose(func() {
		c.AddFlag(FlagDisposed)
		r.heap.Remove(c)
		c.ClearDeps()
	})

	return c
}

// NewComputed creates an eager memo: its value is computed right away
// and recomputed each time one of its dependencies changes.
func (r *Runtime) NewComputed(compute func() any) *Computed {
	c := r.newComputedNode()
	c.compute = compute
	c.fn = c.update

	c.update()

	return c
}

func (c *Computed) update() {
	prev := c.value

	c.Reset()
	c.ClearDeps()

	var next any
	c.Owner.rt.tracker.RunWithComputation(c, func() { next = c.compute() })
	c.value = next

	// propagate only when the value actually changed
	if !isEqual(prev, next) {
		c.Owner.rt.heap.InsertAll(c.Subs())
	}
}

// Link creates a bidirectional dependency link between this node (subscriber) and the given node (dependency).
func (c *Computed) Link(dep *Signal) {
	// dont link if already present as the most recent dependency
	if c.depsHead != nil && c.depsHead.prevDep.dep == dep {
		return
	}

	link := &DependencyLink{dep: dep, sub: c}

	c.addDepLink(link)
	dep.addSubLink(link)

	if dep.height >= c.height {
		c.height = dep.height + 1
	}
}

// Deps returns an iterator over all dependencies
func (c *Computed) Deps() iter.Seq[*Signal] {
	return func(yield func(*Signal) bool) {
		for link := c.depsHead; link != nil; link = link.nextDep {
			if !yield(link.dep) {
				return
			}
		}
	}
}

// ClearDeps removes all dependencies
func (c *Computed) ClearDeps() {
	for link := c.depsHead; link != nil; {
		next := link.nextDep
		link.dep.removeSubLink(link)
		link = next
	}

	c.depsHead = nil
}

func (c *Computed) addDepLink(link *DependencyLink) {
	if c.depsHead == nil {
		c.depsHead = link
		link.prevDep = link // loop to self
		link.nextDep = nil
		return
	}

	tail := c.depsHead.prevDep
	tail.nextDep = link
	link.prevDep = tail
	link.nextDep = nil
	c.depsHead.prevDep = link
}

func (c *Computed) HasFlag(f NodeFlags) bool { return c.flags&f != 0 }
func (c *Computed) AddFlag(f NodeFlags)      { c.flags |= f }
func (c *Computed) RemoveFlag(f NodeFlags)   { c.flags &^= f }
