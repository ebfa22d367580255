package internal

type Signal struct {
	rt *Runtime

	value any

	// the current height of the node in the dependency graph
	height int

	subsHead *DependencyLink
}

func (r *Runtime) NewSignal(initial any) *Signal {
	return &Signal{
		rt:    r,
		value: initial,
	}
}

func (s *Signal) Read() any {
	s.rt.tracker.Track(s)

	return s.value
}

// Write stores v and marks every subscriber dirty.
// Writing a value equal to the current one is a no-op.
func (s *Signal) Write(v any) {
	if isEqual(s.value, v) {
		return
	}

	s.value = v

	s.rt.heap.InsertAll(s.Subs())
	s.rt.Schedule()
}

// Value returns the current value without tracking.
func (s *Signal) Value() any {
	return s.value
}
