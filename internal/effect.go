package internal

type EffectType int

const (
	EffectRender EffectType = iota
	EffectUser
)

// Effect is a computed node whose "value" is a side effect.
// It runs once when created, then is queued each time it gets dirty.
type Effect struct {
	*Computed

	typ    EffectType
	effect func()
}

func (r *Runtime) NewEffect(typ EffectType, effect func()) *Effect {
	e := &Effect{
		Computed: r.newComputedNode(),
		typ:      typ,
		effect:   effect,
	}
	e.fn = func() {
		r.effectQueue.Enqueue(typ, e.run)
	}

	e.run()

	return e
}

func (e *Effect) run() {
	if e.HasFlag(FlagDisposed) {
		return
	}

	// cleanups and nested nodes of the previous run go first
	e.Reset()
	e.ClearDeps()

	e.Owner.rt.tracker.RunWithComputation(e.Computed, e.effect)
}
