package internal

// Runtime owns the reactive graph of a single thread of execution.
// It is not safe for concurrent use; each goroutine gets its own (see GetRuntime).
type Runtime struct {
	heap        *PriorityHeap
	tracker     *Tracker
	batcher     *Batcher
	scheduler   *Scheduler
	effectQueue *EffectQueue
}

func NewRuntime() *Runtime {
	return &Runtime{
		heap:        NewHeap(),
		tracker:     NewTracker(),
		batcher:     NewBatcher(),
		scheduler:   NewScheduler(),
		effectQueue: NewEffectQueue(),
	}
}

func (r *Runtime) Schedule() {
	r.scheduler.Schedule()

	if !r.batcher.IsBatching() {
		r.Flush()
	}
}

// Flush recomputes dirty nodes then runs queued effects,
// until effects stop scheduling more work.
func (r *Runtime) Flush() {
	r.scheduler.Run(func() {
		for !r.heap.Empty() || !r.effectQueue.Empty() {
			r.heap.Drain(r.recompute)

			r.effectQueue.RunEffects(EffectRender)
			r.effectQueue.RunEffects(EffectUser)
		}
	})
}

func (r *Runtime) CurrentOwner() *Owner {
	return r.tracker.CurrentOwner()
}

func (r *Runtime) CurrentComputation() *Computed {
	return r.tracker.CurrentComputation()
}

func (r *Runtime) OnCleanup(fn func()) {
	owner := r.CurrentOwner()
	if owner != nil {
		owner.OnCleanup(fn)
	}
}

func (r *Runtime) Untrack(fn func()) {
	r.tracker.RunUntracked(fn)
}

func (r *Runtime) recompute(node *Computed) {
	if node.HasFlag(FlagDisposed) || node.fn == nil {
		return
	}

	node.fn()
}
