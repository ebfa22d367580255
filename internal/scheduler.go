package internal

type Scheduler struct {
	scheduled bool
	running   bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Run executes fn unless a run is already in progress or nothing was scheduled.
// Work scheduled during a run is picked up by that run.
func (s *Scheduler) Run(fn func()) {
	if s.running || !s.scheduled {
		return
	}

	s.scheduled = false
	s.running = true
	defer func() { s.running = false }()

	fn()
}

func (s *Scheduler) Schedule() {
	s.scheduled = true
}
