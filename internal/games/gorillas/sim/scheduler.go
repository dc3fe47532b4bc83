package sim

import "time"

type task struct {
	due        time.Duration
	generation uint64
	fn         func()
}

// Scheduler runs deferred work on the simulation loop. Each task is
// bound to the round generation it was scheduled in; tasks whose
// generation is no longer current when they come due are dropped.
type Scheduler struct {
	now        time.Duration
	generation uint64
	tasks      []task
}

// NewScheduler returns an empty scheduler at generation 0.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Generation returns the current round generation.
func (s *Scheduler) Generation() uint64 {
	return s.generation
}

// NextGeneration starts a new round generation and returns it.
// Everything scheduled earlier becomes inert.
func (s *Scheduler) NextGeneration() uint64 {
	s.generation++
	return s.generation
}

// Schedule runs fn after delay, provided generation is still current.
func (s *Scheduler) Schedule(delay time.Duration, generation uint64, fn func()) {
	s.tasks = append(s.tasks, task{due: s.now + delay, generation: generation, fn: fn})
}

// Pending returns the number of queued tasks, stale ones included.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Advance moves the clock forward and runs every task that came due,
// in the order they were scheduled. Tasks scheduled while running are
// considered on the next Advance.
func (s *Scheduler) Advance(dt time.Duration) {
	s.now += dt

	due := s.tasks[:0:0]
	keep := s.tasks[:0]
	for _, t := range s.tasks {
		if t.due <= s.now {
			due = append(due, t)
		} else {
			keep = append(keep, t)
		}
	}
	s.tasks = keep

	for _, t := range due {
		if t.generation == s.generation {
			t.fn()
		}
	}
}

// CancelAll drops every queued task.
func (s *Scheduler) CancelAll() {
	s.tasks = nil
}
