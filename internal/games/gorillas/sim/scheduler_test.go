package sim

import (
	"testing"
	"time"
)

func TestSchedulerRunsWhenDue(t *testing.T) {
	s := NewScheduler()
	ran := 0
	s.Schedule(2*time.Second, s.Generation(), func() { ran++ })

	s.Advance(time.Second)
	if ran != 0 {
		t.Fatal("task ran early")
	}
	s.Advance(time.Second)
	if ran != 1 {
		t.Fatalf("task should run once when due, ran %d", ran)
	}
	s.Advance(10 * time.Second)
	if ran != 1 {
		t.Errorf("task ran again")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after run", s.Pending())
	}
}

func TestSchedulerStaleGeneration(t *testing.T) {
	s := NewScheduler()
	ran := false
	s.Schedule(time.Second, s.Generation(), func() { ran = true })

	s.NextGeneration()
	s.Advance(2 * time.Second)

	if ran {
		t.Error("task from a superseded generation should be inert")
	}
	if s.Pending() != 0 {
		t.Error("stale task should still be dropped once due")
	}
}

func TestSchedulerOrderAndReentry(t *testing.T) {
	s := NewScheduler()
	var order []int
	gen := s.Generation()

	s.Schedule(time.Second, gen, func() {
		order = append(order, 1)
		s.Schedule(0, gen, func() { order = append(order, 3) })
	})
	s.Schedule(time.Second, gen, func() { order = append(order, 2) })

	s.Advance(time.Second)
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("order = %v, expected [1 2]", order)
	}

	s.Advance(0)
	if len(order) != 3 || order[2] != 3 {
		t.Errorf("task scheduled from a task should run on the next Advance, order = %v", order)
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	s := NewScheduler()
	ran := false
	s.Schedule(0, s.Generation(), func() { ran = true })
	s.CancelAll()
	s.Advance(time.Second)

	if ran {
		t.Error("cancelled task ran")
	}
}
