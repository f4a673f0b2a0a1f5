package core

import (
	"sort"
	"sync"
	"time"
)

type (
	// Timer is a pending callback that can be stopped before it fires.
	Timer interface {
		// Stop cancels the pending call. It reports whether the call was
		// stopped before firing.
		Stop() bool
	}

	// Scheduler schedules delayed callbacks. The payment flows use it instead
	// of time.AfterFunc directly so that tests can advance virtual time.
	Scheduler interface {
		AfterFunc(d time.Duration, fn func()) Timer
	}

	realScheduler struct{}
)

var _ Scheduler = (*realScheduler)(nil)

func NewScheduler() Scheduler { return realScheduler{} }

func (realScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// ManualScheduler is a Scheduler for tests: callbacks fire only when the
// virtual clock is advanced past their deadline.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	pending []*manualTimer
}

type manualTimer struct {
	sched    *ManualScheduler
	deadline time.Duration
	fn       func()
	stopped  bool
	fired    bool
}

var _ Scheduler = (*ManualScheduler)(nil)

func NewManualScheduler() *ManualScheduler { return &ManualScheduler{} }

func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{sched: s, deadline: s.now + d, fn: fn}
	s.pending = append(s.pending, t)
	return t
}

// Advance moves the virtual clock forward, firing due callbacks in deadline order.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	sort.SliceStable(s.pending, func(i, j int) bool { return s.pending[i].deadline < s.pending[j].deadline })
	var due []*manualTimer
	for _, t := range s.pending {
		if !t.stopped && !t.fired && t.deadline <= s.now {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	// fire outside the lock; callbacks may schedule again
	for _, t := range due {
		t.fn()
	}
}

func (t *manualTimer) Stop() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}
