package collect

import "time"

// Scheduler defers work until an idle interval. The incremental collector
// never calls fn directly; every continuation goes through Schedule so the
// interactive session gets control back between directory levels.
type Scheduler interface {
	Schedule(fn func())
}

// IdleScheduler runs deferred work on a timer after a fixed idle interval.
type IdleScheduler struct {
	Interval time.Duration
}

// DefaultIdleInterval matches one frame at ~20fps, long enough for input
// handling to stay responsive between build slices.
const DefaultIdleInterval = 50 * time.Millisecond

func (s IdleScheduler) Schedule(fn func()) {
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultIdleInterval
	}
	time.AfterFunc(interval, fn)
}

// ManualScheduler queues deferred work and runs it only when stepped,
// giving tests and message-driven hosts deterministic control over the
// incremental build.
type ManualScheduler struct {
	queue     []func()
	Scheduled int // total number of Schedule calls
}

func (s *ManualScheduler) Schedule(fn func()) {
	s.Scheduled++
	s.queue = append(s.queue, fn)
}

// Step runs the oldest pending unit of work. It reports false when nothing
// is pending.
func (s *ManualScheduler) Step() bool {
	if len(s.queue) == 0 {
		return false
	}
	fn := s.queue[0]
	s.queue = s.queue[1:]
	fn()
	return true
}

// Drain steps until no work remains, returning the number of steps run.
func (s *ManualScheduler) Drain() int {
	steps := 0
	for s.Step() {
		steps++
	}
	return steps
}
