package engine

import "time"

// DefaultFPS is used when a game reports a non-positive frame rate
const DefaultFPS = 60.0

// Scheduler paces frames on a fixed interval without drift
// The deadline advances by exactly one interval per Tick regardless of frame
// duration; an overrun frame makes the next Tick return immediately and no
// extra frames are inserted
type Scheduler struct {
	clock    Clock
	interval time.Duration
	deadline time.Time

	ticks    uint64
	overruns uint64
}

// NewScheduler creates a scheduler on the system clock; the first deadline is one interval from now
func NewScheduler(interval time.Duration) *Scheduler {
	return NewSchedulerWithClock(interval, SystemClock{})
}

// NewSchedulerFPS creates a scheduler ticking fps times per second
func NewSchedulerFPS(fps float64) *Scheduler {
	return NewScheduler(IntervalForFPS(fps))
}

// NewSchedulerWithClock creates a scheduler on the given clock
func NewSchedulerWithClock(interval time.Duration, clock Clock) *Scheduler {
	if interval <= 0 {
		interval = IntervalForFPS(DefaultFPS)
	}
	return &Scheduler{
		clock:    clock,
		interval: interval,
		deadline: clock.Now().Add(interval),
	}
}

// IntervalForFPS converts a frame rate to a frame interval
func IntervalForFPS(fps float64) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Duration(float64(time.Second) / fps)
}

// Tick blocks until the current deadline, then advances it by one interval
func (s *Scheduler) Tick() {
	if wait := s.deadline.Sub(s.clock.Now()); wait > 0 {
		s.clock.Sleep(wait)
	} else {
		s.overruns++
	}
	s.deadline = s.deadline.Add(s.interval)
	s.ticks++
}

// Interval returns the frame interval
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Deadline returns the time the next Tick waits for
func (s *Scheduler) Deadline() time.Time {
	return s.deadline
}

// Stats returns ticks taken and how many of them found the deadline already passed
func (s *Scheduler) Stats() (ticks, overruns uint64) {
	return s.ticks, s.overruns
}
