package engine

import "sync/atomic"

// Clock is a monotonic logical clock. Every executed step is stamped
// with a strictly increasing seq number from it, giving recorded frames
// a deterministic order that survives replay regardless of wall-clock
// timing.
//
// Thread-safety: atomic, though the engine's one-step-at-a-time model
// means a single goroutine calls Next during a run.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a clock starting at 0; the first Next returns 1.
func NewClock() *Clock {
	return &Clock{}
}

// Next returns the next sequence number and increments the clock.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
