// Package testutil provides deterministic substitutes for the engine's
// time-dependent collaborators.
package testutil

import (
	"context"
	"sync"
	"time"
)

// VirtualScheduler satisfies engine.Scheduler without wall-clock waits:
// Sleep returns immediately and records the requested duration. Tests
// assert on the recorded sequence to verify per-step delays without
// slowing the suite down.
//
// Thread-safety: safe for concurrent use, though the engine only ever
// sleeps from one goroutine.
type VirtualScheduler struct {
	mu     sync.Mutex
	sleeps []time.Duration
}

// NewVirtualScheduler creates an empty virtual scheduler.
func NewVirtualScheduler() *VirtualScheduler {
	return &VirtualScheduler{}
}

// Sleep records d and returns immediately. Honors context cancellation
// so cancelled runs stop at the same suspend point they would with real
// timers.
func (v *VirtualScheduler) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	v.mu.Lock()
	v.sleeps = append(v.sleeps, d)
	v.mu.Unlock()
	return nil
}

// Sleeps returns a copy of the recorded durations in request order.
func (v *VirtualScheduler) Sleeps() []time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]time.Duration, len(v.sleeps))
	copy(out, v.sleeps)
	return out
}

// Total returns the summed virtual time the run would have waited.
func (v *VirtualScheduler) Total() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	var total time.Duration
	for _, d := range v.sleeps {
		total += d
	}
	return total
}

// Reset clears recorded sleeps for test reuse.
func (v *VirtualScheduler) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sleeps = nil
}
