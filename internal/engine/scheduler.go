package engine

import (
	"context"
	"time"
)

// Scheduler is the engine's suspend point: each step waits out its
// node's delay through this interface before executing. Pulling the wait
// behind an interface keeps the sequential one-at-a-time contract
// testable without wall-clock sleeps (see testutil.VirtualScheduler).
type Scheduler interface {
	// Sleep blocks for d or until ctx is cancelled, whichever comes
	// first. Returns the context's error on cancellation.
	Sleep(ctx context.Context, d time.Duration) error
}

// TimerScheduler waits on real timers. This is the production scheduler.
type TimerScheduler struct{}

// Sleep implements Scheduler using a time.Timer.
func (TimerScheduler) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
