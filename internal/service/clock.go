package service

import (
	"context"
	"time"
)

// Clock abstracts the time source so stores can be driven deterministically
// in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// sleep waits for the simulated round-trip latency. It returns early with
// the context's error if the caller is cancelled first; callers treat that
// as a whole-operation failure before any state change.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
