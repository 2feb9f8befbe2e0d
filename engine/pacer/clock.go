package pacer

import (
	"context"
	"time"
)

// Clock is the time source of a FramePacer.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Sleep blocks for d or until ctx is done.
	//
	// Parameters:
	//   - ctx: cancels the sleep early
	//   - d: the duration to block
	//
	// Returns:
	//   - error: ctx.Err() if the sleep was interrupted
	Sleep(ctx context.Context, d time.Duration) error
}

type systemClock struct{}

// SystemClock returns the wall clock.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
