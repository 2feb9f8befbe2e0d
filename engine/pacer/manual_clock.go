package pacer

import (
	"context"
	"time"
)

// ManualClock is a Clock that only moves when told to. Sleep advances it instantly.
type ManualClock struct {
	now    time.Time
	Sleeps []time.Duration
}

var _ Clock = &ManualClock{}

// NewManualClock returns a clock stopped at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Advance moves the clock forward.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func (c *ManualClock) Now() time.Time {
	return c.now
}

func (c *ManualClock) Sleep(ctx context.Context, d time.Duration) error {
	c.Sleeps = append(c.Sleeps, d)
	if err := ctx.Err(); err != nil {
		return err
	}
	c.now = c.now.Add(d)
	return nil
}
