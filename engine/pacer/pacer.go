// Package pacer limits and measures the frame rate of a render loop.
package pacer

import (
	"context"
	"log"
	"math"
	"time"
)

// smoothing is the weight of the previous FPS estimate in the moving average.
const smoothing = 0.95

type framePacer struct {
	clock Clock

	interval  time.Duration // 0 = unlimited
	lastFrame time.Time
	fps       float32
	frames    uint64
}

// FramePacer spaces frames to a maximum rate and keeps an exponentially smoothed FPS estimate.
// It is meant to be driven from the render goroutine only.
type FramePacer interface {
	// Pace is called once at the start of every frame. When a maximum rate is set and the
	// previous frame started less than one interval ago, it blocks for the remainder.
	// The schedule then advances by exactly one interval so short sleeps do not drift;
	// otherwise it restarts at the current time.
	//
	// Parameters:
	//   - ctx: interrupts the wait
	//
	// Returns:
	//   - error: ctx.Err() if the wait was interrupted; the schedule and estimate are updated anyway
	Pace(ctx context.Context) error

	// SetMaximumFps sets the frame rate limit. 0 or less disables it.
	// The interval is rounded to whole milliseconds.
	//
	// Parameters:
	//   - fps: the maximum frame rate
	SetMaximumFps(fps float32)

	// MaximumFps returns the effective limit derived from the rounded interval, or 0 when unlimited.
	MaximumFps() float32

	// Interval returns the minimum frame spacing, or 0 when unlimited.
	Interval() time.Duration

	// Fps returns the smoothed frame rate.
	Fps() float32

	// Frames returns how many times Pace was called.
	Frames() uint64
}

var _ FramePacer = &framePacer{}

// NewFramePacer creates an unlimited pacer on the system clock. The first frame is measured
// from construction time.
//
// Parameters:
//   - options: functional options to configure the pacer
//
// Returns:
//   - FramePacer: the new pacer
func NewFramePacer(options ...FramePacerOption) FramePacer {
	p := &framePacer{
		clock: SystemClock(),
	}
	for _, option := range options {
		option(p)
	}
	p.lastFrame = p.clock.Now()
	return p
}

func (p *framePacer) Pace(ctx context.Context) error {
	now := p.clock.Now()
	last := p.lastFrame
	p.frames++

	var err error
	if wait := p.interval - now.Sub(last); p.interval > 0 && wait > 0 {
		err = p.clock.Sleep(ctx, wait)
		p.lastFrame = last.Add(p.interval)
	} else {
		p.lastFrame = now
	}

	if dt := p.lastFrame.Sub(last); dt > 0 {
		inst := float32(float64(time.Second) / float64(dt))
		p.fps = p.fps*smoothing + inst*(1-smoothing)
	}
	return err
}

func (p *framePacer) SetMaximumFps(fps float32) {
	if fps <= 0 {
		p.interval = 0
	} else {
		p.interval = time.Duration(math.Round(1000/float64(fps))) * time.Millisecond
	}
	log.Printf("[Pacer] maximum frame rate set to %.2f (interval %s)", fps, p.interval)
}

func (p *framePacer) MaximumFps() float32 {
	if p.interval == 0 {
		return 0
	}
	return float32(time.Second) / float32(p.interval)
}

func (p *framePacer) Interval() time.Duration {
	return p.interval
}

func (p *framePacer) Fps() float32 {
	return p.fps
}

func (p *framePacer) Frames() uint64 {
	return p.frames
}
