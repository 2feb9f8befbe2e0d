package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickReportsPerInterval(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewProfiler(time.Second)
	p.now = func() time.Time { return clock }
	p.windowStart = clock

	start := clock
	for i := 0; i < 59; i++ {
		clock = clock.Add(16 * time.Millisecond)
		assert.False(t, p.Tick(FrameStats{SmoothedFps: 60}))
	}
	clock = start.Add(time.Second)
	assert.True(t, p.Tick(FrameStats{SmoothedFps: 59.5, GLError: true}))

	r := p.Last()
	assert.Equal(t, 60, r.Frames)
	assert.InDelta(t, 60, r.MeasuredFps, 1e-9)
	assert.Equal(t, float32(59.5), r.SmoothedFps)
	assert.Equal(t, 1, r.GLErrors)
	assert.Contains(t, r.String(), "smoothed 59.50")

	clock = clock.Add(10 * time.Millisecond)
	assert.False(t, p.Tick(FrameStats{}), "a new window starts after each report")
}

func TestNewProfilerDefaultsInterval(t *testing.T) {
	assert.Equal(t, time.Second, NewProfiler(0).interval)
}
