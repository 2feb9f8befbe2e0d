// Package profiler periodically logs frame rate, GL error and memory statistics of a render loop.
package profiler

import (
	"fmt"
	"log"
	"runtime"
	"time"
)

// FrameStats is what the engine reports for one finished frame.
type FrameStats struct {
	// SmoothedFps is the pacer's moving-average frame rate.
	SmoothedFps float32
	// GLError is true if the device reported an error at the end of the frame.
	GLError bool
}

// Report is one logged sample.
type Report struct {
	Frames      int
	MeasuredFps float64
	SmoothedFps float32
	GLErrors    int
	HeapMB      float64
	AllocRateMB float64
	GCCount     uint32
	MaxPauseUs  uint64
	SysMB       float64
}

func (r Report) String() string {
	return fmt.Sprintf("FPS: %.2f (smoothed %.2f) | GL errors: %d | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (max pause: %d µs) | Sys: %.2f MB",
		r.MeasuredFps, r.SmoothedFps, r.GLErrors, r.HeapMB, r.AllocRateMB, r.GCCount, r.MaxPauseUs, r.SysMB)
}

// Profiler aggregates FrameStats and logs a Report once per interval.
type Profiler struct {
	now            func() time.Time
	interval       time.Duration
	frames         int
	glErrors       int
	windowStart    time.Time
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Report
}

// NewProfiler creates a Profiler logging every interval.
//
// Parameters:
//   - interval: the reporting period, 0 defaults to one second
//
// Returns:
//   - *Profiler: the new profiler
func NewProfiler(interval time.Duration) *Profiler {
	if interval <= 0 {
		interval = time.Second
	}
	p := &Profiler{now: time.Now, interval: interval}
	p.windowStart = p.now()
	return p
}

// Tick records one frame. When the interval has elapsed it builds a Report, logs it and
// starts a new window.
//
// Parameters:
//   - stats: the finished frame's statistics
//
// Returns:
//   - bool: true if a report was logged this tick
func (p *Profiler) Tick(stats FrameStats) bool {
	p.frames++
	if stats.GLError {
		p.glErrors++
	}

	now := p.now()
	elapsed := now.Sub(p.windowStart)
	if elapsed < p.interval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	r := Report{
		Frames:      p.frames,
		MeasuredFps: float64(p.frames) / elapsed.Seconds(),
		SmoothedFps: stats.SmoothedFps,
		GLErrors:    p.glErrors,
		HeapMB:      float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB: float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds(),
		GCCount:     p.memStats.NumGC,
		MaxPauseUs:  p.maxPauseSince(p.lastGCCount),
		SysMB:       float64(p.memStats.Sys) / 1024 / 1024,
	}
	log.Printf("[Profiler] %s", r)

	p.last = r
	p.frames = 0
	p.glErrors = 0
	p.windowStart = now
	p.lastGCCount = p.memStats.NumGC
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Last returns the most recent report.
func (p *Profiler) Last() Report {
	return p.last
}

// maxPauseSince scans the circular pause buffer (last 256 collections) for the longest pause
// after collection number from.
func (p *Profiler) maxPauseSince(from uint32) uint64 {
	n := p.memStats.NumGC
	if n-from > 256 {
		from = n - 256
	}
	var max uint64
	for i := from; i < n; i++ {
		if pause := p.memStats.PauseNs[i%256] / 1000; pause > max {
			max = pause
		}
	}
	return max
}
