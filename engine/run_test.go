package engine

import (
	"context"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-gl/engine/gfx"
	"github.com/Carmen-Shannon/oxy-gl/engine/gfx/gfxtest"
	"github.com/Carmen-Shannon/oxy-gl/engine/pacer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	frames   int
	polls    int
	swaps    int
	onResize func(width, height int)
}

func (h *fakeHost) ContextDescriptor() gfx.ContextDescriptor { return desc }

func (h *fakeHost) FramebufferSize() (int, int) { return desc.Width, desc.Height }

func (h *fakeHost) SetResizeCallback(callback func(width, height int)) { h.onResize = callback }

func (h *fakeHost) PollEvents() bool {
	h.polls++
	if h.polls == 2 && h.onResize != nil {
		h.onResize(320, 240)
	}
	return h.polls <= h.frames
}

func (h *fakeHost) SwapBuffers() { h.swaps++ }

func TestRunDrivesHost(t *testing.T) {
	dev := gfxtest.NewRecorder()
	e := NewEngine(WithDevice(dev))
	host := &fakeHost{frames: 3}

	require.NoError(t, e.Run(context.Background(), host))

	assert.Equal(t, 3, host.swaps)
	assert.Equal(t, gfx.ContextReady, e.Context().State())
	assert.Equal(t, [4]int32{0, 0, 320, 240}, dev.ViewportRect)
}

func TestRunStopsOnCancel(t *testing.T) {
	e := NewEngine(WithDevice(gfxtest.NewRecorder()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	host := &fakeHost{frames: 100}
	require.NoError(t, e.Run(ctx, host))
	assert.Zero(t, host.swaps)
}

// cancelHost cancels the run while the given poll is in progress.
type cancelHost struct {
	fakeHost
	cancelAt int
	cancel   context.CancelFunc
}

func (h *cancelHost) PollEvents() bool {
	if h.polls+1 == h.cancelAt {
		h.cancel()
	}
	return h.fakeHost.PollEvents()
}

func TestRunFinishesFrameInProgressOnCancel(t *testing.T) {
	clock := pacer.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	tr := &trace{}
	e := NewEngine(WithDevice(gfxtest.NewRecorder()), WithClock(clock), WithMaximumFps(30), WithMainRenderPass(tr.add("main")))
	ctx, cancel := context.WithCancel(context.Background())

	host := &cancelHost{fakeHost: fakeHost{frames: 100}, cancelAt: 2, cancel: cancel}
	require.NoError(t, e.Run(ctx, host))

	assert.Equal(t, 2, host.swaps, "the frame whose wait was cut short is still presented")
	assert.Equal(t, []string{"main", "main"}, tr.events)
}

func TestRunWithoutDevice(t *testing.T) {
	err := NewEngine().Run(context.Background(), &fakeHost{frames: 1})
	assert.ErrorIs(t, err, ErrNoDevice)
}
