package engine

import (
	"context"
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-gl/engine/gfx"
)

// Host is the surface side of the engine: a window or view that owns a current GL context.
// window.Window satisfies it.
type Host interface {
	// ContextDescriptor describes the current context.
	ContextDescriptor() gfx.ContextDescriptor

	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (width, height int)

	// SetResizeCallback registers the framebuffer size change handler.
	SetResizeCallback(callback func(width, height int))

	// PollEvents processes pending input and window events.
	//
	// Returns:
	//   - bool: false once the host wants to stop
	PollEvents() bool

	// SwapBuffers presents the frame.
	SwapBuffers()
}

func (e *engine) Run(ctx context.Context, host Host) error {
	if err := e.OnContextCreated(host.ContextDescriptor()); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	e.OnSurfaceChanged(host.FramebufferSize())
	host.SetResizeCallback(e.OnSurfaceChanged)

	for ctx.Err() == nil && host.PollEvents() {
		if err := e.RenderFrame(ctx); err != nil {
			return fmt.Errorf("run: %w", err)
		}
		host.SwapBuffers()
	}

	log.Printf("[Engine] render loop stopped (smoothed fps %.1f)", e.Fps())
	return nil
}
