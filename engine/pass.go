package engine

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/gfx"
)

// RenderPass draws one stage of a frame.
type RenderPass interface {
	// Render issues the pass's draw calls.
	//
	// Parameters:
	//   - e: the engine rendering the frame
	Render(e Engine)
}

// RenderPassFunc adapts a function to a RenderPass.
type RenderPassFunc func(e Engine)

// Render calls f(e).
func (f RenderPassFunc) Render(e Engine) {
	f(e)
}

// Node is the root of whatever the main pass draws.
type Node interface {
	// Render draws the node and its children with the engine's current state.
	//
	// Parameters:
	//   - e: the engine rendering the frame
	Render(e Engine)
}

// ScreenPass is the default main pass: it clears the default framebuffer and renders the
// engine's scene, if one is set.
type ScreenPass struct {
	// ClearMask selects what is cleared. Zero clears color and depth.
	ClearMask gfx.ClearMask
}

var _ RenderPass = &ScreenPass{}

func (p *ScreenPass) Render(e Engine) {
	mask := p.ClearMask
	if mask == 0 {
		mask = gfx.ColorBufferBit | gfx.DepthBufferBit
	}
	e.Device().Clear(mask)
	if s := e.Scene(); s != nil {
		s.Render(e)
	}
}

// FrameListener observes the engine's lifecycle. All callbacks run on the render goroutine.
type FrameListener interface {
	// OnLoadScene is called after every (re)created context once global state is applied.
	// Device resources must be (re)created here.
	OnLoadScene(e Engine)

	// OnRenderFrameStart is called at the start of every frame, after the state reset.
	OnRenderFrameStart(e Engine)

	// OnRenderMainPassStart is called after the camera wrote its matrices, right before the main pass.
	OnRenderMainPassStart(e Engine)
}

// FrameListenerFuncs adapts optional functions to a FrameListener. Nil fields are skipped.
type FrameListenerFuncs struct {
	LoadScene           func(e Engine)
	RenderFrameStart    func(e Engine)
	RenderMainPassStart func(e Engine)
}

var _ FrameListener = FrameListenerFuncs{}

func (f FrameListenerFuncs) OnLoadScene(e Engine) {
	if f.LoadScene != nil {
		f.LoadScene(e)
	}
}

func (f FrameListenerFuncs) OnRenderFrameStart(e Engine) {
	if f.RenderFrameStart != nil {
		f.RenderFrameStart(e)
	}
}

func (f FrameListenerFuncs) OnRenderMainPassStart(e Engine) {
	if f.RenderMainPassStart != nil {
		f.RenderMainPassStart(e)
	}
}

// ResourceManager owns device resources that die with the GL context.
type ResourceManager interface {
	// OnContextRecreated is called when a new context generation starts, before global state is
	// applied. Every handle issued in an earlier generation is already invalid.
	//
	// Parameters:
	//   - ctx: the context tracker, now in the Created state
	OnContextRecreated(ctx *gfx.Context)
}
