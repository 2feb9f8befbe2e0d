package gfx

import (
	"fmt"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-gl/common"
)

// ContextState is a step of the GL context lifecycle.
type ContextState int

const (
	// ContextUninitialized means no context exists yet, or the last one was lost.
	ContextUninitialized ContextState = iota

	// ContextCreated means a fresh context exists but global state has not been applied.
	ContextCreated

	// ContextReady means global state is applied and frames may be drawn.
	ContextReady
)

func (s ContextState) String() string {
	switch s {
	case ContextUninitialized:
		return "uninitialized"
	case ContextCreated:
		return "created"
	case ContextReady:
		return "ready"
	}
	return fmt.Sprintf("ContextState(%d)", int(s))
}

// ContextDescriptor describes the context reported by the host surface.
type ContextDescriptor struct {
	// Major and Minor are the GL version of the context.
	Major, Minor int

	// Width and Height are the initial framebuffer dimensions in pixels.
	Width, Height int
}

// Context is the GL context lifecycle state machine:
//
//	Uninitialized -> Created -> Ready
//	      ^------------|---------|  (Lost)
//	Created is re-entered from any state when the host recreates the context.
//
// Every Create starts a new generation. Handles stamped with an older generation are stale.
// A Context is owned by the render goroutine and is not safe for concurrent use.
type Context struct {
	state      ContextState
	generation uint64
	descriptor ContextDescriptor
}

// NewContext returns a Context in the Uninitialized state.
//
// Returns:
//   - *Context: the new context tracker
func NewContext() *Context {
	return &Context{}
}

// Create records a (re)created context and starts a new generation.
//
// Parameters:
//   - desc: the descriptor reported by the host
//
// Returns:
//   - uint64: the new generation
func (c *Context) Create(desc ContextDescriptor) uint64 {
	c.generation++
	c.descriptor = desc
	c.state = ContextCreated
	return c.generation
}

// MarkReady moves a Created context to Ready. Calling it on a Ready context is a no-op.
//
// Returns:
//   - error: ErrInvalidTransition if no context has been created
func (c *Context) MarkReady() error {
	switch c.state {
	case ContextCreated:
		c.state = ContextReady
		return nil
	case ContextReady:
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.state, ContextReady)
}

// Lose records that the host surface destroyed the context.
func (c *Context) Lose() {
	c.state = ContextUninitialized
}

// State returns the current lifecycle state.
func (c *Context) State() ContextState {
	return c.state
}

// Generation returns the current generation. Zero means no context was ever created.
func (c *Context) Generation() uint64 {
	return c.generation
}

// Descriptor returns the descriptor of the current context.
func (c *Context) Descriptor() ContextDescriptor {
	return c.descriptor
}

// Valid reports whether a handle belongs to the live context.
//
// Parameters:
//   - h: the handle to check
//
// Returns:
//   - bool: true if h was issued in the current generation and the context is not lost
func (c *Context) Valid(h BufferHandle) bool {
	return c.state != ContextUninitialized && h.Generation == c.generation && h.ID != 0
}

// BufferHandle references a device-resident buffer created in one context generation.
type BufferHandle struct {
	ID         uint32
	Generation uint64
}

// UploadBuffer creates a device buffer holding data and stamps it with the current generation.
// The ArrayBuffer binding is reset to 0 before returning.
//
// Parameters:
//   - dev: the device to upload with
//   - ctx: the live context
//   - data: the elements to upload
//   - usage: the usage hint
//
// Returns:
//   - BufferHandle: the new handle
//   - error: ErrContextNotReady if no context exists
func UploadBuffer[T any](dev Device, ctx *Context, data []T, usage BufferUsage) (BufferHandle, error) {
	if ctx.State() == ContextUninitialized {
		return BufferHandle{}, fmt.Errorf("upload buffer: %w", ErrContextNotReady)
	}

	raw := common.SliceToBytes(data)
	id := dev.GenBuffer()
	dev.BindBuffer(ArrayBuffer, id)
	var ptr unsafe.Pointer
	if len(raw) > 0 {
		ptr = unsafe.Pointer(&raw[0])
	}
	dev.BufferData(ArrayBuffer, len(raw), ptr, usage)
	dev.BindBuffer(ArrayBuffer, 0)

	return BufferHandle{ID: id, Generation: ctx.Generation()}, nil
}

// DeleteBuffer releases a device buffer if it belongs to the live context.
// Stale handles died with their context and are ignored.
//
// Parameters:
//   - dev: the device
//   - ctx: the live context
//   - h: the handle to release
//
// Returns:
//   - bool: true if the buffer was deleted
func DeleteBuffer(dev Device, ctx *Context, h BufferHandle) bool {
	if !ctx.Valid(h) {
		return false
	}
	dev.DeleteBuffer(h.ID)
	return true
}
