// Package glbackend implements gfx.Device on top of OpenGL 2.1 through go-gl.
// GL 2.1 still accepts client-side vertex arrays, so both client-memory and buffer-object
// attribute binders work against the same context.
package glbackend

import (
	"fmt"
	"log"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-gl/engine/gfx"
	"github.com/go-gl/gl/v2.1/gl"
)

type device struct{}

var _ gfx.Device = device{}

// NewDevice loads the GL function pointers for the context current on the calling thread
// and returns a Device issuing calls into it.
// Must be called after the host made its context current (see window.NewWindow).
//
// Reference: https://pkg.go.dev/github.com/go-gl/gl/v2.1/gl#Init
//
// Returns:
//   - gfx.Device: the GL device
//   - error: error if the GL entry points could not be loaded
func NewDevice() (gfx.Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Printf("[GL] version %s, renderer %s", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))
	return device{}, nil
}

func (device) BindBuffer(target gfx.BufferTarget, id uint32) {
	gl.BindBuffer(uint32(target), id)
}

func (device) VertexAttribPointer(slot uint32, size int32, typ gfx.DataType, normalized bool, stride int32, ptr unsafe.Pointer) {
	gl.VertexAttribPointer(slot, size, uint32(typ), normalized, stride, ptr)
}

func (device) VertexAttribOffset(slot uint32, size int32, typ gfx.DataType, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointer(slot, size, uint32(typ), normalized, stride, gl.PtrOffset(int(offset)))
}

func (device) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (device) BufferData(target gfx.BufferTarget, size int, data unsafe.Pointer, usage gfx.BufferUsage) {
	gl.BufferData(uint32(target), size, data, uint32(usage))
}

func (device) DeleteBuffer(id uint32) {
	gl.DeleteBuffers(1, &id)
}

func (device) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (device) Clear(mask gfx.ClearMask) {
	gl.Clear(uint32(mask))
}

func (device) Enable(c gfx.Capability) {
	gl.Enable(uint32(c))
}

func (device) Disable(c gfx.Capability) {
	gl.Disable(uint32(c))
}

func (device) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (device) Error() gfx.ErrorCode {
	return gfx.ErrorCode(gl.GetError())
}
