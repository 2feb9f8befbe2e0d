// Package gfxtest provides a recording gfx.Device for tests that need to observe GL traffic
// without a real context.
package gfxtest

import (
	"unsafe"

	"github.com/Carmen-Shannon/oxy-gl/engine/gfx"
)

// AttribCall captures one vertex attribute pointer call.
type AttribCall struct {
	Slot       uint32
	Size       int32
	Type       gfx.DataType
	Normalized bool
	Stride     int32

	// Pointer is set for client-memory calls.
	Pointer unsafe.Pointer

	// Offset is set for buffer-object calls.
	Offset uintptr

	// BoundBuffer is the ArrayBuffer binding at the time of the call.
	BoundBuffer uint32
}

// Recorder is a gfx.Device that records every call in order and emulates buffer binding state.
type Recorder struct {
	// Calls lists call names in issue order.
	Calls []string

	// Attribs lists every attribute pointer call.
	Attribs []AttribCall

	// Bound is the current binding per target.
	Bound map[gfx.BufferTarget]uint32

	// Buffers holds uploaded data by buffer name.
	Buffers map[uint32][]byte

	// Deleted lists deleted buffer names.
	Deleted []uint32

	// Enabled holds the capabilities currently enabled.
	Enabled map[gfx.Capability]bool

	// ClearRGBA is the last clear color.
	ClearRGBA [4]float32

	// Cleared lists the masks passed to Clear.
	Cleared []gfx.ClearMask

	// ViewportRect is the last viewport set.
	ViewportRect [4]int32

	nextBuffer uint32
	errors     []gfx.ErrorCode
}

var _ gfx.Device = &Recorder{}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		Bound:   make(map[gfx.BufferTarget]uint32),
		Buffers: make(map[uint32][]byte),
		Enabled: make(map[gfx.Capability]bool),
	}
}

// PushError queues an error code to be returned by the next Error call.
func (r *Recorder) PushError(code gfx.ErrorCode) {
	r.errors = append(r.errors, code)
}

// Count returns how many times the named call was issued.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c == name {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls but keeps binding and buffer state.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Attribs = nil
	r.Cleared = nil
}

func (r *Recorder) BindBuffer(target gfx.BufferTarget, id uint32) {
	r.Calls = append(r.Calls, "BindBuffer")
	r.Bound[target] = id
}

func (r *Recorder) VertexAttribPointer(slot uint32, size int32, typ gfx.DataType, normalized bool, stride int32, ptr unsafe.Pointer) {
	r.Calls = append(r.Calls, "VertexAttribPointer")
	r.Attribs = append(r.Attribs, AttribCall{
		Slot: slot, Size: size, Type: typ, Normalized: normalized, Stride: stride,
		Pointer:     ptr,
		BoundBuffer: r.Bound[gfx.ArrayBuffer],
	})
}

func (r *Recorder) VertexAttribOffset(slot uint32, size int32, typ gfx.DataType, normalized bool, stride int32, offset uintptr) {
	r.Calls = append(r.Calls, "VertexAttribOffset")
	r.Attribs = append(r.Attribs, AttribCall{
		Slot: slot, Size: size, Type: typ, Normalized: normalized, Stride: stride,
		Offset:      offset,
		BoundBuffer: r.Bound[gfx.ArrayBuffer],
	})
}

func (r *Recorder) GenBuffer() uint32 {
	r.Calls = append(r.Calls, "GenBuffer")
	r.nextBuffer++
	return r.nextBuffer
}

func (r *Recorder) BufferData(target gfx.BufferTarget, size int, data unsafe.Pointer, usage gfx.BufferUsage) {
	r.Calls = append(r.Calls, "BufferData")
	buf := make([]byte, size)
	if data != nil && size > 0 {
		copy(buf, unsafe.Slice((*byte)(data), size))
	}
	r.Buffers[r.Bound[target]] = buf
}

func (r *Recorder) DeleteBuffer(id uint32) {
	r.Calls = append(r.Calls, "DeleteBuffer")
	r.Deleted = append(r.Deleted, id)
	delete(r.Buffers, id)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.Calls = append(r.Calls, "ClearColor")
	r.ClearRGBA = [4]float32{red, green, blue, alpha}
}

func (r *Recorder) Clear(mask gfx.ClearMask) {
	r.Calls = append(r.Calls, "Clear")
	r.Cleared = append(r.Cleared, mask)
}

func (r *Recorder) Enable(c gfx.Capability) {
	r.Calls = append(r.Calls, "Enable")
	r.Enabled[c] = true
}

func (r *Recorder) Disable(c gfx.Capability) {
	r.Calls = append(r.Calls, "Disable")
	delete(r.Enabled, c)
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.Calls = append(r.Calls, "Viewport")
	r.ViewportRect = [4]int32{x, y, width, height}
}

func (r *Recorder) Error() gfx.ErrorCode {
	r.Calls = append(r.Calls, "Error")
	if len(r.errors) == 0 {
		return gfx.NoError
	}
	code := r.errors[0]
	r.errors = r.errors[1:]
	return code
}
