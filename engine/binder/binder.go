// Package binder wires vertex data to shader attribute slots. One AttributeSource describes a
// single attribute (component type, count, stride, offset) over either client memory or a
// device-resident buffer, and issues the attribute pointer call when bound.
package binder

import (
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-gl/engine/gfx"
	"github.com/cogentcore/webgpu/wgpu"
)

type sourceKind int

const (
	kindClient sourceKind = iota
	kindDevice
)

func (k sourceKind) String() string {
	if k == kindDevice {
		return "device"
	}
	return "client"
}

type attributeSource struct {
	kind   sourceKind
	device gfx.Device

	// client memory
	buffer *ClientBuffer

	// device buffer
	context *gfx.Context
	handle  gfx.BufferHandle

	dataType gfx.DataType
	size     int32
	stride   int32
	offset   int
}

// AttributeSource binds one vertex attribute to a shader slot.
// Type, size, stride and offset may change between binds; the underlying storage may not.
type AttributeSource interface {
	// BindAttribute points the given attribute slot at this source's data.
	// The slot is not validated against the active program: an invalid slot still reports
	// success and the device flags it through its error query.
	//
	// Parameters:
	//   - slot: the attribute location
	//
	// Returns:
	//   - bool: false if the storage cannot be bound (unknown data type, stale device handle,
	//     offset at or past the end of client memory)
	BindAttribute(slot uint32) bool

	// DataType returns the component type.
	DataType() gfx.DataType

	// SetDataType sets the component type.
	SetDataType(t gfx.DataType)

	// Size returns the number of components per vertex.
	Size() int32

	// SetSize sets the number of components per vertex (1 to 4).
	SetSize(size int32)

	// Stride returns the byte distance between consecutive vertices, 0 meaning tightly packed.
	Stride() int32

	// SetStride sets the byte distance between consecutive vertices.
	SetStride(stride int32)

	// Offset returns the start of the attribute in elements of DataType.
	Offset() int

	// SetOffset sets the start of the attribute in elements of DataType.
	SetOffset(offset int)

	// ByteOffset returns Offset scaled by the component size of DataType.
	ByteOffset() int

	// VertexBufferLayout describes this attribute as a WebGPU vertex buffer layout.
	//
	// Parameters:
	//   - slot: the shader location to assign
	//
	// Returns:
	//   - wgpu.VertexBufferLayout: single-attribute layout
	//   - bool: false if the type and size have no WebGPU vertex format
	VertexBufferLayout(slot uint32) (wgpu.VertexBufferLayout, bool)
}

var _ AttributeSource = &attributeSource{}

// NewClientBinder creates a source over process memory.
//
// Parameters:
//   - device: the device to issue calls to
//   - buffer: the vertex data
//   - size: components per vertex
//   - stride: bytes between vertices, 0 for tightly packed
//   - options: functional options to configure the source
//
// Returns:
//   - AttributeSource: the source, DataType Float and Offset 0 unless overridden
func NewClientBinder(device gfx.Device, buffer *ClientBuffer, size, stride int32, options ...BinderOption) AttributeSource {
	s := &attributeSource{
		kind:     kindClient,
		device:   device,
		buffer:   buffer,
		dataType: gfx.Float,
		size:     size,
		stride:   stride,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// NewDeviceBinder creates a source over a device-resident buffer.
// Binding fails once ctx has moved to a newer generation than the handle's.
//
// Parameters:
//   - device: the device to issue calls to
//   - ctx: the context tracker the handle is validated against
//   - handle: the buffer handle, see gfx.UploadBuffer
//   - size: components per vertex
//   - stride: bytes between vertices, 0 for tightly packed
//   - options: functional options to configure the source
//
// Returns:
//   - AttributeSource: the source, DataType Float and Offset 0 unless overridden
func NewDeviceBinder(device gfx.Device, ctx *gfx.Context, handle gfx.BufferHandle, size, stride int32, options ...BinderOption) AttributeSource {
	s := &attributeSource{
		kind:     kindDevice,
		device:   device,
		context:  ctx,
		handle:   handle,
		dataType: gfx.Float,
		size:     size,
		stride:   stride,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *attributeSource) BindAttribute(slot uint32) bool {
	if s.dataType.Size() == 0 {
		log.Printf("[Binder] slot %d: unknown data type 0x%04X", slot, uint32(s.dataType))
		return false
	}
	switch s.kind {
	case kindDevice:
		return s.bindDevice(slot)
	default:
		return s.bindClient(slot)
	}
}

func (s *attributeSource) bindClient(slot uint32) bool {
	if err := s.buffer.SetPosition(s.ByteOffset()); err != nil {
		log.Printf("[Binder] slot %d: %v", slot, err)
		return false
	}
	ptr := s.buffer.Pointer()
	if ptr == nil {
		log.Printf("[Binder] slot %d: no data at byte %d of %d", slot, s.ByteOffset(), s.buffer.Len())
		return false
	}
	s.device.VertexAttribPointer(slot, s.size, s.dataType, false, s.stride, ptr)
	return true
}

func (s *attributeSource) bindDevice(slot uint32) bool {
	if !s.context.Valid(s.handle) {
		log.Printf("[Binder] slot %d: %v", slot, fmt.Errorf("%w: buffer %d from generation %d, context at %d",
			gfx.ErrStaleHandle, s.handle.ID, s.handle.Generation, s.context.Generation()))
		return false
	}
	s.device.BindBuffer(gfx.ArrayBuffer, s.handle.ID)
	s.device.VertexAttribOffset(slot, s.size, s.dataType, false, s.stride, uintptr(s.ByteOffset()))
	s.device.BindBuffer(gfx.ArrayBuffer, 0)
	return true
}

func (s *attributeSource) DataType() gfx.DataType {
	return s.dataType
}

func (s *attributeSource) SetDataType(t gfx.DataType) {
	s.dataType = t
}

func (s *attributeSource) Size() int32 {
	return s.size
}

func (s *attributeSource) SetSize(size int32) {
	s.size = size
}

func (s *attributeSource) Stride() int32 {
	return s.stride
}

func (s *attributeSource) SetStride(stride int32) {
	s.stride = stride
}

func (s *attributeSource) Offset() int {
	return s.offset
}

func (s *attributeSource) SetOffset(offset int) {
	s.offset = offset
}

func (s *attributeSource) ByteOffset() int {
	return s.offset * s.dataType.Size()
}

func (s *attributeSource) String() string {
	return fmt.Sprintf("%s attribute %dx0x%04X stride=%d offset=%d", s.kind, s.size, uint32(s.dataType), s.stride, s.offset)
}
