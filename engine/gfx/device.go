// Package gfx is the graphics call surface the engine core consumes. Device abstracts the handful
// of GL entry points the core issues, and Context tracks the GL context lifecycle so
// device-resident handles can be invalidated wholesale when the context is recreated.
package gfx

import "unsafe"

// DataType is a vertex attribute component type. Values match the GL enums so backends can pass
// them straight through.
type DataType uint32

const (
	Byte          DataType = 0x1400
	UnsignedByte  DataType = 0x1401
	Short         DataType = 0x1402
	UnsignedShort DataType = 0x1403
	Int           DataType = 0x1404
	UnsignedInt   DataType = 0x1405
	Float         DataType = 0x1406
	HalfFloat     DataType = 0x140B
)

// Size returns the size of one component of this type in bytes, or 0 for unknown types.
//
// Returns:
//   - int: component size in bytes
func (t DataType) Size() int {
	switch t {
	case Byte, UnsignedByte:
		return 1
	case Short, UnsignedShort, HalfFloat:
		return 2
	case Int, UnsignedInt, Float:
		return 4
	}
	return 0
}

// BufferTarget is a buffer binding point.
type BufferTarget uint32

const (
	ArrayBuffer        BufferTarget = 0x8892
	ElementArrayBuffer BufferTarget = 0x8893
)

// BufferUsage is the usage hint passed with buffer uploads.
type BufferUsage uint32

const (
	StaticDraw  BufferUsage = 0x88E4
	DynamicDraw BufferUsage = 0x88E8
)

// Capability is a server-side GL capability toggled with Enable.
type Capability uint32

const (
	CullFace  Capability = 0x0B44
	DepthTest Capability = 0x0B71
	Blend     Capability = 0x0BE2
)

// ClearMask selects the buffers cleared by Device.Clear.
type ClearMask uint32

const (
	ColorBufferBit ClearMask = 0x4000
	DepthBufferBit ClearMask = 0x0100
)

// Device is the GL call surface used by the engine, the render state and the attribute binders.
// All calls must be issued from the goroutine that owns the current GL context.
type Device interface {
	// BindBuffer binds a buffer object to the target. Id 0 unbinds.
	//
	// Parameters:
	//   - target: the binding point
	//   - id: the buffer object name
	BindBuffer(target BufferTarget, id uint32)

	// VertexAttribPointer points a vertex attribute at client memory.
	//
	// Parameters:
	//   - slot: the attribute location
	//   - size: components per attribute
	//   - typ: the component type
	//   - normalized: whether fixed-point data is normalized
	//   - stride: bytes between consecutive attributes (0 = tightly packed)
	//   - ptr: address of the first attribute
	VertexAttribPointer(slot uint32, size int32, typ DataType, normalized bool, stride int32, ptr unsafe.Pointer)

	// VertexAttribOffset points a vertex attribute at the buffer bound to ArrayBuffer.
	//
	// Parameters:
	//   - slot: the attribute location
	//   - size: components per attribute
	//   - typ: the component type
	//   - normalized: whether fixed-point data is normalized
	//   - stride: bytes between consecutive attributes (0 = tightly packed)
	//   - offset: byte offset of the first attribute in the bound buffer
	VertexAttribOffset(slot uint32, size int32, typ DataType, normalized bool, stride int32, offset uintptr)

	// GenBuffer creates a new buffer object name.
	//
	// Returns:
	//   - uint32: the buffer name
	GenBuffer() uint32

	// BufferData uploads data into the buffer bound to target.
	//
	// Parameters:
	//   - target: the binding point
	//   - size: data size in bytes
	//   - data: pointer to the data
	//   - usage: usage hint
	BufferData(target BufferTarget, size int, data unsafe.Pointer, usage BufferUsage)

	// DeleteBuffer deletes a buffer object.
	//
	// Parameters:
	//   - id: the buffer name
	DeleteBuffer(id uint32)

	// ClearColor sets the color used by Clear.
	ClearColor(r, g, b, a float32)

	// Clear clears the selected buffers of the current framebuffer.
	Clear(mask ClearMask)

	// Enable turns on a capability.
	Enable(c Capability)

	// Disable turns off a capability.
	Disable(c Capability)

	// Viewport sets the viewport rectangle.
	Viewport(x, y, width, height int32)

	// Error returns and clears the oldest pending error code.
	//
	// Returns:
	//   - ErrorCode: NoError if nothing is pending
	Error() ErrorCode
}
