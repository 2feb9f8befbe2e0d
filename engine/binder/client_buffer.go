package binder

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-gl/common"
)

// ClientBuffer is vertex data living in process memory with a byte cursor.
// Client-side attribute pointers are taken at the cursor, so the binder moves it before every call.
//
// GL keeps the pointer until the draw that consumes the attribute, which cgo only allows for
// memory that is not managed by the Go collector or is pinned. Call Pin before binding a buffer
// backed by Go memory and Unpin once no draw reads it anymore.
type ClientBuffer struct {
	data     []byte
	position int
	pinner   runtime.Pinner
	pinned   bool
}

// NewClientBuffer wraps raw bytes. The buffer shares memory with data.
//
// Parameters:
//   - data: the vertex bytes
//
// Returns:
//   - *ClientBuffer: the buffer, cursor at 0
func NewClientBuffer(data []byte) *ClientBuffer {
	return &ClientBuffer{data: data}
}

// NewFloatBuffer wraps float32 vertex data. The buffer shares memory with data.
//
// Parameters:
//   - data: the vertex components
//
// Returns:
//   - *ClientBuffer: the buffer, cursor at 0
func NewFloatBuffer(data []float32) *ClientBuffer {
	return &ClientBuffer{data: common.SliceToBytes(data)}
}

// Len returns the buffer size in bytes.
func (b *ClientBuffer) Len() int {
	return len(b.data)
}

// Position returns the cursor in bytes.
func (b *ClientBuffer) Position() int {
	return b.position
}

// SetPosition moves the cursor.
//
// Parameters:
//   - pos: the new cursor in bytes, 0 <= pos <= Len()
//
// Returns:
//   - error: error if pos is out of range, the cursor is left unchanged
func (b *ClientBuffer) SetPosition(pos int) error {
	if pos < 0 || pos > len(b.data) {
		return fmt.Errorf("position %d out of range [0, %d]", pos, len(b.data))
	}
	b.position = pos
	return nil
}

// Pin pins the backing memory so its address can be handed to GL. Pinning twice is a no-op.
func (b *ClientBuffer) Pin() {
	if b.pinned || len(b.data) == 0 {
		return
	}
	b.pinner.Pin(unsafe.SliceData(b.data))
	b.pinned = true
}

// Unpin releases the pin taken by Pin.
func (b *ClientBuffer) Unpin() {
	b.pinner.Unpin()
	b.pinned = false
}

// Pinned reports whether the backing memory is pinned.
func (b *ClientBuffer) Pinned() bool {
	return b.pinned
}

// Pointer returns the address of the byte at the cursor, or nil for an empty buffer or a cursor
// at the end of the data.
func (b *ClientBuffer) Pointer() unsafe.Pointer {
	if b.position >= len(b.data) {
		return nil
	}
	return unsafe.Add(unsafe.Pointer(unsafe.SliceData(b.data)), b.position)
}
