package common

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Viewport is a GL viewport rectangle in pixels, origin at the bottom-left corner.
type Viewport struct {
	X, Y          int32
	Width, Height int32
}

// Aspect returns the width / height ratio of the viewport, or 1 when the height is zero.
//
// Returns:
//   - float32: the aspect ratio
func (v Viewport) Aspect() float32 {
	if v.Height == 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// Unproject maps a window-space point back through the inverse of projection * view.
// The returned vector is the raw homogeneous result: it is NOT divided by w, so callers
// decide how to treat the fourth component (a point divides, a direction discards).
// Window depth 0 maps to the near plane and 1 to the far plane.
//
// Parameters:
//   - winX, winY: window coordinates in pixels (bottom-left origin)
//   - winZ: window depth in [0, 1]
//   - view: the world-to-eye matrix
//   - proj: the eye-to-clip matrix
//   - vp: the viewport the window coordinates refer to
//
// Returns:
//   - mgl32.Vec4: the homogeneous world-space point
//   - bool: false if projection * view is singular
func Unproject(winX, winY, winZ float32, view, proj mgl32.Mat4, vp Viewport) (mgl32.Vec4, bool) {
	pv := proj.Mul4(view)
	if pv.Det() == 0 {
		return mgl32.Vec4{}, false
	}
	inv := pv.Inv()

	ndc := mgl32.Vec4{
		2*(winX-float32(vp.X))/float32(vp.Width) - 1,
		2*(winY-float32(vp.Y))/float32(vp.Height) - 1,
		2*winZ - 1,
		1,
	}
	return inv.Mul4x1(ndc), true
}
