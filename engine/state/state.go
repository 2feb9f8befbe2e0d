// Package state holds the per-frame render state shared by the engine, the active camera and
// every render pass.
package state

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/gfx"
	"github.com/go-gl/mathgl/mgl32"
)

// MatrixObserver is notified with the current matrices after a camera wrote them.
type MatrixObserver func(view, projection mgl32.Mat4)

type renderState struct {
	device gfx.Device

	viewport   common.Viewport
	view       mgl32.Mat4
	projection mgl32.Mat4

	observers     []MatrixObserver
	matrixUpdates uint64
}

// RenderState is the shared, single-threaded render state.
// The engine writes the viewport and resets it each frame; the active camera writes the
// matrices during Setup; passes and binders only read.
type RenderState interface {
	// Reset prepares the state for a new frame: matrices go back to identity and the
	// viewport is re-applied to the device.
	Reset()

	// SetViewport sets the viewport rectangle and applies it to the device.
	//
	// Parameters:
	//   - x, y: bottom-left corner in pixels
	//   - width, height: size in pixels
	SetViewport(x, y, width, height int32)

	// Viewport returns the current viewport rectangle.
	//
	// Returns:
	//   - common.Viewport: the viewport
	Viewport() common.Viewport

	// ViewMatrix returns the writable view matrix slot.
	//
	// Returns:
	//   - *mgl32.Mat4: pointer to the view matrix
	ViewMatrix() *mgl32.Mat4

	// ProjectionMatrix returns the writable projection matrix slot.
	//
	// Returns:
	//   - *mgl32.Mat4: pointer to the projection matrix
	ProjectionMatrix() *mgl32.Mat4

	// NotifyMatricesChanged tells every observer that the matrix slots were rewritten.
	NotifyMatricesChanged()

	// AddMatrixObserver registers an observer for matrix changes, e.g. a shader uniform uploader.
	//
	// Parameters:
	//   - obs: the observer to add
	AddMatrixObserver(obs MatrixObserver)

	// MatrixUpdates returns how many times NotifyMatricesChanged was called.
	//
	// Returns:
	//   - uint64: the notification count
	MatrixUpdates() uint64

	// Frustum returns the view frustum of the current matrices.
	//
	// Returns:
	//   - common.Frustum: the frustum planes
	Frustum() common.Frustum

	// Device returns the device the state applies viewport changes to.
	//
	// Returns:
	//   - gfx.Device: the device
	Device() gfx.Device

	// SetDevice rebinds the state to a new device and re-applies the viewport to it.
	//
	// Parameters:
	//   - device: the new device
	SetDevice(device gfx.Device)
}

var _ RenderState = &renderState{}

// NewRenderState creates a RenderState bound to a device, with identity matrices and an empty viewport.
//
// Parameters:
//   - device: the device viewport changes are issued to
//
// Returns:
//   - RenderState: the new state
func NewRenderState(device gfx.Device) RenderState {
	return &renderState{
		device:     device,
		view:       mgl32.Ident4(),
		projection: mgl32.Ident4(),
	}
}

func (s *renderState) Reset() {
	s.view = mgl32.Ident4()
	s.projection = mgl32.Ident4()
	s.applyViewport()
}

func (s *renderState) SetViewport(x, y, width, height int32) {
	s.viewport = common.Viewport{X: x, Y: y, Width: width, Height: height}
	s.applyViewport()
}

func (s *renderState) Viewport() common.Viewport {
	return s.viewport
}

func (s *renderState) ViewMatrix() *mgl32.Mat4 {
	return &s.view
}

func (s *renderState) ProjectionMatrix() *mgl32.Mat4 {
	return &s.projection
}

func (s *renderState) NotifyMatricesChanged() {
	s.matrixUpdates++
	for _, obs := range s.observers {
		obs(s.view, s.projection)
	}
}

func (s *renderState) AddMatrixObserver(obs MatrixObserver) {
	s.observers = append(s.observers, obs)
}

func (s *renderState) MatrixUpdates() uint64 {
	return s.matrixUpdates
}

func (s *renderState) Frustum() common.Frustum {
	return common.ExtractFrustum(s.projection.Mul4(s.view))
}

func (s *renderState) Device() gfx.Device {
	return s.device
}

func (s *renderState) SetDevice(device gfx.Device) {
	s.device = device
	s.applyViewport()
}

// applyViewport issues the current viewport to the device. Empty viewports are skipped.
func (s *renderState) applyViewport() {
	if s.device == nil || s.viewport.Width == 0 || s.viewport.Height == 0 {
		return
	}
	v := s.viewport
	s.device.Viewport(v.X, v.Y, v.Width, v.Height)
}
