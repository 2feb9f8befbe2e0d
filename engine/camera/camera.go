package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/state"
	"github.com/go-gl/mathgl/mgl32"
)

// Freshness tells whether the cached matrices match the current pose and projection.
type Freshness int

const (
	// Stale means the pose or projection changed since the last recompute.
	Stale Freshness = iota
	// Fresh means the cached matrices are valid.
	Fresh
)

type cameraImpl struct {
	eye    mgl32.Vec3
	lookAt mgl32.Vec3
	up     mgl32.Vec3

	projection ProjectionModel

	freshness   Freshness
	recomputing bool
	recomputes  uint64

	viewMatrix       mgl32.Mat4
	projectionMatrix mgl32.Mat4
}

// Camera holds a pose (eye, look-at point, up direction) and a ProjectionModel, and derives
// the view and projection matrices lazily: mutators only mark the camera stale, the matrices
// are rebuilt on the next Setup (or matrix accessor) call.
//
// A Camera belongs to the render goroutine and is not safe for concurrent use.
type Camera interface {
	// Position returns the eye position.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position in world space
	Position() mgl32.Vec3

	// LookAt returns the point the camera looks at.
	//
	// Returns:
	//   - mgl32.Vec3: the look-at point in world space
	LookAt() mgl32.Vec3

	// Up returns the up direction.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// SetPosition moves the eye and marks the camera stale.
	//
	// Parameters:
	//   - x, y, z: world-space eye position
	SetPosition(x, y, z float32)

	// SetLookAt sets the look-at point and marks the camera stale.
	//
	// Parameters:
	//   - x, y, z: world-space look-at point
	SetLookAt(x, y, z float32)

	// SetUpDirection sets the up direction and marks the camera stale.
	// An up vector parallel to the viewing direction yields an undefined orientation.
	//
	// Parameters:
	//   - x, y, z: up vector components
	SetUpDirection(x, y, z float32)

	// Projection returns the current projection model.
	//
	// Returns:
	//   - ProjectionModel: the projection model
	Projection() ProjectionModel

	// SetProjection replaces the projection model and marks the camera stale.
	//
	// Parameters:
	//   - p: the new projection model
	SetProjection(p ProjectionModel)

	// SetAspect adapts the projection model to a new viewport aspect ratio and marks the camera stale.
	//
	// Parameters:
	//   - aspect: width / height
	SetAspect(aspect float32)

	// Freshness reports whether the cached matrices are valid.
	//
	// Returns:
	//   - Freshness: Fresh or Stale
	Freshness() Freshness

	// Recomputes returns how many times the matrices were rebuilt.
	//
	// Returns:
	//   - uint64: the recompute count
	Recomputes() uint64

	// ViewMatrix returns the view matrix, rebuilding it first if the camera is stale.
	//
	// Returns:
	//   - mgl32.Mat4: the world-to-eye matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the projection matrix, rebuilding it first if the camera is stale.
	//
	// Returns:
	//   - mgl32.Mat4: the eye-to-clip matrix
	ProjectionMatrix() mgl32.Mat4

	// Setup rebuilds the matrices if stale, copies them into the render state and notifies it
	// that the matrices changed.
	//
	// Parameters:
	//   - s: the render state to write into
	Setup(s state.RenderState)

	// PickRay computes the world-space ray through a screen pixel.
	// It reads the cached matrices as they are and never rebuilds them: Setup must have run
	// after the last pose or projection change, otherwise the ray is computed from stale data.
	//
	// Parameters:
	//   - vp: the viewport the coordinates refer to
	//   - x, y: screen coordinates in pixels, origin at the top-left corner
	//
	// Returns:
	//   - common.Ray: origin on the near plane, direction spanning to the far plane
	PickRay(vp common.Viewport, x, y float32) common.Ray
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera at (0, 0, 10) looking at the origin with +Y up and a 45 degree
// perspective projection. The camera starts stale, so the first Setup computes its matrices.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		eye:    mgl32.Vec3{0, 0, 10},
		lookAt: mgl32.Vec3{0, 0, 0},
		up:     mgl32.Vec3{0, 1, 0},
		projection: Perspective{
			FovY:   45.0 * (math.Pi / 180.0), // radians
			Aspect: 1.0,
			Near:   0.1,
			Far:    100.0,
		},
		freshness:        Stale,
		viewMatrix:       mgl32.Ident4(),
		projectionMatrix: mgl32.Ident4(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	return c.eye
}

func (c *cameraImpl) LookAt() mgl32.Vec3 {
	return c.lookAt
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	return c.up
}

func (c *cameraImpl) SetPosition(x, y, z float32) {
	c.eye = mgl32.Vec3{x, y, z}
	c.freshness = Stale
}

func (c *cameraImpl) SetLookAt(x, y, z float32) {
	c.lookAt = mgl32.Vec3{x, y, z}
	c.freshness = Stale
}

func (c *cameraImpl) SetUpDirection(x, y, z float32) {
	c.up = mgl32.Vec3{x, y, z}
	c.freshness = Stale
}

func (c *cameraImpl) Projection() ProjectionModel {
	return c.projection
}

func (c *cameraImpl) SetProjection(p ProjectionModel) {
	c.projection = p
	c.freshness = Stale
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.projection = c.projection.WithAspect(aspect)
	c.freshness = Stale
}

func (c *cameraImpl) Freshness() Freshness {
	return c.freshness
}

func (c *cameraImpl) Recomputes() uint64 {
	return c.recomputes
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.ensureFresh()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.ensureFresh()
	return c.projectionMatrix
}

func (c *cameraImpl) Setup(s state.RenderState) {
	c.ensureFresh()
	*s.ProjectionMatrix() = c.projectionMatrix
	*s.ViewMatrix() = c.viewMatrix
	s.NotifyMatricesChanged()
}

// ensureFresh rebuilds both matrices when the camera is stale. The camera only turns Fresh
// after both matrices are written. Recompute is not reentrant: a ProjectionModel calling back
// into the camera while its matrix is being built panics.
func (c *cameraImpl) ensureFresh() {
	if c.freshness == Fresh {
		return
	}
	if c.recomputing {
		panic("camera: reentrant matrix recompute")
	}
	c.recomputing = true
	defer func() { c.recomputing = false }()

	c.viewMatrix = mgl32.LookAtV(c.eye, c.lookAt, c.up)
	c.projectionMatrix = c.projection.Matrix()
	c.recomputes++
	c.freshness = Fresh
}
