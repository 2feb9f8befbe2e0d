package camera

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/config"
	"github.com/go-gl/mathgl/mgl32"
)

type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the camera's eye position.
//
// Parameters:
//   - x, y, z: world-space eye position
//
// Returns:
//   - CameraBuilderOption: a function that sets the eye position
func WithPosition(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.eye = mgl32.Vec3{x, y, z}
	}
}

// WithLookAt sets the point the camera looks at.
//
// Parameters:
//   - x, y, z: world-space look-at point
//
// Returns:
//   - CameraBuilderOption: a function that sets the look-at point
func WithLookAt(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.lookAt = mgl32.Vec3{x, y, z}
	}
}

// WithUp sets the camera's up vector.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up vector
func WithUp(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.up = mgl32.Vec3{x, y, z}
	}
}

// WithProjection replaces the default perspective projection.
//
// Parameters:
//   - p: the projection model
//
// Returns:
//   - CameraBuilderOption: a function that sets the projection model
func WithProjection(p ProjectionModel) CameraBuilderOption {
	return func(c *cameraImpl) {
		if p != nil {
			c.projection = p
		}
	}
}

// WithPerspective sets a perspective projection.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: width / height
//   - near, far: clip plane distances
//
// Returns:
//   - CameraBuilderOption: a function that sets a perspective projection
func WithPerspective(fovY, aspect, near, far float32) CameraBuilderOption {
	return WithProjection(Perspective{FovY: fovY, Aspect: aspect, Near: near, Far: far})
}

// WithAspect sets the aspect ratio (width / height) of whatever projection is configured so far.
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.projection = c.projection.WithAspect(aspect)
	}
}

// WithConfig applies the camera section of an engine configuration: pose and a perspective
// projection. The aspect ratio of the current projection is preserved.
//
// Parameters:
//   - cfg: the camera configuration
//
// Returns:
//   - CameraBuilderOption: a function that applies the configuration
func WithConfig(cfg config.CameraConfig) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.eye = mgl32.Vec3(cfg.Position)
		c.lookAt = mgl32.Vec3(cfg.LookAt)
		c.up = mgl32.Vec3(cfg.Up)

		aspect := float32(1)
		if p, ok := c.projection.(Perspective); ok {
			aspect = p.Aspect
		}
		c.projection = Perspective{
			FovY:   mgl32.DegToRad(cfg.FovDegrees),
			Aspect: aspect,
			Near:   cfg.Near,
			Far:    cfg.Far,
		}
	}
}
