package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// orbitController moves a Camera on a sphere around a target point.
// The eye position is derived from spherical coordinates (radius, azimuth, elevation)
// relative to the target and pushed into the camera through its setters, so the camera
// only goes stale when the controller actually changes something.
type orbitController struct {
	camera Camera

	target mgl32.Vec3

	radius    float32
	azimuth   float32 // around +Y
	elevation float32 // from the XZ plane

	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	orbitSpeed       float32
	mouseSensitivity float32
	zoomSpeed        float32
	panSpeed         float32
}

// OrbitController is a third-person controller for a Camera driven by keyboard steps,
// mouse drags, scroll zoom and planar panning.
type OrbitController interface {
	// Camera returns the controlled camera.
	Camera() Camera

	// Target returns the orbit pivot.
	//
	// Returns:
	//   - mgl32.Vec3: world-space pivot
	Target() mgl32.Vec3

	// SetTarget moves the pivot and recomputes the eye position.
	//
	// Parameters:
	//   - x, y, z: world-space pivot
	SetTarget(x, y, z float32)

	// Orbit rotates around the pivot. Elevation is clamped to its bounds.
	//
	// Parameters:
	//   - dAzimuth: horizontal delta in radians
	//   - dElevation: vertical delta in radians
	Orbit(dAzimuth, dElevation float32)

	// OrbitLeft rotates left by one orbit speed step.
	OrbitLeft()

	// OrbitRight rotates right by one orbit speed step.
	OrbitRight()

	// OrbitUp tilts up by one orbit speed step.
	OrbitUp()

	// OrbitDown tilts down by one orbit speed step.
	OrbitDown()

	// Drag orbits by a mouse movement scaled by the mouse sensitivity.
	//
	// Parameters:
	//   - dx, dy: cursor delta in pixels
	Drag(dx, dy float32)

	// Zoom changes the radius. Positive delta moves closer. The radius is clamped to its bounds.
	//
	// Parameters:
	//   - delta: zoom amount scaled by the zoom speed
	Zoom(delta float32)

	// Pan translates pivot and eye along the camera's right and up axes.
	//
	// Parameters:
	//   - right, up: pan amounts scaled by the pan speed
	Pan(right, up float32)

	// Radius returns the current distance from the pivot.
	Radius() float32

	// Azimuth returns the horizontal angle in radians.
	Azimuth() float32

	// Elevation returns the vertical angle in radians.
	Elevation() float32
}

var _ OrbitController = &orbitController{}

// NewOrbitController attaches an orbit controller to a camera and immediately moves the camera
// onto the orbit.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the new controller
func NewOrbitController(cam Camera, options ...OrbitControllerOption) OrbitController {
	oc := &orbitController{
		camera: cam,

		radius:    10.0,
		azimuth:   0.0,
		elevation: 0.0,

		minRadius:    0.5,
		maxRadius:    1000.0,
		minElevation: -math32.Pi/2 + 0.05,
		maxElevation: math32.Pi/2 - 0.05,

		orbitSpeed:       0.03,
		mouseSensitivity: 0.005,
		zoomSpeed:        1.0,
		panSpeed:         1.0,
	}
	for _, option := range options {
		option(oc)
	}
	oc.radius = mgl32.Clamp(oc.radius, oc.minRadius, oc.maxRadius)
	oc.elevation = mgl32.Clamp(oc.elevation, oc.minElevation, oc.maxElevation)
	oc.apply()
	return oc
}

// apply pushes the eye and pivot to the camera.
func (oc *orbitController) apply() {
	cosElev, sinElev := math32.Cos(oc.elevation), math32.Sin(oc.elevation)
	cosAzim, sinAzim := math32.Cos(oc.azimuth), math32.Sin(oc.azimuth)

	eye := oc.target.Add(mgl32.Vec3{
		oc.radius * cosElev * sinAzim,
		oc.radius * sinElev,
		oc.radius * cosElev * cosAzim,
	})
	oc.camera.SetLookAt(oc.target[0], oc.target[1], oc.target[2])
	oc.camera.SetPosition(eye[0], eye[1], eye[2])
}

func (oc *orbitController) Camera() Camera {
	return oc.camera
}

func (oc *orbitController) Target() mgl32.Vec3 {
	return oc.target
}

func (oc *orbitController) SetTarget(x, y, z float32) {
	oc.target = mgl32.Vec3{x, y, z}
	oc.apply()
}

func (oc *orbitController) Orbit(dAzimuth, dElevation float32) {
	if dAzimuth == 0 && dElevation == 0 {
		return
	}
	oc.azimuth += dAzimuth
	oc.elevation = mgl32.Clamp(oc.elevation+dElevation, oc.minElevation, oc.maxElevation)
	oc.apply()
}

func (oc *orbitController) OrbitLeft() {
	oc.Orbit(-oc.orbitSpeed, 0)
}

func (oc *orbitController) OrbitRight() {
	oc.Orbit(oc.orbitSpeed, 0)
}

func (oc *orbitController) OrbitUp() {
	oc.Orbit(0, oc.orbitSpeed)
}

func (oc *orbitController) OrbitDown() {
	oc.Orbit(0, -oc.orbitSpeed)
}

func (oc *orbitController) Drag(dx, dy float32) {
	// dragging right swings the eye left so the scene follows the cursor
	oc.Orbit(-dx*oc.mouseSensitivity, dy*oc.mouseSensitivity)
}

func (oc *orbitController) Zoom(delta float32) {
	r := mgl32.Clamp(oc.radius-delta*oc.zoomSpeed, oc.minRadius, oc.maxRadius)
	if r == oc.radius {
		return
	}
	oc.radius = r
	oc.apply()
}

func (oc *orbitController) Pan(right, up float32) {
	if right == 0 && up == 0 {
		return
	}
	back := oc.camera.Position().Sub(oc.target)
	if back.Len() < 1e-8 {
		return
	}
	back = back.Normalize()
	rightAxis := oc.camera.Up().Cross(back)
	if rightAxis.Len() < 1e-8 {
		return
	}
	rightAxis = rightAxis.Normalize()
	upAxis := back.Cross(rightAxis)

	offset := rightAxis.Mul(right * oc.panSpeed).Add(upAxis.Mul(up * oc.panSpeed))
	oc.target = oc.target.Add(offset)
	oc.apply()
}

func (oc *orbitController) Radius() float32 {
	return oc.radius
}

func (oc *orbitController) Azimuth() float32 {
	return oc.azimuth
}

func (oc *orbitController) Elevation() float32 {
	return oc.elevation
}
