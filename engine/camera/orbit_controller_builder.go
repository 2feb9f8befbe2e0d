package camera

import "github.com/go-gl/mathgl/mgl32"

// OrbitControllerOption is a functional option for configuring an OrbitController.
type OrbitControllerOption func(*orbitController)

// WithTarget sets the orbit pivot.
//
// Parameters:
//   - x, y, z: world-space pivot
//
// Returns:
//   - OrbitControllerOption: functional option to set the pivot
func WithTarget(x, y, z float32) OrbitControllerOption {
	return func(oc *orbitController) {
		oc.target = mgl32.Vec3{x, y, z}
	}
}

// WithOrbit sets the initial spherical coordinates.
//
// Parameters:
//   - radius: distance from the pivot
//   - azimuth: horizontal angle in radians
//   - elevation: vertical angle in radians
//
// Returns:
//   - OrbitControllerOption: functional option to set the orbit
func WithOrbit(radius, azimuth, elevation float32) OrbitControllerOption {
	return func(oc *orbitController) {
		oc.radius = radius
		oc.azimuth = azimuth
		oc.elevation = elevation
	}
}

// WithRadiusBounds sets the zoom limits.
//
// Parameters:
//   - min: minimum radius
//   - max: maximum radius
//
// Returns:
//   - OrbitControllerOption: functional option to set radius bounds
func WithRadiusBounds(min, max float32) OrbitControllerOption {
	return func(oc *orbitController) {
		oc.minRadius = min
		oc.maxRadius = max
	}
}

// WithElevationBounds sets the tilt limits in radians.
//
// Parameters:
//   - min: minimum elevation
//   - max: maximum elevation
//
// Returns:
//   - OrbitControllerOption: functional option to set elevation bounds
func WithElevationBounds(min, max float32) OrbitControllerOption {
	return func(oc *orbitController) {
		oc.minElevation = min
		oc.maxElevation = max
	}
}

// WithOrbitSpeed sets the radians per keyboard orbit step.
func WithOrbitSpeed(speed float32) OrbitControllerOption {
	return func(oc *orbitController) {
		oc.orbitSpeed = speed
	}
}

// WithMouseSensitivity sets the radians per dragged pixel.
func WithMouseSensitivity(sensitivity float32) OrbitControllerOption {
	return func(oc *orbitController) {
		oc.mouseSensitivity = sensitivity
	}
}

// WithZoomSpeed sets the zoom multiplier.
func WithZoomSpeed(speed float32) OrbitControllerOption {
	return func(oc *orbitController) {
		oc.zoomSpeed = speed
	}
}

// WithPanSpeed sets the pan multiplier.
func WithPanSpeed(speed float32) OrbitControllerOption {
	return func(oc *orbitController) {
		oc.panSpeed = speed
	}
}
