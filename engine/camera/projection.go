package camera

import "github.com/go-gl/mathgl/mgl32"

// ProjectionModel derives a camera's projection matrix. Implementations are plain values;
// changing one means handing a new value to Camera.SetProjection, which marks the camera stale.
type ProjectionModel interface {
	// Matrix builds the eye-to-clip projection matrix (GL clip space, z in [-1, 1]).
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	Matrix() mgl32.Mat4

	// WithAspect returns a copy adapted to a new viewport aspect ratio (width / height).
	//
	// Parameters:
	//   - aspect: the new aspect ratio
	//
	// Returns:
	//   - ProjectionModel: the adapted model
	WithAspect(aspect float32) ProjectionModel
}

// Perspective is a symmetric perspective projection.
type Perspective struct {
	// FovY is the vertical field of view in radians.
	FovY float32
	// Aspect is width / height.
	Aspect float32
	// Near and Far are the clip plane distances, 0 < Near < Far.
	Near, Far float32
}

var _ ProjectionModel = Perspective{}

func (p Perspective) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(p.FovY, p.Aspect, p.Near, p.Far)
}

func (p Perspective) WithAspect(aspect float32) ProjectionModel {
	p.Aspect = aspect
	return p
}

// Orthographic is a parallel projection over an axis-aligned view volume.
type Orthographic struct {
	Left, Right float32
	Bottom, Top float32
	Near, Far   float32
}

var _ ProjectionModel = Orthographic{}

// NewOrthographic returns a view volume centered on the view axis with the given height.
//
// Parameters:
//   - height: visible height in world units
//   - aspect: width / height
//   - near, far: clip plane distances
//
// Returns:
//   - Orthographic: the projection
func NewOrthographic(height, aspect, near, far float32) Orthographic {
	hh := height / 2
	hw := hh * aspect
	return Orthographic{Left: -hw, Right: hw, Bottom: -hh, Top: hh, Near: near, Far: far}
}

func (o Orthographic) Matrix() mgl32.Mat4 {
	return mgl32.Ortho(o.Left, o.Right, o.Bottom, o.Top, o.Near, o.Far)
}

// WithAspect keeps the vertical extent and center, and rescales the horizontal extent.
func (o Orthographic) WithAspect(aspect float32) ProjectionModel {
	cx := (o.Left + o.Right) / 2
	hw := (o.Top - o.Bottom) / 2 * aspect
	o.Left, o.Right = cx-hw, cx+hw
	return o
}
