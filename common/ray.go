package common

import "github.com/go-gl/mathgl/mgl32"

// Ray is a half-line in homogeneous form. Origin is a point (w = 1) and Direction a
// vector (w = 0). Direction is not normalized; for pick rays it spans near to far plane.
type Ray struct {
	Origin    mgl32.Vec4
	Direction mgl32.Vec4
}

// PointAt returns the point Origin + t*Direction.
//
// Parameters:
//   - t: the ray parameter (0 = origin, 1 = origin + direction)
//
// Returns:
//   - mgl32.Vec3: the point on the ray
func (r Ray) PointAt(t float32) mgl32.Vec3 {
	return r.Origin.Vec3().Add(r.Direction.Vec3().Mul(t))
}

// DistanceToPoint returns the shortest distance between the infinite line through the ray and p.
// Returns the distance to the origin when the direction is zero.
//
// Parameters:
//   - p: the world-space point
//
// Returns:
//   - float32: the perpendicular distance
func (r Ray) DistanceToPoint(p mgl32.Vec3) float32 {
	d := r.Direction.Vec3()
	op := p.Sub(r.Origin.Vec3())
	l := d.Len()
	if l == 0 {
		return op.Len()
	}
	return op.Cross(d).Len() / l
}
