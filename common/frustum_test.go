package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestFrustumIntersectsSphere(t *testing.T) {
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(60), 1, 0.5, 50)
	f := ExtractFrustum(proj.Mul4(view))

	for i, p := range f.Planes {
		assert.InDelta(t, 1, p.Normal.Len(), 1e-5, "plane %d not normalized", i)
	}

	assert.True(t, f.IntersectsSphere(mgl32.Vec3{}, 1))
	// behind the eye
	assert.False(t, f.IntersectsSphere(mgl32.Vec3{0, 0, 20}, 1))
	// past the far plane
	assert.False(t, f.IntersectsSphere(mgl32.Vec3{0, 0, -100}, 1))
	// straddling the far plane
	assert.True(t, f.IntersectsSphere(mgl32.Vec3{0, 0, -40}, 1))
}
