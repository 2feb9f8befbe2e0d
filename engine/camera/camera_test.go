package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/config"
	"github.com/Carmen-Shannon/oxy-gl/engine/state"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	assert.Equal(t, mgl32.Vec3{0, 0, 10}, c.Position())
	assert.Equal(t, mgl32.Vec3{}, c.LookAt())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, c.Up())
	assert.Equal(t, Stale, c.Freshness())
	assert.Zero(t, c.Recomputes())
}

func TestSetupRecomputesOnlyWhenStale(t *testing.T) {
	c := NewCamera()
	s := state.NewRenderState(nil)

	c.SetPosition(1, 2, 3)
	c.SetLookAt(0, 1, 0)
	c.SetUpDirection(0, 0, 1)
	c.SetPosition(4, 5, 6)
	c.Setup(s)

	want := mgl32.LookAtV(mgl32.Vec3{4, 5, 6}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1})
	assert.Equal(t, uint64(1), c.Recomputes())
	assert.Equal(t, want, *s.ViewMatrix())
	assert.Equal(t, c.Projection().Matrix(), *s.ProjectionMatrix())
	assert.Equal(t, Fresh, c.Freshness())

	first := *s.ViewMatrix()
	s.Reset()
	c.Setup(s)
	assert.Equal(t, uint64(1), c.Recomputes(), "fresh camera must not recompute")
	assert.Equal(t, first, *s.ViewMatrix())
	assert.Equal(t, uint64(2), s.MatrixUpdates(), "state is notified on every Setup")
}

func TestProjectionChangesMarkStale(t *testing.T) {
	c := NewCamera()
	c.ViewMatrix()
	require.Equal(t, Fresh, c.Freshness())

	c.SetAspect(2)
	assert.Equal(t, Stale, c.Freshness())
	assert.Equal(t, float32(2), c.Projection().(Perspective).Aspect)

	c.ProjectionMatrix()
	c.SetProjection(NewOrthographic(10, 1, 1, 50))
	assert.Equal(t, Stale, c.Freshness())
	assert.Equal(t, mgl32.Ortho(-5, 5, -5, 5, 1, 50), c.ProjectionMatrix())
	assert.Equal(t, uint64(3), c.Recomputes(), "each accessor read after a change recomputes once")
	c.ProjectionMatrix()
	assert.Equal(t, uint64(3), c.Recomputes())
}

type reentrantProjection struct {
	cam Camera
}

func (p reentrantProjection) Matrix() mgl32.Mat4 {
	p.cam.ViewMatrix()
	return mgl32.Ident4()
}

func (p reentrantProjection) WithAspect(float32) ProjectionModel { return p }

func TestReentrantRecomputePanics(t *testing.T) {
	c := NewCamera()
	c.SetProjection(reentrantProjection{cam: c})

	assert.PanicsWithValue(t, "camera: reentrant matrix recompute", func() {
		c.ViewMatrix()
	})
	assert.Equal(t, Stale, c.Freshness())

	c.SetProjection(Perspective{FovY: 1, Aspect: 1, Near: 1, Far: 10})
	assert.NotPanics(t, func() { c.ViewMatrix() })
}

// screenOf projects p and converts it to top-left origin screen coordinates.
func screenOf(c Camera, vp common.Viewport, p mgl32.Vec3) (float32, float32) {
	win := mgl32.Project(p, c.ViewMatrix(), c.ProjectionMatrix(), int(vp.X), int(vp.Y), int(vp.Width), int(vp.Height))
	return win[0], float32(vp.Height) - win[1]
}

func TestPickRayPerspectiveHitsPoint(t *testing.T) {
	vp := common.Viewport{Width: 800, Height: 600}
	c := NewCamera(
		WithPosition(3, 4, 10),
		WithPerspective(mgl32.DegToRad(60), vp.Aspect(), 1, 100),
	)
	c.Setup(state.NewRenderState(nil))

	for _, p := range []mgl32.Vec3{{0, 0, 0}, {1, 0.5, -2}, {-2, 1, 3}} {
		x, y := screenOf(c, vp, p)
		ray := c.PickRay(vp, x, y)

		assert.Equal(t, float32(1), ray.Origin[3])
		assert.Equal(t, float32(0), ray.Direction[3])
		assert.InDelta(t, 0, ray.DistanceToPoint(p), 1e-2, "ray through %v", p)
	}
}

func TestPickRayCenterFollowsViewAxis(t *testing.T) {
	vp := common.Viewport{Width: 640, Height: 480}
	c := NewCamera(WithPerspective(mgl32.DegToRad(45), vp.Aspect(), 1, 100))
	c.Setup(state.NewRenderState(nil))

	ray := c.PickRay(vp, 320, 240)
	dir := ray.Direction.Vec3()

	assert.InDelta(t, 9, ray.Origin[2], 1e-3, "origin lies on the near plane")
	assert.InDelta(t, 99, dir.Len(), 0.05, "direction spans near to far")
	assert.InDelta(t, 0, dir[0], 1e-3)
	assert.InDelta(t, 0, dir[1], 1e-3)
	assert.Less(t, dir[2], float32(0))
}

func TestPickRayOrthographicIsParallel(t *testing.T) {
	vp := common.Viewport{Width: 400, Height: 400}
	c := NewCamera(
		WithPosition(0, 10, 10),
		WithProjection(NewOrthographic(20, 1, 1, 100)),
	)
	c.Setup(state.NewRenderState(nil))

	axis := c.LookAt().Sub(c.Position()).Normalize()
	for _, p := range []mgl32.Vec3{{0, 0, 0}, {3, -1, 2}} {
		x, y := screenOf(c, vp, p)
		ray := c.PickRay(vp, x, y)
		assert.InDelta(t, 0, ray.DistanceToPoint(p), 1e-2)
		assert.InDelta(t, 1, ray.Direction.Vec3().Normalize().Dot(axis), 1e-4)
	}
}

func TestPickRayOffsetViewport(t *testing.T) {
	vp := common.Viewport{X: 0, Y: 100, Width: 800, Height: 600}
	c := NewCamera(WithPerspective(mgl32.DegToRad(45), vp.Aspect(), 1, 100))
	c.Setup(state.NewRenderState(nil))

	// flipped against the viewport height only, the origin comes back in through Unproject
	ray := c.PickRay(vp, 400, 300)
	tanHalf := float32(math.Tan(float64(mgl32.DegToRad(22.5))))
	assert.InDelta(t, 0, ray.Origin[0], 1e-4)
	assert.InDelta(t, -tanHalf/3, ray.Origin[1], 1e-4)
	assert.InDelta(t, 9, ray.Origin[2], 1e-3)

	for _, p := range []mgl32.Vec3{{0, 0, 0}, {1, -1, 2}} {
		x, y := screenOf(c, vp, p)
		assert.InDelta(t, 0, c.PickRay(vp, x, y).DistanceToPoint(p), 1e-2, "ray through %v", p)
	}
}

func TestPickRayUsesCachedMatrices(t *testing.T) {
	vp := common.Viewport{Width: 800, Height: 600}
	c := NewCamera(WithPerspective(mgl32.DegToRad(45), vp.Aspect(), 1, 100))
	c.Setup(state.NewRenderState(nil))

	p := mgl32.Vec3{1, 1, 0}
	x, y := screenOf(c, vp, p)

	c.SetPosition(50, 0, 0)
	ray := c.PickRay(vp, x, y)

	assert.Equal(t, Stale, c.Freshness())
	assert.Equal(t, uint64(1), c.Recomputes())
	assert.InDelta(t, 0, ray.DistanceToPoint(p), 1e-2, "ray is built from the last Setup")
}

func TestWithConfig(t *testing.T) {
	cfg := config.Default().Camera
	cfg.Position = [3]float32{0, 2, 8}
	cfg.FovDegrees = 90

	c := NewCamera(WithAspect(2), WithConfig(cfg))
	p, ok := c.Projection().(Perspective)
	require.True(t, ok)

	assert.Equal(t, mgl32.Vec3{0, 2, 8}, c.Position())
	assert.InDelta(t, mgl32.DegToRad(90), p.FovY, 1e-6)
	assert.Equal(t, float32(2), p.Aspect)
	assert.Equal(t, cfg.Near, p.Near)
}
