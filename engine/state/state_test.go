package state

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/gfx/gfxtest"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestViewportAppliedToDevice(t *testing.T) {
	dev := gfxtest.NewRecorder()
	s := NewRenderState(dev)

	s.Reset()
	assert.Zero(t, dev.Count("Viewport"), "empty viewport must not reach the device")

	s.SetViewport(0, 0, 320, 200)
	assert.Equal(t, common.Viewport{Width: 320, Height: 200}, s.Viewport())
	assert.Equal(t, [4]int32{0, 0, 320, 200}, dev.ViewportRect)

	s.Reset()
	assert.Equal(t, 2, dev.Count("Viewport"))
}

func TestResetRestoresIdentity(t *testing.T) {
	s := NewRenderState(nil)
	*s.ViewMatrix() = mgl32.Translate3D(1, 2, 3)
	*s.ProjectionMatrix() = mgl32.Scale3D(2, 2, 2)

	s.Reset()
	assert.Equal(t, mgl32.Ident4(), *s.ViewMatrix())
	assert.Equal(t, mgl32.Ident4(), *s.ProjectionMatrix())
}

func TestNotifyMatricesChanged(t *testing.T) {
	s := NewRenderState(nil)
	var got []mgl32.Mat4
	s.AddMatrixObserver(func(view, projection mgl32.Mat4) {
		got = append(got, view, projection)
	})

	want := mgl32.Translate3D(0, 0, -5)
	*s.ViewMatrix() = want
	s.NotifyMatricesChanged()

	assert.Equal(t, uint64(1), s.MatrixUpdates())
	assert.Equal(t, []mgl32.Mat4{want, mgl32.Ident4()}, got)
}

func TestFrustumFollowsMatrices(t *testing.T) {
	s := NewRenderState(nil)
	*s.ViewMatrix() = mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	*s.ProjectionMatrix() = mgl32.Perspective(mgl32.DegToRad(45), 1, 1, 20)

	f := s.Frustum()
	assert.True(t, f.IntersectsSphere(mgl32.Vec3{}, 0.5))
	assert.False(t, f.IntersectsSphere(mgl32.Vec3{0, 0, 10}, 0.5))
}

func TestSetDeviceReappliesViewport(t *testing.T) {
	s := NewRenderState(nil)
	s.SetViewport(0, 0, 64, 48)

	dev := gfxtest.NewRecorder()
	s.SetDevice(dev)
	assert.Equal(t, dev, s.Device())
	assert.Equal(t, [4]int32{0, 0, 64, 48}, dev.ViewportRect)
}
