package light

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrustum() common.Frustum {
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100)
	return common.ExtractFrustum(proj.Mul4(view))
}

func TestNewLightDefaults(t *testing.T) {
	l := NewLight(LightTypeSpot, WithDirection(0, -2, 0), WithSpotCone(60, 60))

	assert.Equal(t, mgl32.Vec3{0, -1, 0}, l.Direction())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, l.Color())
	assert.True(t, l.Enabled())
	assert.InDelta(t, 0.5, l.InnerCone(), 1e-6)
	assert.Equal(t, "spot", l.Type().String())
}

func TestSetDirectionZeroLength(t *testing.T) {
	l := NewLight(LightTypeDirectional)
	l.SetDirection(0, 0, 0)
	assert.Equal(t, mgl32.Vec3{}, l.Direction())
}

func TestVisible(t *testing.T) {
	f := testFrustum()

	assert.True(t, Visible(NewLight(LightTypeDirectional), f))
	assert.True(t, Visible(NewLight(LightTypePoint, WithRange(2)), f))
	assert.False(t, Visible(NewLight(LightTypePoint, WithPosition(0, 0, 50), WithRange(2)), f), "behind the camera")
	assert.False(t, Visible(NewLight(LightTypeDirectional, WithEnabled(false)), f))
}

func TestPackUniforms(t *testing.T) {
	lights := []Light{
		NewLight(LightTypePoint, WithPosition(1, 2, 3), WithColor(1, 0, 0), WithIntensity(2), WithRange(5)),
		NewLight(LightTypePoint, WithPosition(0, 0, 50), WithRange(1)),
		NewLight(LightTypeDirectional, WithDirection(0, -1, 0)),
	}

	data, n := PackUniforms(lights, testFrustum())
	require.Equal(t, 2, n)
	require.Len(t, data, MaxUniformLights*16)

	assert.Equal(t, []float32{1, 2, 3, 1, 1, 0, 0, 2}, data[0:8])
	assert.Equal(t, float32(5), data[11])
	assert.Equal(t, []float32{0, 0, 0, 0}, data[16:20], "second slot holds the directional light")
	assert.Equal(t, []float32{0, -1, 0}, data[24:27])
	assert.Zero(t, data[32])
}

func TestPackUniformsCaps(t *testing.T) {
	var lights []Light
	for i := 0; i < MaxUniformLights+3; i++ {
		lights = append(lights, NewLight(LightTypeDirectional))
	}
	_, n := PackUniforms(lights, testFrustum())
	assert.Equal(t, MaxUniformLights, n)
}
