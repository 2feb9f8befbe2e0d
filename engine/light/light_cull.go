package light

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
)

// MaxUniformLights is how many lights PackUniforms writes. It matches the array size of the
// light uniform block expected by lit shaders.
const MaxUniformLights = 8

// vec4sPerLight is the number of vec4 slots one light occupies in the uniform array.
const vec4sPerLight = 4

// Visible reports whether a light can affect anything inside the frustum.
// Directional lights are unbounded and always visible; point and spot lights are tested as
// a sphere of radius Range around their position. Disabled lights are never visible.
//
// Parameters:
//   - l: the light to test
//   - f: the view frustum
//
// Returns:
//   - bool: true if the light should be evaluated
func Visible(l Light, f common.Frustum) bool {
	if !l.Enabled() {
		return false
	}
	if l.Type() == LightTypeDirectional {
		return true
	}
	return f.IntersectsSphere(l.Position(), l.Range())
}

// PackUniforms lays out the visible lights as a vec4 array for a GL uniform upload
// (glUniform4fv). Each light takes four vec4s:
//
//	[0] position.xyz, type
//	[1] color.rgb, intensity
//	[2] direction.xyz, range
//	[3] inner cone cos, outer cone cos, 0, 0
//
// At most MaxUniformLights are written, in list order.
//
// Parameters:
//   - lights: the engine's light list
//   - f: the view frustum used to skip lights that cannot contribute
//
// Returns:
//   - []float32: MaxUniformLights*16 floats, unused entries zeroed
//   - int: the number of lights written
func PackUniforms(lights []Light, f common.Frustum) ([]float32, int) {
	out := make([]float32, MaxUniformLights*vec4sPerLight*4)
	n := 0
	for _, l := range lights {
		if n == MaxUniformLights {
			break
		}
		if !Visible(l, f) {
			continue
		}
		p, c, d := l.Position(), l.Color(), l.Direction()
		copy(out[n*16:], []float32{
			p[0], p[1], p[2], float32(l.Type()),
			c[0], c[1], c[2], l.Intensity(),
			d[0], d[1], d[2], l.Range(),
			l.InnerCone(), l.OuterCone(), 0, 0,
		})
		n++
	}
	return out, n
}
