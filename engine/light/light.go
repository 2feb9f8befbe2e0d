// Package light holds the plain light values an engine keeps in its light list. Lights carry
// no device state; render passes read them and pack them into uniforms.
package light

import "github.com/go-gl/mathgl/mgl32"

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeDirectional has a direction but no position and does not attenuate.
	LightTypeDirectional LightType = iota

	// LightTypePoint emits in all directions from a position, attenuating up to its range.
	LightTypePoint

	// LightTypeSpot emits in a cone along its direction, attenuating by distance and angle.
	LightTypeSpot
)

func (t LightType) String() string {
	switch t {
	case LightTypeDirectional:
		return "directional"
	case LightTypePoint:
		return "point"
	case LightTypeSpot:
		return "spot"
	}
	return "unknown"
}

type lightImpl struct {
	lightType  LightType
	position   mgl32.Vec3
	direction  mgl32.Vec3
	color      mgl32.Vec3
	intensity  float32
	lightRange float32
	innerCone  float32 // cos(inner half-angle)
	outerCone  float32 // cos(outer half-angle)
	enabled    bool
}

// Light is a light source value. Properties that do not apply to the light's type
// (position of a directional light, cone of a point light) are kept but ignored.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: directional, point or spot
	Type() LightType

	// Position returns the world-space position.
	Position() mgl32.Vec3

	// SetPosition moves the light.
	//
	// Parameters:
	//   - x, y, z: world-space position
	SetPosition(x, y, z float32)

	// Direction returns the normalized light direction (directional) or cone axis (spot).
	Direction() mgl32.Vec3

	// SetDirection sets the direction. The vector is normalized.
	//
	// Parameters:
	//   - x, y, z: direction components
	SetDirection(x, y, z float32)

	// Color returns the RGB color.
	Color() mgl32.Vec3

	// SetColor sets the RGB color.
	SetColor(r, g, b float32)

	// Intensity returns the scalar intensity multiplier.
	Intensity() float32

	// SetIntensity sets the scalar intensity multiplier.
	SetIntensity(intensity float32)

	// Range returns the attenuation cutoff distance of point and spot lights.
	Range() float32

	// InnerCone returns cos of the spot inner half-angle.
	InnerCone() float32

	// OuterCone returns cos of the spot outer half-angle.
	OuterCone() float32

	// Enabled reports whether passes should evaluate this light.
	Enabled() bool

	// SetEnabled toggles the light.
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a white, enabled light of the given type pointing down -Z with a range of 10.
// Spot lights default to a 15 / 30 degree cone.
//
// Parameters:
//   - lightType: the kind of light
//   - options: functional options to configure the light
//
// Returns:
//   - Light: the new light
func NewLight(lightType LightType, options ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType:  lightType,
		direction:  mgl32.Vec3{0, 0, -1},
		color:      mgl32.Vec3{1, 1, 1},
		intensity:  1,
		lightRange: 10,
		innerCone:  cosDeg(15),
		outerCone:  cosDeg(30),
		enabled:    true,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Position() mgl32.Vec3 {
	return l.position
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.position = mgl32.Vec3{x, y, z}
}

func (l *lightImpl) Direction() mgl32.Vec3 {
	return l.direction
}

func (l *lightImpl) SetDirection(x, y, z float32) {
	l.direction = normalize3(x, y, z)
}

func (l *lightImpl) Color() mgl32.Vec3 {
	return l.color
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.color = mgl32.Vec3{r, g, b}
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) Range() float32 {
	return l.lightRange
}

func (l *lightImpl) InnerCone() float32 {
	return l.innerCone
}

func (l *lightImpl) OuterCone() float32 {
	return l.outerCone
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}
