package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPerspectiveWithAspect(t *testing.T) {
	p := Perspective{FovY: 1, Aspect: 1, Near: 0.5, Far: 50}
	q := p.WithAspect(1.5).(Perspective)

	assert.Equal(t, float32(1), p.Aspect, "receiver is a value")
	assert.Equal(t, float32(1.5), q.Aspect)
	assert.Equal(t, mgl32.Perspective(1, 1.5, 0.5, 50), q.Matrix())
}

func TestOrthographicWithAspectKeepsHeightAndCenter(t *testing.T) {
	o := Orthographic{Left: 0, Right: 4, Bottom: -1, Top: 1, Near: 1, Far: 10}
	q := o.WithAspect(3).(Orthographic)

	assert.Equal(t, float32(-1), q.Left)
	assert.Equal(t, float32(5), q.Right)
	assert.Equal(t, o.Bottom, q.Bottom)
	assert.Equal(t, o.Top, q.Top)
}
