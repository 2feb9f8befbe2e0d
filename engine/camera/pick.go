package camera

import (
	"log"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/mathgl/mgl32"
)

func (c *cameraImpl) PickRay(vp common.Viewport, x, y float32) common.Ray {
	// screen y grows downward, window y upward; Unproject takes the viewport origin off again
	winY := float32(vp.Height) - y

	near, ok := common.Unproject(x, winY, 0, c.viewMatrix, c.projectionMatrix, vp)
	if !ok {
		log.Printf("[Camera] pick ray at (%.1f, %.1f): singular view-projection", x, y)
		return common.Ray{}
	}
	far, _ := common.Unproject(x, winY, 1, c.viewMatrix, c.projectionMatrix, vp)

	origin := homogenize(near)
	end := homogenize(far)

	dir := end.Sub(origin)
	dir[3] = 0
	return common.Ray{Origin: origin, Direction: dir}
}

// homogenize divides a homogeneous point by its w component. Points at infinity pass through.
func homogenize(p mgl32.Vec4) mgl32.Vec4 {
	if p[3] == 0 {
		return p
	}
	return mgl32.Vec4{p[0] / p[3], p[1] / p[3], p[2] / p[3], 1}
}
