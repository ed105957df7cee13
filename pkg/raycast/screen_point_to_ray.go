package raycast

import (
	"github.com/gophercraft/raycast2d/pkg/camera"
	"github.com/gophercraft/raycast2d/pkg/vecmath"
)

// ScreenPointToRay unprojects a normalized screen point (both components
// in [0,1], origin top-left) into a world-space ray from the camera's
// near plane.
func ScreenPointToRay(nScreen vecmath.Vector2, cam *camera.Camera) Ray3 {
	t := 2*nScreen.X - 1

	dir := cam.Direction()
	plane := cam.Plane()
	pos := cam.Position()

	return Ray3{
		Start: vecmath.Vector3{X: pos.X, Y: pos.Y, Z: 0.5},
		Dir: vecmath.Vector3{
			X: dir.X + plane.X*t,
			Y: dir.Y + plane.Y*t,
			Z: (1 - nScreen.Y) - 0.5,
		},
	}
}
