// Package billboard describes sprite quads the raycaster draws facing the
// camera: a ground-plane position, a facing angle, and a set of
// directional texture views selected by camera bearing.
package billboard

import (
	"math"

	"github.com/gophercraft/raycast2d/pkg/texture"
	"github.com/gophercraft/raycast2d/pkg/vecmath"
)

// Billboard is a flat textured quad whose normal lies in the ground
// plane. VOffset translates its center vertically in world units; Angle
// is its facing direction in the ground plane. Textures provides 1, 4, or
// any n directional views equally partitioned around a full turn, index 0
// being the front-facing view as seen from Angle.
type Billboard struct {
	Position vecmath.Vector2
	Scale    vecmath.Vector2
	VOffset  float64
	Angle    float64
	Textures []*texture.Texture
}

// reduceAngle folds theta into [0, 2*pi).
func reduceAngle(theta float64) float64 {
	const twoPi = 2 * math.Pi
	theta = math.Mod(theta, twoPi)
	if theta < 0 {
		theta += twoPi
	}
	return theta
}

// TextureIndexForBearing computes which of b.Textures to show for a
// camera positioned at camPos: texture 0 is the front view (facing the
// camera), and successive indices step clockwise around a full turn —
// for N=4 the order is front, right, rear, left.
func (b *Billboard) TextureIndexForBearing(camPos vecmath.Vector2) int {
	n := len(b.Textures)
	angleRange := 2 * math.Pi / float64(n)
	bearing := math.Atan2(camPos.Y-b.Position.Y, camPos.X-b.Position.X) - (b.Angle - angleRange/2)
	bearing = reduceAngle(bearing)
	idx := int(math.Floor(bearing / angleRange))
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// TextureForBearing returns the directional view of b visible from camPos.
func (b *Billboard) TextureForBearing(camPos vecmath.Vector2) *texture.Texture {
	return b.Textures[b.TextureIndexForBearing(camPos)]
}

// DirectionVector returns the billboard's facing direction as a unit
// vector in the ground plane, used as the plane normal by
// pkg/raycast.BillboardIntersection.
func (b *Billboard) DirectionVector() vecmath.Vector2 {
	return vecmath.Vector2{X: math.Cos(b.Angle), Y: math.Sin(b.Angle)}
}

// DistanceSquaredTo returns the squared distance from p to the billboard's
// position, used by the raycaster to sort billboards back-to-front without
// paying for a square root.
func (b *Billboard) DistanceSquaredTo(p vecmath.Vector2) float64 {
	return b.Position.Sub(p).LengthSquared()
}
