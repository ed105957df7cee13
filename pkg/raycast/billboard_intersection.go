package raycast

import (
	"github.com/gophercraft/raycast2d/pkg/billboard"
	"github.com/gophercraft/raycast2d/pkg/vecmath"
)

// BillboardHit is the result of intersecting a 3D ray with a billboard's
// quad. Inside is false when the intersection point falls outside the
// quad's [-0.5, 0.5] U/V extent.
type BillboardHit struct {
	Inside   bool
	Position vecmath.Vector3
	RayScale float64
	U, V     float64
}

// BillboardIntersection intersects ray with the rectangle described by bb:
// a plane through (bb.Position, z=0) with normal bbDir (lifted to 3D with
// z=0) and right tangent (bbDir.Y, -bbDir.X, 0). UV is measured from the
// sprite's center-of-canvas (bb.Position, 0.5+bb.VOffset) and divided by
// bb.Scale; it lies inside the sprite iff both components are in
// [-0.5, 0.5].
func BillboardIntersection(ray Ray3, bb *billboard.Billboard, bbDir vecmath.Vector2) BillboardHit {
	normal := bbDir.To3(0)
	tangent := vecmath.Vector2{X: bbDir.Y, Y: -bbDir.X}.To3(0)
	surface := planeThroughPoint(normal, bb.Position.To3(0))

	t, ok := surface.intersect(ray)
	if !ok {
		return BillboardHit{}
	}

	pos := ray.Start.Add(ray.Dir.Scale(t))
	center := bb.Position.To3(0.5 + bb.VOffset)
	diff := pos.Sub(center)

	u := diff.Dot(tangent) / bb.Scale.X
	v := diff.Z / bb.Scale.Y

	inside := u >= -0.5 && u <= 0.5 && v >= -0.5 && v <= 0.5

	return BillboardHit{Inside: inside, Position: pos, RayScale: t, U: u, V: v}
}
