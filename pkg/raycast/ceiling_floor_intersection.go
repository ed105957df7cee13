package raycast

import (
	"github.com/gophercraft/raycast2d/pkg/tilemap"
	"github.com/gophercraft/raycast2d/pkg/vecmath"
)

// SlabHit is the result of extending a 2D wall hit into 3D against the
// z=0 floor and z=1 ceiling slabs.
type SlabHit struct {
	Position vecmath.Vector3
	Normal   vecmath.Vector3
	RayScale float64
	// Side mirrors WallHit.Side when the hit lands on a wall face; it is
	// meaningless (left at its zero value) for floor/ceiling hits.
	Side int
}

// TilemapCeilingFloorIntersection projects ray to the XY plane, runs
// TilemapIntersection against tm, and extends that 2D hit into 3D: if the
// wall-hit's implied z falls at or below 0 the actual hit is the floor
// plane, at or above 1 it is the ceiling plane, and otherwise it is the
// wall face itself (lifted to 3D with a zero z-component normal).
func TilemapCeilingFloorIntersection(ray Ray3, tm *tilemap.Tilemap) SlabHit {
	dirXY := ray.Dir.XY()
	length := dirXY.Length()
	dirXYUnit := dirXY.Normalized()

	hit2D := TilemapIntersection(Ray2{Start: ray.Start.XY(), Dir: dirXYUnit}, tm)

	z := ray.Start.Z + (ray.Dir.Z/length)*hit2D.PerpendicularDistance

	var surface plane
	var normal vecmath.Vector3
	side := 0
	switch {
	case z <= 0:
		normal = vecmath.Vector3{Z: 1}
		surface = planeThroughPoint(normal, vecmath.Vector3{Z: 0})
	case z >= 1:
		normal = vecmath.Vector3{Z: -1}
		surface = planeThroughPoint(normal, vecmath.Vector3{Z: 1})
	default:
		normal = hit2D.Normal.To3(0)
		surface = planeThroughPoint(normal, hit2D.HitPosition.To3(0))
		side = hit2D.Side
	}

	t, _ := surface.intersect(ray)
	return SlabHit{
		Position: ray.Start.Add(ray.Dir.Scale(t)),
		Normal:   normal,
		RayScale: t,
		Side:     side,
	}
}
