// Package raycast implements the geometric ray-query primitives the
// raycaster package drives per column and per billboard: 2D DDA traversal
// of a tilemap, its extension against the ceiling/floor slabs, billboard
// plane intersection, and screen-to-world unprojection.
package raycast

import "github.com/gophercraft/raycast2d/pkg/vecmath"

// Ray2 is a 2D ray. Dir need not be unit length: TilemapIntersection's
// PerpendicularDistance is measured in multiples of Dir, so it is a
// world-space distance only for a unit-length Dir. The raycaster passes
// Direction + Plane*camX, whose component along the unit Direction is 1,
// so there the result is the distance perpendicular to the camera plane.
type Ray2 struct {
	Start, Dir vecmath.Vector2
}

// Ray3 is a 3D ray, used for the ceiling/floor and billboard primitives and
// for ScreenPointToRay's unprojection.
type Ray3 struct {
	Start, Dir vecmath.Vector3
}
