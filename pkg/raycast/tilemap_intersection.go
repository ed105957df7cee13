package raycast

import (
	"math"

	"github.com/gophercraft/raycast2d/pkg/tilemap"
	"github.com/gophercraft/raycast2d/pkg/vecmath"
)

// WallHit is the result of a 2D DDA traversal against a Tilemap.
type WallHit struct {
	MapX, MapY            int
	Side                  int // 0 = x-face (east/west), 1 = y-face (north/south)
	HitPosition           vecmath.Vector2
	Normal                vecmath.Vector2
	PerpendicularDistance float64
}

// TilemapIntersection walks ray through tm using the classic
// Amanatides-Woo grid traversal (DDA) and returns the first wall cell it
// crosses. tm's outer border must be solid; callers violating that
// invariant may see the loop read out of bounds (undefined behavior, per
// design — see spec §7).
func TilemapIntersection(ray Ray2, tm *tilemap.Tilemap) WallHit {
	sx, sy := ray.Start.X, ray.Start.Y
	dx, dy := ray.Dir.X, ray.Dir.Y

	mapX, mapY := int(math.Floor(sx)), int(math.Floor(sy))

	deltaDistX := math.Abs(1 / dx)
	deltaDistY := math.Abs(1 / dy)

	var stepX, stepY int
	var sideDistX, sideDistY float64

	if dx < 0 {
		stepX = -1
		sideDistX = (sx - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1.0 - sx) * deltaDistX
	}
	if dy < 0 {
		stepY = -1
		sideDistY = (sy - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1.0 - sy) * deltaDistY
	}

	side := -1
	for {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			side = 0
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			side = 1
		}
		if tm.At(mapX, mapY) != 0 {
			break
		}
	}

	var perp float64
	var normal vecmath.Vector2
	if side == 0 {
		perp = (float64(mapX) - sx + (1-float64(stepX))/2) / dx
		normal = vecmath.Vector2{X: -float64(stepX), Y: 0}
	} else {
		perp = (float64(mapY) - sy + (1-float64(stepY))/2) / dy
		normal = vecmath.Vector2{X: 0, Y: -float64(stepY)}
	}

	return WallHit{
		MapX:                  mapX,
		MapY:                  mapY,
		Side:                  side,
		HitPosition:           ray.Start.Add(ray.Dir.Scale(perp)),
		Normal:                normal,
		PerpendicularDistance: perp,
	}
}
