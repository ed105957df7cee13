package raycaster

import (
	"math"

	"github.com/gophercraft/raycast2d/pkg/raycast"
	"github.com/gophercraft/raycast2d/pkg/vecmath"
)

// renderWalls draws one column per screen x, writing color into r.fb and
// perpendicular distance into r.zBuffer. Columns whose DDA hit leaves
// lineHeight == 0 write no pixels but still record the z-buffer entry, so
// a billboard behind a degenerate column is still correctly occluded.
func (r *Raycaster) renderWalls(p RenderParams) {
	w, h := r.fb.Width, r.fb.Height
	cam := p.Camera
	dir, plane, pos := cam.Direction(), cam.Plane(), cam.Position()

	for x := 0; x < w; x++ {
		camX := 2*float64(x)/float64(w) - 1
		rayDir := vecmath.Vector2{X: dir.X + plane.X*camX, Y: dir.Y + plane.Y*camX}
		hit := raycast.TilemapIntersection(raycast.Ray2{Start: pos, Dir: rayDir}, p.Tilemap)
		perp := hit.PerpendicularDistance
		r.zBuffer[x] = perp

		lineHeight := int(math.Floor(float64(h) / perp))
		if lineHeight <= 0 {
			continue
		}
		start := int(math.Floor(float64(h-lineHeight) / 2))
		end := int(math.Floor(float64(h+lineHeight) / 2))
		clipStart := clampInt(start, 0, h)
		clipEnd := clampInt(end, 0, h)
		if clipStart >= clipEnd {
			continue
		}

		var wallPos float64
		if hit.Side == 0 {
			wallPos = hit.HitPosition.Y
		} else {
			wallPos = hit.HitPosition.X
		}
		u := wallPos - math.Floor(wallPos)

		texIdx := p.Tilemap.TextureIndex(hit.MapX, hit.MapY)
		tex := p.Textures[texIdx]

		texX := clampInt(int(u*float64(tex.Width)), 0, tex.Width-1)
		flip := (hit.Side == 0 && rayDir.X < 0) || (hit.Side == 1 && rayDir.Y > 0)
		if flip {
			texX = tex.Width - texX - 1
		}

		normal := hit.Normal.To3(0)
		lineHeightF := float64(lineHeight)
		for y := clipStart; y < clipEnd; y++ {
			v := (float64(y) - float64(start)) / lineHeightF
			texY := clampInt(int(v*float64(tex.Height)), 0, tex.Height-1)

			tr, tg, tb, ta := tex.At(texX, texY)
			cr, cg, cb, ca := shadeSample(p, normal, tr, tg, tb, ta, perp)
			r.fb.Set(x, y, cr, cg, cb, ca)
		}
	}
}
