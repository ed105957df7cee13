package raycaster

import (
	"math"

	"github.com/gophercraft/raycast2d/pkg/texture"
	"github.com/gophercraft/raycast2d/pkg/vecmath"
)

var floorNormal = vecmath.Vector3{Z: 1}
var ceilingNormal = vecmath.Vector3{Z: -1}

// renderFloorCeiling fills the top and bottom halves of the frame by
// walking, per screen row, the world-space line that row's horizontal
// rays sweep across the z=0/z=1 planes.
func (r *Raycaster) renderFloorCeiling(p RenderParams) {
	w, h := r.fb.Width, r.fb.Height
	cam := p.Camera
	dir, plane, pos := cam.Direction(), cam.Plane(), cam.Position()

	rayDir0 := dir.Sub(plane)
	rayDir1 := dir.Add(plane)
	halfH := float64(h) / 2

	for y := 0; y < h/2; y++ {
		rowDistance := halfH / math.Abs(float64(y)-halfH)

		floorPos := pos.Add(rayDir0.Scale(rowDistance))
		step := rayDir1.Sub(rayDir0).Scale(rowDistance / float64(w))

		cur := floorPos
		for x := 0; x < w; x++ {
			u := cur.X - math.Floor(cur.X)
			v := cur.Y - math.Floor(cur.Y)

			if p.CeilingTexture != nil {
				r.sampleFloorCeiling(p, p.CeilingTexture, ceilingNormal, u, v, rowDistance, x, y)
			}
			if p.FloorTexture != nil {
				r.sampleFloorCeiling(p, p.FloorTexture, floorNormal, u, v, rowDistance, x, h-1-y)
			}
			cur = cur.Add(step)
		}
	}
}

func (r *Raycaster) sampleFloorCeiling(p RenderParams, tex *texture.Texture, normal vecmath.Vector3, u, v, dist float64, x, y int) {
	texX := clampInt(int(u*float64(tex.Width)), 0, tex.Width-1)
	texY := clampInt(int(v*float64(tex.Height)), 0, tex.Height-1)
	tr, tg, tb, ta := tex.At(texX, texY)
	cr, cg, cb, ca := shadeSample(p, normal, tr, tg, tb, ta, dist)
	r.fb.Set(x, y, cr, cg, cb, ca)
}
