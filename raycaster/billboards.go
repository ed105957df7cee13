package raycaster

import (
	"math"
	"sort"

	"github.com/gophercraft/raycast2d/pkg/billboard"
	"github.com/gophercraft/raycast2d/pkg/vecmath"
)

// renderBillboards sorts p.Billboards back-to-front by squared distance to
// the camera and draws each against the z-buffer the wall stage left
// behind. The sort is total and deterministic for a given input order
// (ties broken by original index) even though it need not be stable in
// the general case.
func (r *Raycaster) renderBillboards(p RenderParams) {
	cam := p.Camera
	pos := cam.Position()
	dir, plane := cam.Direction(), cam.Plane()

	order := make([]int, len(p.Billboards))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		bi, bj := p.Billboards[order[i]], p.Billboards[order[j]]
		di, dj := bi.DistanceSquaredTo(pos), bj.DistanceSquaredTo(pos)
		if di != dj {
			return di > dj
		}
		return order[i] > order[j]
	})

	invDet := 1 / (plane.X*dir.Y - dir.X*plane.Y)

	for _, idx := range order {
		r.renderBillboard(p, p.Billboards[idx], pos, dir, plane, invDet)
	}
}

// renderBillboard projects one sprite into camera space via the inverse
// 2x2 basis, computes its screen-space rectangle, and blits it column by
// column with per-column z-buffer occlusion and binary-alpha sampling.
func (r *Raycaster) renderBillboard(p RenderParams, bb *billboard.Billboard, camPos, dir, plane vecmath.Vector2, invDet float64) {
	w, h := r.fb.Width, r.fb.Height
	delta := bb.Position.Sub(camPos)

	bxc := invDet * (dir.Y*delta.X - dir.X*delta.Y)
	byc := invDet * (-plane.Y*delta.X + plane.X*delta.Y)
	if byc <= 0 {
		return
	}

	drawOffsetY := math.Floor(-bb.VOffset / byc * float64(h))
	bxs := math.Floor(float64(w) / 2 * (1 + bxc/byc))
	spriteDim := math.Abs(math.Floor(float64(h) / byc))
	height := spriteDim * bb.Scale.Y
	width := spriteDim * bb.Scale.X
	if height <= 0 || width <= 0 {
		return
	}

	left := bxs - width/2
	drawStartX := clampInt(int(math.Floor(left)), 0, w)
	drawEndX := clampInt(int(math.Floor(left+width)), 0, w)
	if drawStartX >= drawEndX {
		return
	}

	top := float64(h)/2 - height/2 + drawOffsetY
	drawStartY := clampInt(int(math.Floor(top)), 0, h)
	drawEndY := clampInt(int(math.Floor(top+height)), 0, h)
	if drawStartY >= drawEndY {
		return
	}

	tex := bb.TextureForBearing(camPos)
	normal := delta.Normalized().To3(0)

	for x := drawStartX; x < drawEndX; x++ {
		if byc >= r.zBuffer[x] {
			continue
		}
		u := (float64(x) - left) / width
		texX := clampInt(int(u*float64(tex.Width)), 0, tex.Width-1)

		for y := drawStartY; y < drawEndY; y++ {
			v := (float64(y) - top) / height
			texY := clampInt(int(v*float64(tex.Height)), 0, tex.Height-1)

			tr, tg, tb, ta := tex.At(texX, texY)
			if ta == 0 {
				continue
			}
			cr, cg, cb, _ := shadeSample(p, normal, tr, tg, tb, ta, byc)
			r.fb.Set(x, y, cr, cg, cb, 0xFF)
		}
	}
}
