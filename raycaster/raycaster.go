// Package raycaster orchestrates the clear -> floor/ceiling -> walls ->
// billboards pipeline against a caller-provided frame buffer, owning the
// per-column z-buffer sprites are rejected against.
package raycaster

import (
	"math"

	"github.com/gophercraft/raycast2d/pkg/billboard"
	"github.com/gophercraft/raycast2d/pkg/camera"
	"github.com/gophercraft/raycast2d/pkg/shading"
	"github.com/gophercraft/raycast2d/pkg/texture"
	"github.com/gophercraft/raycast2d/pkg/tilemap"
	"github.com/gophercraft/raycast2d/pkg/vecmath"
)

// ClearTarget names a buffer Clear should reset.
type ClearTarget int

const (
	ClearColor ClearTarget = 1 << iota
	ClearDepth
)

// Raycaster borrows a frame buffer for its lifetime and owns a z-buffer
// sized to the buffer's width. The caller must not instantiate a Raycaster
// against a FrameBuffer whose Data is nil.
type Raycaster struct {
	fb      *texture.FrameBuffer
	zBuffer []float64
}

// New borrows fb for the returned Raycaster's lifetime. z-buffer contents
// are unspecified until the first Render or explicit Clear(ClearDepth).
func New(fb *texture.FrameBuffer) *Raycaster {
	return &Raycaster{fb: fb, zBuffer: make([]float64, fb.Width)}
}

// ZBuffer exposes the per-column perpendicular distance written by the
// most recent wall stage, read-only, for callers that want to inspect
// occlusion (e.g. tests).
func (r *Raycaster) ZBuffer() []float64 { return r.zBuffer }

// Clear resets the named targets; an empty targets list clears both color
// and depth. Every column is reset, not just every other one.
func (r *Raycaster) Clear(targets ...ClearTarget) {
	var mask ClearTarget
	for _, t := range targets {
		mask |= t
	}
	if mask == 0 {
		mask = ClearColor | ClearDepth
	}
	if mask&ClearColor != 0 {
		r.fb.ClearColor()
	}
	if mask&ClearDepth != 0 {
		for i := range r.zBuffer {
			r.zBuffer[i] = math.Inf(1)
		}
	}
}

// RenderParams bundles one frame's inputs. Tilemap and Textures must both
// be present to draw walls; FloorTexture and CeilingTexture are
// independently optional; Light and Fog are independently optional.
// Camera is required. Billboard input order does not affect the result:
// the billboard stage sorts internally by distance.
type RenderParams struct {
	Tilemap        *tilemap.Tilemap
	Textures       []*texture.Texture
	Billboards     []*billboard.Billboard
	FloorTexture   *texture.Texture
	CeilingTexture *texture.Texture
	Light          *shading.Light
	Fog            *shading.Fog
	Camera         *camera.Camera
}

// Render draws one frame: reset buffers, floor/ceiling, walls, billboards,
// in that fixed order. It is a synchronous, single-threaded pass — no
// goroutines are spawned per column or per sprite; callers needing
// parallelism must use independent Raycaster instances on disjoint frame
// buffers.
func (r *Raycaster) Render(p RenderParams) {
	r.Clear()

	if p.FloorTexture != nil || p.CeilingTexture != nil {
		r.renderFloorCeiling(p)
	}
	if p.Tilemap != nil && len(p.Textures) > 0 {
		r.renderWalls(p)
	}
	if len(p.Billboards) > 0 {
		r.renderBillboards(p)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// shadeSample applies the shading composition when either a light or a
// fog is configured, and otherwise passes the raw texture sample through
// unshaded (shading identity, per spec invariant 6).
func shadeSample(p RenderParams, normal vecmath.Vector3, r8, g8, b8, a8 uint8, dist float64) (uint8, uint8, uint8, uint8) {
	if p.Light == nil && p.Fog == nil {
		return r8, g8, b8, a8
	}
	return shading.Shade(p.Light, p.Fog, normal, r8, g8, b8, a8, dist)
}
