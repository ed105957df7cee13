package raycaster

import (
	"math"
	"testing"

	"github.com/gophercraft/raycast2d/pkg/billboard"
	"github.com/gophercraft/raycast2d/pkg/camera"
	"github.com/gophercraft/raycast2d/pkg/raycast"
	"github.com/gophercraft/raycast2d/pkg/texture"
	"github.com/gophercraft/raycast2d/pkg/tilemap"
	"github.com/gophercraft/raycast2d/pkg/vecmath"
)

func bordered(n int) *tilemap.Tilemap {
	cells := make([]int, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x == 0 || y == 0 || x == n-1 || y == n-1 {
				cells[n*y+x] = 1
			}
		}
	}
	return tilemap.New(n, n, cells)
}

func solidTexture(size int, r, g, b, a uint8) *texture.Texture {
	tex := texture.New(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			tex.Set(x, y, r, g, b, a)
		}
	}
	return tex
}

// S6 — wall column height.
func TestRenderCenterColumnHeightMatchesFloorFormula(t *testing.T) {
	const w, h = 64, 64
	tm := bordered(10)
	cam := camera.New(1.5, 1.5, 3*math.Pi/4, 1)
	tex := solidTexture(4, 255, 255, 255, 255)

	fb := texture.New(w, h)
	rc := New(fb)
	rc.Render(RenderParams{Tilemap: tm, Textures: []*texture.Texture{tex}, Camera: cam})

	dir, plane := cam.Direction(), cam.Plane()
	centerX := w / 2
	camX := 2*float64(centerX)/float64(w) - 1
	rayDir := vecmath.Vector2{X: dir.X + plane.X*camX, Y: dir.Y + plane.Y*camX}
	hit := raycast.TilemapIntersection(raycast.Ray2{Start: cam.Position(), Dir: rayDir}, tm)

	wantHeight := int(math.Floor(float64(h) / hit.PerpendicularDistance))

	if math.Abs(rc.ZBuffer()[centerX]-hit.PerpendicularDistance) > 1e-9 {
		t.Fatalf("zBuffer[%d] = %v, want %v", centerX, rc.ZBuffer()[centerX], hit.PerpendicularDistance)
	}

	wantStart := clampInt(int(math.Floor(float64(h-wantHeight)/2)), 0, h)
	wantEnd := clampInt(int(math.Floor(float64(h+wantHeight)/2)), 0, h)

	gotOpaque := 0
	for y := 0; y < h; y++ {
		_, _, _, a := fb.At(centerX, y)
		if a != 0 {
			gotOpaque++
		}
	}
	if gotOpaque != wantEnd-wantStart {
		t.Errorf("opaque rows in column %d = %d, want %d", centerX, gotOpaque, wantEnd-wantStart)
	}
}

// Invariant 5 — every column's z-buffer entry equals the perpendicular
// distance of its rendered wall.
func TestRenderZBufferMatchesPerColumnDDA(t *testing.T) {
	const w, h = 40, 30
	tm := bordered(8)
	cam := camera.New(2, 2, 0.3, 4.0/3.0)
	tex := solidTexture(2, 10, 20, 30, 255)

	fb := texture.New(w, h)
	rc := New(fb)
	rc.Render(RenderParams{Tilemap: tm, Textures: []*texture.Texture{tex}, Camera: cam})

	dir, plane := cam.Direction(), cam.Plane()
	for x := 0; x < w; x++ {
		camX := 2*float64(x)/float64(w) - 1
		rayDir := vecmath.Vector2{X: dir.X + plane.X*camX, Y: dir.Y + plane.Y*camX}
		hit := raycast.TilemapIntersection(raycast.Ray2{Start: cam.Position(), Dir: rayDir}, tm)
		if math.Abs(rc.ZBuffer()[x]-hit.PerpendicularDistance) > 1e-9 {
			t.Errorf("zBuffer[%d] = %v, want %v", x, rc.ZBuffer()[x], hit.PerpendicularDistance)
		}
	}
}

// Invariant 2 — DDA termination: rendering against a solid-bordered map
// never panics, and every column's hit lands on a positive cell.
func TestRenderAllColumnsTerminate(t *testing.T) {
	const w, h = 50, 50
	tm := bordered(12)
	cam := camera.New(6, 6, 1.1, 1)
	tex := solidTexture(2, 1, 2, 3, 255)

	fb := texture.New(w, h)
	rc := New(fb)
	rc.Render(RenderParams{Tilemap: tm, Textures: []*texture.Texture{tex}, Camera: cam})

	dir, plane := cam.Direction(), cam.Plane()
	for x := 0; x < w; x++ {
		camX := 2*float64(x)/float64(w) - 1
		rayDir := vecmath.Vector2{X: dir.X + plane.X*camX, Y: dir.Y + plane.Y*camX}
		hit := raycast.TilemapIntersection(raycast.Ray2{Start: cam.Position(), Dir: rayDir}, tm)
		if !tm.IsWall(hit.MapX, hit.MapY) {
			t.Errorf("column %d hit (%d,%d) is not a wall", x, hit.MapX, hit.MapY)
		}
	}
}

// A billboard nearer than the wall behind it is drawn over that wall's
// column, and where two billboards overlap the nearer one is painted last
// and wins.
func TestRenderBillboardOcclusionAgainstZBuffer(t *testing.T) {
	const w, h = 20, 20
	tm := bordered(10)
	wallTex := solidTexture(2, 0, 0, 255, 255)
	fb := texture.New(w, h)

	cam := camera.New(5, 8, 0, 1)
	near := &billboard.Billboard{
		Position: vecmath.Vector2{X: 5, Y: 6},
		Scale:    vecmath.Vector2{X: 1, Y: 1},
		Textures: []*texture.Texture{solidTexture(2, 255, 0, 0, 255)},
	}
	far := &billboard.Billboard{
		Position: vecmath.Vector2{X: 5, Y: 1.4},
		Scale:    vecmath.Vector2{X: 1, Y: 1},
		Textures: []*texture.Texture{solidTexture(2, 0, 255, 0, 255)},
	}

	rc := New(fb)
	rc.Render(RenderParams{
		Tilemap: tm, Textures: []*texture.Texture{wallTex},
		Billboards: []*billboard.Billboard{near, far},
		Camera:     cam,
	})

	centerX := w / 2
	r, g, b, a := fb.At(centerX, h/2)
	if a == 0 {
		t.Fatalf("expected an opaque pixel at column center, got transparent")
	}
	if r < g || r < b {
		t.Errorf("center pixel = (%d,%d,%d), want the near (red) billboard to win occlusion", r, g, b)
	}
}

// Clear(ClearDepth) resets every column, not just every other one (spec's
// stated double-advance fix).
func TestClearDepthResetsEveryColumn(t *testing.T) {
	fb := texture.New(9, 9)
	rc := New(fb)
	for i := range rc.zBuffer {
		rc.zBuffer[i] = 0
	}
	rc.Clear(ClearDepth)
	for i, v := range rc.ZBuffer() {
		if !math.IsInf(v, 1) {
			t.Errorf("zBuffer[%d] = %v, want +Inf", i, v)
		}
	}
}
