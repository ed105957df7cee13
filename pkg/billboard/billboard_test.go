package billboard

import (
	"math"
	"testing"

	"github.com/gophercraft/raycast2d/pkg/texture"
	"github.com/gophercraft/raycast2d/pkg/vecmath"
)

func fourViewBillboard(angle float64) *Billboard {
	return &Billboard{
		Position: vecmath.Vector2{X: 0, Y: 0},
		Scale:    vecmath.Vector2{X: 1, Y: 1},
		Angle:    angle,
		Textures: []*texture.Texture{
			texture.New(1, 1), texture.New(1, 1), texture.New(1, 1), texture.New(1, 1),
		},
	}
}

func TestTextureIndexForBearingFront(t *testing.T) {
	// billboard faces +X (angle 0); camera straight ahead of its face.
	b := fourViewBillboard(0)
	idx := b.TextureIndexForBearing(vecmath.Vector2{X: 1, Y: 0})
	if idx != 0 {
		t.Errorf("TextureIndexForBearing() = %v, want 0 (front)", idx)
	}
}

// Symmetry invariant: rotating Angle by 2*pi/N cycles the selected index
// by exactly 1.
func TestTextureIndexForBearingCyclesWithAngle(t *testing.T) {
	camPos := vecmath.Vector2{X: 5, Y: 5}
	b := fourViewBillboard(0)
	first := b.TextureIndexForBearing(camPos)
	b.Angle += 2 * math.Pi / 4
	second := b.TextureIndexForBearing(camPos)
	diff := (second - first + 4) % 4
	if diff != 1 && diff != 3 {
		t.Errorf("index changed by %v after rotating Angle by one step, want +-1", second-first)
	}
}

func TestDistanceSquaredTo(t *testing.T) {
	b := &Billboard{Position: vecmath.Vector2{X: 3, Y: 4}}
	got := b.DistanceSquaredTo(vecmath.Vector2{})
	if got != 25 {
		t.Errorf("DistanceSquaredTo() = %v, want 25", got)
	}
}
