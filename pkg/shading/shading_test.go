package shading

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gophercraft/raycast2d/pkg/vecmath"
)

// Shading identity: with light.Color=0, Ambient=1, fog absent, output
// equals the raw texture sample.
func TestShadeIdentityNoLightFullAmbientNoFog(t *testing.T) {
	light := &Light{
		Direction: vecmath.Vector3{Z: 1},
		Color:     colorful.Color{},
		Ambient:   colorful.Color{R: 1, G: 1, B: 1},
	}
	r, g, b, a := Shade(light, nil, vecmath.Vector3{Z: 1}, 200, 100, 50, 255, 5)
	if r != 200 || g != 100 || b != 50 || a != 255 {
		t.Errorf("Shade() = (%d,%d,%d,%d), want (200,100,50,255)", r, g, b, a)
	}
}

// With fog.Near == fog.Far == 0, output equals the fog color for any
// covered pixel at a positive distance.
func TestShadePureFogWhenNearEqualsFar(t *testing.T) {
	fog := &Fog{Near: 0, Far: 0, Color: colorful.Color{R: 0.2, G: 0.4, B: 0.6}}
	r, g, b, _ := Shade(nil, fog, vecmath.Vector3{Z: 1}, 255, 255, 255, 255, 10)
	wantR, wantG, wantB := toByte(0.2), toByte(0.4), toByte(0.6)
	if r != wantR || g != wantG || b != wantB {
		t.Errorf("Shade() = (%d,%d,%d), want (%d,%d,%d)", r, g, b, wantR, wantG, wantB)
	}
}

func TestFogFactorClampedToUnitRange(t *testing.T) {
	fog := &Fog{Near: 10, Far: 20}
	if f := fog.Factor(0); f != 1 {
		t.Errorf("Factor(0) = %v, want 1 (clamped)", f)
	}
	if f := fog.Factor(30); f != 0 {
		t.Errorf("Factor(30) = %v, want 0 (clamped)", f)
	}
	if f := fog.Factor(15); f != 0.5 {
		t.Errorf("Factor(15) = %v, want 0.5", f)
	}
}

func TestFogFactorNilFog(t *testing.T) {
	var fog *Fog
	if f := fog.Factor(100); f != 1 {
		t.Errorf("nil Fog.Factor() = %v, want 1", f)
	}
}

func TestShadeAlphaPassesThrough(t *testing.T) {
	_, _, _, a := Shade(nil, nil, vecmath.Vector3{Z: 1}, 10, 10, 10, 128, 1)
	if a != 128 {
		t.Errorf("alpha = %v, want 128", a)
	}
}
