// Package shading implements the raycaster's lighting and fog model: a
// Lambert-like directional term with an ambient floor, linearly blended
// with a near/far fog color. It leans on go-colorful for the color
// representation and the linear RGB blend the fog composition needs.
package shading

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gophercraft/raycast2d/pkg/vecmath"
)

// RGB is a color with channels in [0,1]. It is colorful.Color under the
// hood so the fog blend can use colorful's linear RGB interpolation.
type RGB = colorful.Color

// Light is a directional light with an ambient floor. Direction is the
// light's emitted direction vector (not light-to-surface).
type Light struct {
	Direction vecmath.Vector3
	Color     RGB
	Ambient   RGB
}

// Fog is a linear near/far fog: Factor(d) == 1 means no fog, 0 means pure
// fog color.
type Fog struct {
	Near, Far float64
	Color     RGB
}

// Factor returns fog's blend factor at distance dist, clamped to [0,1].
// A nil Fog is treated as "no fog" (factor 1).
func (fog *Fog) Factor(dist float64) float64 {
	if fog == nil {
		return 1
	}
	f := (fog.Far - dist) / (fog.Far - fog.Near)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// illumination returns the (L.Color*I + L.Ambient) per-channel term, where
// I = max(0, light.Direction . normal). A nil Light is treated as full,
// unlit illumination (the term is 1 per channel).
func illumination(light *Light, normal vecmath.Vector3) RGB {
	if light == nil {
		return RGB{R: 1, G: 1, B: 1}
	}
	i := math.Max(0, light.Direction.Dot(normal))
	return RGB{
		R: light.Color.R*i + light.Ambient.R,
		G: light.Color.G*i + light.Ambient.G,
		B: light.Color.B*i + light.Ambient.B,
	}
}

// Shade computes the final 8-bit RGBA color for a texture sample at the
// given surface normal and camera distance. Alpha passes through
// unshaded. The result is the destination-clamped version of:
//
//	lit   = tex * (light.Color*I + light.Ambient)
//	final = fog.Color*(1-f) + lit*f
func Shade(light *Light, fog *Fog, normal vecmath.Vector3, texR, texG, texB, texA uint8, dist float64) (r, g, b, a uint8) {
	tex := RGB{R: float64(texR) / 255, G: float64(texG) / 255, B: float64(texB) / 255}
	lit := illumination(light, normal)
	shaded := colorful.Color{R: tex.R * lit.R, G: tex.G * lit.G, B: tex.B * lit.B}

	fogColor := RGB{}
	if fog != nil {
		fogColor = fog.Color
	}
	f := fog.Factor(dist)
	final := fogColor.BlendRgb(shaded, f).Clamped()

	return toByte(final.R), toByte(final.G), toByte(final.B), texA
}

func toByte(c float64) uint8 {
	if c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return uint8(c*255 + 0.5)
}
