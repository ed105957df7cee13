// Package config loads a declarative scene description — tilemap,
// camera pose, light, fog, and billboard placements — from YAML, and
// converts it into the domain types the raycaster package consumes.
package config

import (
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/gophercraft/raycast2d/internal/rlog"
	"github.com/gophercraft/raycast2d/pkg/billboard"
	"github.com/gophercraft/raycast2d/pkg/camera"
	"github.com/gophercraft/raycast2d/pkg/shading"
	"github.com/gophercraft/raycast2d/pkg/texture"
	"github.com/gophercraft/raycast2d/pkg/tilemap"
	"github.com/gophercraft/raycast2d/pkg/vecmath"
)

// SceneConfig is the YAML-serializable description of one scene.
type SceneConfig struct {
	Tilemap    TilemapConfig     `yaml:"tilemap"`
	Camera     CameraConfig      `yaml:"camera"`
	Light      *LightConfig      `yaml:"light,omitempty"`
	Fog        *FogConfig        `yaml:"fog,omitempty"`
	Billboards []BillboardConfig `yaml:"billboards,omitempty"`
}

type TilemapConfig struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Cells  []int `yaml:"cells"`
}

type CameraConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Angle  float64 `yaml:"angle"`
	Aspect float64 `yaml:"aspect"`
}

type LightConfig struct {
	Direction Vec3Config  `yaml:"direction"`
	Color     ColorConfig `yaml:"color"`
	Ambient   ColorConfig `yaml:"ambient"`
}

type FogConfig struct {
	Near  float64     `yaml:"near"`
	Far   float64     `yaml:"far"`
	Color ColorConfig `yaml:"color"`
}

// BillboardConfig places one sprite. TextureIndices names positions in
// the caller-supplied texture atlas passed to Build — asset decoding
// itself stays out of this module's scope.
type BillboardConfig struct {
	X              float64 `yaml:"x"`
	Y              float64 `yaml:"y"`
	ScaleX         float64 `yaml:"scale_x"`
	ScaleY         float64 `yaml:"scale_y"`
	VOffset        float64 `yaml:"v_offset"`
	Angle          float64 `yaml:"angle"`
	TextureIndices []int   `yaml:"texture_indices"`
}

// Vec3Config and ColorConfig share their field names with
// vecmath.Vector3 and colorful.Color respectively, so copier.Copy can
// convert between them without per-field glue code.
type Vec3Config struct {
	X, Y, Z float64
}

type ColorConfig struct {
	R, G, B float64
}

// Default returns a minimal, renderable SceneConfig: an empty bordered
// 8x8 room, a camera at its center looking along -Y, no light, no fog,
// and no billboards.
func Default() *SceneConfig {
	cells := make([]int, 64)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x == 0 || y == 0 || x == 7 || y == 7 {
				cells[8*y+x] = 1
			}
		}
	}
	return &SceneConfig{
		Tilemap: TilemapConfig{Width: 8, Height: 8, Cells: cells},
		Camera:  CameraConfig{X: 4, Y: 4, Angle: 0, Aspect: 16.0 / 9.0},
	}
}

// Build validates sc and converts it into the domain objects a Raycaster
// consumes. textures is the caller's decoded wall/billboard texture
// atlas; BillboardConfig.TextureIndices and wall cell codes index into
// it directly (wall texture index = cell code - 1, as in pkg/tilemap).
func (sc *SceneConfig) Build(textures []*texture.Texture) (*tilemap.Tilemap, []*billboard.Billboard, *shading.Light, *shading.Fog, *camera.Camera, error) {
	if sc.Tilemap.Width <= 0 || sc.Tilemap.Height <= 0 {
		return nil, nil, nil, nil, nil, errors.Errorf("config: tilemap dimensions must be positive, got %dx%d", sc.Tilemap.Width, sc.Tilemap.Height)
	}
	if len(sc.Tilemap.Cells) != sc.Tilemap.Width*sc.Tilemap.Height {
		return nil, nil, nil, nil, nil, errors.Errorf("config: tilemap has %d cells, want %d (%dx%d)",
			len(sc.Tilemap.Cells), sc.Tilemap.Width*sc.Tilemap.Height, sc.Tilemap.Width, sc.Tilemap.Height)
	}
	for i, c := range sc.Tilemap.Cells {
		if c > 0 && c-1 >= len(textures) {
			return nil, nil, nil, nil, nil, errors.Errorf("config: cell %d references texture index %d, but only %d textures were supplied", i, c-1, len(textures))
		}
	}

	tm := tilemap.New(sc.Tilemap.Width, sc.Tilemap.Height, append([]int(nil), sc.Tilemap.Cells...))

	cam := camera.New(sc.Camera.X, sc.Camera.Y, sc.Camera.Angle, sc.Camera.Aspect)

	var light *shading.Light
	if sc.Light != nil {
		light = &shading.Light{}
		if err := copier.Copy(&light.Direction, &sc.Light.Direction); err != nil {
			return nil, nil, nil, nil, nil, errors.Wrap(err, "config: copying light direction")
		}
		if err := copier.Copy(&light.Color, &sc.Light.Color); err != nil {
			return nil, nil, nil, nil, nil, errors.Wrap(err, "config: copying light color")
		}
		if err := copier.Copy(&light.Ambient, &sc.Light.Ambient); err != nil {
			return nil, nil, nil, nil, nil, errors.Wrap(err, "config: copying light ambient")
		}
	}

	var fog *shading.Fog
	if sc.Fog != nil {
		if sc.Fog.Near >= sc.Fog.Far {
			return nil, nil, nil, nil, nil, errors.Errorf("config: fog.near (%v) must be less than fog.far (%v)", sc.Fog.Near, sc.Fog.Far)
		}
		fog = &shading.Fog{Near: sc.Fog.Near, Far: sc.Fog.Far}
		if err := copier.Copy(&fog.Color, &sc.Fog.Color); err != nil {
			return nil, nil, nil, nil, nil, errors.Wrap(err, "config: copying fog color")
		}
	}

	billboards := make([]*billboard.Billboard, 0, len(sc.Billboards))
	for i, bc := range sc.Billboards {
		if len(bc.TextureIndices) == 0 {
			return nil, nil, nil, nil, nil, errors.Errorf("config: billboard %d has no texture_indices", i)
		}
		bbTextures := make([]*texture.Texture, len(bc.TextureIndices))
		for j, ti := range bc.TextureIndices {
			if ti < 0 || ti >= len(textures) {
				return nil, nil, nil, nil, nil, errors.Errorf("config: billboard %d texture_indices[%d]=%d out of range (have %d textures)", i, j, ti, len(textures))
			}
			bbTextures[j] = textures[ti]
		}

		bb := &billboard.Billboard{
			Position: vecmath.Vector2{X: bc.X, Y: bc.Y},
			Scale:    vecmath.Vector2{X: bc.ScaleX, Y: bc.ScaleY},
			VOffset:  bc.VOffset,
			Angle:    bc.Angle,
			Textures: bbTextures,
		}
		billboards = append(billboards, bb)
	}

	if len(billboards) == 0 {
		rlog.WarnScene("scene has no billboards")
	}
	if sc.Camera.Aspect <= 0 {
		rlog.WarnScene("scene camera has a degenerate aspect ratio", zap.Float64("aspect", sc.Camera.Aspect))
	}

	return tm, billboards, light, fog, cam, nil
}
