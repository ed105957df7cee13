package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML scene file from path via yaml.v3 — SceneConfig's
// `yaml:"..."` tags are what drive this decode — then layers RAYCASTER_*
// environment variable overrides for the camera pose on top (e.g.
// RAYCASTER_CAMERA_ANGLE overrides camera.angle).
func Load(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: reading scene file %q", path)
	}

	sc := Default()
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, errors.Wrapf(err, "config: decoding scene file %q", path)
	}

	applyCameraEnvOverrides(&sc.Camera)
	return sc, nil
}

// applyCameraEnvOverrides overrides a decoded camera pose with any
// RAYCASTER_CAMERA_* environment variable that is actually set, leaving
// everything else from the YAML file untouched.
func applyCameraEnvOverrides(cc *CameraConfig) {
	v := viper.New()
	v.SetEnvPrefix("RAYCASTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, dst := range map[string]*float64{
		"camera.x":      &cc.X,
		"camera.y":      &cc.Y,
		"camera.angle":  &cc.Angle,
		"camera.aspect": &cc.Aspect,
	} {
		if v.IsSet(key) {
			*dst = v.GetFloat64(key)
		}
	}
}
