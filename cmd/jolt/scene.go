package main

import (
	"fmt"
	"os"

	jolt "github.com/PappaNiels/JoltPhysics"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Scene is the yaml description of a set of named shapes plus the queries to
// run against them.
type Scene struct {
	Shapes map[string]*ShapeConfig `yaml:"shapes"`
	Rays   []RayConfig             `yaml:"rays"`
	Casts  []CastConfig            `yaml:"casts"`
}

type ShapeConfig struct {
	Type     string  `yaml:"type"`
	UserData uint64  `yaml:"user_data"`
	Density  float32 `yaml:"density"`

	// sphere
	Radius float32 `yaml:"radius"`

	// box
	HalfExtent [3]float32 `yaml:"half_extent"`

	// rotated_translated
	Position     [3]float32   `yaml:"position"`
	RotationAxis [3]float32   `yaml:"rotation_axis"`
	RotationDeg  float32      `yaml:"rotation_deg"`
	Inner        *ShapeConfig `yaml:"inner"`
}

type RayConfig struct {
	Target    string     `yaml:"target"`
	Origin    [3]float32 `yaml:"origin"`
	Direction [3]float32 `yaml:"direction"`
}

type CastConfig struct {
	Shape     string     `yaml:"shape"`
	Target    string     `yaml:"target"`
	Start     [3]float32 `yaml:"start"`
	Direction [3]float32 `yaml:"direction"`
}

func vec3(v [3]float32) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}

func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	scene := &Scene{}
	if err := yaml.Unmarshal(data, scene); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if len(scene.Shapes) == 0 {
		return nil, fmt.Errorf("scene contains no shapes")
	}
	return scene, nil
}

// Settings converts the config into shape settings without building them, so
// construction errors surface through the usual Create path.
func (config *ShapeConfig) Settings() (jolt.ShapeSettingsInterface, error) {
	switch config.Type {
	case "sphere":
		settings := jolt.NewSphereShapeSettings(config.Radius)
		if config.Density > 0 {
			settings.Density = config.Density
		}
		settings.UserData = config.UserData
		return settings, nil

	case "box":
		settings := jolt.NewBoxShapeSettings(vec3(config.HalfExtent))
		if config.Density > 0 {
			settings.Density = config.Density
		}
		settings.UserData = config.UserData
		return settings, nil

	case "rotated_translated":
		rotation := mgl32.QuatIdent()
		if config.RotationDeg != 0 {
			axis := vec3(config.RotationAxis)
			if axis.Len() == 0 {
				return nil, fmt.Errorf("rotation_deg set but rotation_axis is zero")
			}
			rotation = mgl32.QuatRotate(mgl32.DegToRad(config.RotationDeg), axis.Normalize())
		}

		var inner jolt.ShapeSettingsInterface
		if config.Inner != nil {
			innerSettings, err := config.Inner.Settings()
			if err != nil {
				return nil, err
			}
			inner = innerSettings
		}
		settings := jolt.NewRotatedTranslatedShapeSettings(vec3(config.Position), rotation, inner)
		settings.UserData = config.UserData
		return settings, nil

	default:
		return nil, fmt.Errorf("unknown shape type: %q", config.Type)
	}
}

// Build constructs every shape in the scene. A single failing shape fails the
// whole build; the error names the shape and carries the construction message.
func (scene *Scene) Build() (map[string]jolt.ShapeInterface, error) {
	shapes := make(map[string]jolt.ShapeInterface, len(scene.Shapes))
	for name, config := range scene.Shapes {
		settings, err := config.Settings()
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", name, err)
		}
		result := settings.Create()
		if !result.IsValid() {
			return nil, fmt.Errorf("shape %q: %s", name, result.GetError())
		}
		shapes[name] = result.Get()
	}
	return shapes, nil
}
