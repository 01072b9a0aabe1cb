package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/spaghettifunk/acid/engine/components"
	"github.com/spaghettifunk/acid/engine/core"
	"github.com/spaghettifunk/acid/engine/math"
)

// Config is the on-disk description of a scene, written either as TOML or,
// for files ending in .yaml or .yml, as YAML.
type Config struct {
	Log     LogConfig      `toml:"log" yaml:"log"`
	Camera  CameraConfig   `toml:"camera" yaml:"camera"`
	Objects []ObjectConfig `toml:"objects" yaml:"objects"`
}

type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

type CameraConfig struct {
	Position [3]float32 `toml:"position" yaml:"position"`
	// Pitch, yaw and roll in degrees.
	Rotation [3]float32 `toml:"rotation" yaml:"rotation"`
	// Vertical field of view in degrees.
	Fov    float32 `toml:"fov" yaml:"fov"`
	Aspect float32 `toml:"aspect" yaml:"aspect"`
	Near   float32 `toml:"near" yaml:"near"`
	Far    float32 `toml:"far" yaml:"far"`
}

type ObjectConfig struct {
	Name     string     `toml:"name" yaml:"name"`
	ID       string     `toml:"id" yaml:"id"`
	Position [3]float32 `toml:"position" yaml:"position"`
	// Yaw, pitch and roll in degrees.
	Rotation [3]float32  `toml:"rotation" yaml:"rotation"`
	Scale    *[3]float32 `toml:"scale" yaml:"scale"`
	Radius   *float32    `toml:"radius" yaml:"radius"`
	Min      *[3]float32 `toml:"min" yaml:"min"`
	Max      *[3]float32 `toml:"max" yaml:"max"`
}

// Load reads and builds the scene stored at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}
	return decode(path, data)
}

func decode(path string, data []byte) (*Scene, error) {
	parse := Parse
	if isYAML(path) {
		parse = ParseYAML
	}
	s, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading scene %s: %w", path, err)
	}
	s.Path = path
	return s, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Parse decodes a TOML scene description and builds the scene from it.
func Parse(data []byte) (*Scene, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidScene, err)
	}
	return cfg.Build()
}

// ParseYAML is Parse for YAML documents.
func ParseYAML(data []byte) (*Scene, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidScene, err)
	}
	return cfg.Build()
}

func vec3(v [3]float32) math.Vec3 {
	return math.NewVec3(v[0], v[1], v[2])
}

func (cc CameraConfig) build() (*components.Camera, error) {
	camera := components.NewCamera()

	fov, aspect, near, far := cc.Fov, cc.Aspect, cc.Near, cc.Far
	if fov == 0 {
		fov = math.RadToDeg(components.DEFAULT_CAMERA_FOV)
	}
	if aspect == 0 {
		aspect = components.DEFAULT_CAMERA_ASPECT
	}
	if near == 0 {
		near = components.DEFAULT_CAMERA_NEAR
	}
	if far == 0 {
		far = components.DEFAULT_CAMERA_FAR
	}

	if fov <= 0 || fov >= 180 {
		return nil, fmt.Errorf("%w: camera fov %v must be in (0, 180) degrees", core.ErrInvalidScene, fov)
	}
	if aspect <= 0 {
		return nil, fmt.Errorf("%w: camera aspect %v must be positive", core.ErrInvalidScene, aspect)
	}
	if near <= 0 || near >= far {
		return nil, fmt.Errorf("%w: camera clip range [%v, %v] requires 0 < near < far", core.ErrInvalidScene, near, far)
	}

	camera.SetPerspective(math.DegToRad(fov), aspect, near, far)
	camera.SetPosition(vec3(cc.Position))
	camera.SetEulerRotation(math.NewVec3(
		math.DegToRad(cc.Rotation[0]),
		math.DegToRad(cc.Rotation[1]),
		math.DegToRad(cc.Rotation[2]),
	))
	return camera, nil
}

func (oc ObjectConfig) build(index int) (*Object, error) {
	name := oc.Name
	if name == "" {
		name = fmt.Sprintf("object-%d", index)
	}

	id := uuid.New()
	if oc.ID != "" {
		parsed, err := uuid.Parse(oc.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: object %q has malformed id %q: %v", core.ErrInvalidScene, name, oc.ID, err)
		}
		id = parsed
	}

	scale := math.NewVec3One()
	if oc.Scale != nil {
		scale = vec3(*oc.Scale)
	}
	rotation := math.NewQuatFromYawPitchRoll(
		math.DegToRad(oc.Rotation[0]),
		math.DegToRad(oc.Rotation[1]),
		math.DegToRad(oc.Rotation[2]),
	)

	obj := &Object{
		ID:        id,
		Name:      name,
		Transform: math.NewTransformFrom(vec3(oc.Position), rotation, scale),
	}

	hasBox := oc.Min != nil || oc.Max != nil
	switch {
	case oc.Radius != nil && hasBox:
		return nil, fmt.Errorf("%w: object %q declares both a radius and a box", core.ErrInvalidScene, name)
	case oc.Radius != nil:
		if *oc.Radius < 0 {
			return nil, fmt.Errorf("%w: object %q has negative radius %v", core.ErrInvalidScene, name, *oc.Radius)
		}
		sphere := math.NewBoundingSphere(math.NewVec3Zero(), *oc.Radius)
		obj.Sphere = &sphere
	case hasBox:
		if oc.Min == nil || oc.Max == nil {
			return nil, fmt.Errorf("%w: object %q needs both min and max", core.ErrInvalidScene, name)
		}
		lo, hi := vec3(*oc.Min), vec3(*oc.Max)
		if lo.X > hi.X || lo.Y > hi.Y || lo.Z > hi.Z {
			return nil, fmt.Errorf("%w: object %q has min %s above max %s", core.ErrInvalidScene, name, lo, hi)
		}
		box := math.NewBoundingBox(lo, hi)
		obj.Box = &box
	default:
		return nil, fmt.Errorf("%w: object %q has no bounds", core.ErrInvalidScene, name)
	}
	return obj, nil
}

// Build validates the configuration and turns it into a scene.
func (c Config) Build() (*Scene, error) {
	camera, err := c.Camera.build()
	if err != nil {
		return nil, err
	}

	s := &Scene{
		LogLevel: core.ParseLogLevel(c.Log.Level),
		Camera:   camera,
		Objects:  make([]*Object, 0, len(c.Objects)),
	}

	seen := make(map[uuid.UUID]string, len(c.Objects))
	for i, oc := range c.Objects {
		obj, err := oc.build(i)
		if err != nil {
			return nil, err
		}
		if other, ok := seen[obj.ID]; ok {
			return nil, fmt.Errorf("%w: objects %q and %q share id %s", core.ErrInvalidScene, other, obj.Name, obj.ID)
		}
		seen[obj.ID] = obj.Name
		s.Objects = append(s.Objects, obj)
	}
	return s, nil
}
