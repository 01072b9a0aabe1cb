package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/acid/engine/components"
	"github.com/spaghettifunk/acid/engine/core"
	"github.com/spaghettifunk/acid/engine/math"
)

const sampleScene = `
[log]
level = "debug"

[camera]
position = [0.0, 0.0, 0.0]
fov = 90.0
aspect = 1.0
near = 1.0
far = 100.0

[[objects]]
name = "inside"
id = "6f1c2a4e-8f0b-4a53-9d1e-2b7c5e9a0f11"
position = [0.0, 0.0, -10.0]
radius = 1.0

[[objects]]
name = "edge"
position = [10.0, 0.0, -10.0]
min = [-1.0, -1.0, -1.0]
max = [1.0, 1.0, 1.0]

[[objects]]
name = "behind"
position = [0.0, 0.0, 10.0]
radius = 1.0
`

func TestParseScene(t *testing.T) {
	s, err := Parse([]byte(sampleScene))
	require.NoError(t, err)

	require.Equal(t, core.DebugLevel, s.LogLevel)
	require.Len(t, s.Objects, 3)
	require.InDelta(t, math.K_HALF_PI, s.Camera.Fov, 1e-6)
	require.Equal(t, float32(1), s.Camera.AspectRatio)
	require.Equal(t, float32(1), s.Camera.NearClip)
	require.Equal(t, float32(100), s.Camera.FarClip)

	inside, ok := s.Find("inside")
	require.True(t, ok)
	require.Equal(t, uuid.MustParse("6f1c2a4e-8f0b-4a53-9d1e-2b7c5e9a0f11"), inside.ID)
	require.NotNil(t, inside.Sphere)
	require.Nil(t, inside.Box)

	edge, ok := s.Find("edge")
	require.True(t, ok)
	require.NotEqual(t, uuid.Nil, edge.ID)
	require.NotNil(t, edge.Box)
	require.True(t, edge.WorldBox().Center().Equals(math.NewVec3(10, 0, -10)))

	_, ok = s.Find("missing")
	require.False(t, ok)
}

func TestParseSceneDefaults(t *testing.T) {
	s, err := Parse([]byte(`
[[objects]]
radius = 2.0
`))
	require.NoError(t, err)

	require.Equal(t, core.InfoLevel, s.LogLevel)
	require.InDelta(t, components.DEFAULT_CAMERA_FOV, s.Camera.Fov, 1e-6)
	require.Equal(t, components.DEFAULT_CAMERA_ASPECT, s.Camera.AspectRatio)
	require.Equal(t, components.DEFAULT_CAMERA_NEAR, s.Camera.NearClip)
	require.Equal(t, components.DEFAULT_CAMERA_FAR, s.Camera.FarClip)

	require.Len(t, s.Objects, 1)
	obj := s.Objects[0]
	require.Equal(t, "object-0", obj.Name)
	require.NotEqual(t, uuid.Nil, obj.ID)
	require.True(t, obj.Transform.Scale.Equals(math.NewVec3One()))
	require.Equal(t, float32(2), obj.WorldSphere().Radius)
}

func TestParseSceneRotatedBox(t *testing.T) {
	s, err := Parse([]byte(`
[[objects]]
name = "beam"
rotation = [90.0, 0.0, 0.0]
min = [-1.0, -1.0, -2.0]
max = [1.0, 1.0, 2.0]
`))
	require.NoError(t, err)

	box := s.Objects[0].WorldBox()
	require.True(t, box.Min.Compare(math.NewVec3(-2, -1, -1), 1e-5))
	require.True(t, box.Max.Compare(math.NewVec3(2, 1, 1), 1e-5))
}

func TestParseSceneErrors(t *testing.T) {
	cases := map[string]string{
		"malformed toml":  "[camera",
		"fov too wide":    "[camera]\nfov = 180.0\n",
		"negative fov":    "[camera]\nfov = -10.0\n",
		"negative aspect": "[camera]\naspect = -1.0\n",
		"near past far":   "[camera]\nnear = 10.0\nfar = 5.0\n",
		"negative radius": "[[objects]]\nradius = -1.0\n",
		"radius and box":  "[[objects]]\nradius = 1.0\nmin = [0.0, 0.0, 0.0]\nmax = [1.0, 1.0, 1.0]\n",
		"min only":        "[[objects]]\nmin = [0.0, 0.0, 0.0]\n",
		"inverted box":    "[[objects]]\nmin = [1.0, 0.0, 0.0]\nmax = [0.0, 1.0, 1.0]\n",
		"no bounds":       "[[objects]]\nname = \"ghost\"\n",
		"malformed id":    "[[objects]]\nid = \"not-a-uuid\"\nradius = 1.0\n",
		"duplicate id": `
[[objects]]
id = "6f1c2a4e-8f0b-4a53-9d1e-2b7c5e9a0f11"
radius = 1.0

[[objects]]
id = "6f1c2a4e-8f0b-4a53-9d1e-2b7c5e9a0f11"
radius = 2.0
`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			require.ErrorIs(t, err, core.ErrInvalidScene)
		})
	}
}

func TestLoadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleScene), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, path, s.Path)
	require.Len(t, s.Objects, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

const sampleYAML = `
log:
  level: warn
camera:
  fov: 90
  aspect: 1
  near: 1
  far: 100
objects:
  - name: inside
    position: [0, 0, -10]
    radius: 1
  - name: edge
    position: [10, 0, -10]
    min: [-1, -1, -1]
    max: [1, 1, 1]
`

func TestParseSceneYAML(t *testing.T) {
	s, err := ParseYAML([]byte(sampleYAML))
	require.NoError(t, err)
	require.Equal(t, core.WarnLevel, s.LogLevel)
	require.Len(t, s.Objects, 2)
	require.Equal(t, float32(100), s.Camera.FarClip)

	edge, ok := s.Find("edge")
	require.True(t, ok)
	require.True(t, edge.Box.Max.Equals(math.NewVec3One()))

	_, err = ParseYAML([]byte("objects: [radius"))
	require.ErrorIs(t, err, core.ErrInvalidScene)
}

func TestLoadSceneYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Len(t, s.Objects, 2)
}
