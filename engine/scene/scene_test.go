package scene

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/acid/engine/math"
	"github.com/spaghettifunk/acid/engine/systems"
)

func TestCull(t *testing.T) {
	s, err := Parse([]byte(sampleScene))
	require.NoError(t, err)

	report := s.Cull()
	require.Len(t, report.Results, 3)
	require.Equal(t, uint32(1), report.Contained)
	require.Equal(t, uint32(1), report.Intersecting)
	require.Equal(t, uint32(1), report.Disjoint)

	require.Equal(t, math.Contains, report.Results[0].Containment)
	require.Equal(t, math.Intersects, report.Results[1].Containment)
	require.Equal(t, math.Disjoint, report.Results[2].Containment)

	visible := report.Visible()
	require.Len(t, visible, 2)
	require.Equal(t, "inside", visible[0].Name)
	require.Equal(t, "edge", visible[1].Name)
}

func TestCullFollowsCamera(t *testing.T) {
	s, err := Parse([]byte(sampleScene))
	require.NoError(t, err)

	// Turned around, only the object behind the origin is in view.
	s.Camera.Yaw(math.K_PI)
	report := s.Cull()
	require.Equal(t, uint32(1), report.Contained)
	require.Equal(t, uint32(0), report.Intersecting)
	require.Equal(t, math.Contains, report.Results[2].Containment)
}

func TestCullParallelMatchesCull(t *testing.T) {
	var data string
	for i := 0; i < 50; i++ {
		data += fmt.Sprintf("[[objects]]\nposition = [%d.0, 0.0, -20.0]\nradius = 1.0\n\n", i-25)
	}
	data += "[camera]\nfov = 90.0\naspect = 1.0\nnear = 1.0\nfar = 100.0\n"

	s, err := Parse([]byte(data))
	require.NoError(t, err)

	js, err := systems.NewJobSystem(4, 4)
	require.NoError(t, err)
	defer js.Shutdown()

	expected := s.Cull()
	for _, batch := range []int{0, 1, 7, 64} {
		report, err := s.CullParallel(js, batch)
		require.NoError(t, err)
		require.Equal(t, expected, report)
	}

	report, err := s.CullParallel(nil, 8)
	require.NoError(t, err)
	require.Equal(t, expected, report)
}

func TestCullParallelClosedJobSystem(t *testing.T) {
	s, err := Parse([]byte(sampleScene))
	require.NoError(t, err)

	js, err := systems.NewJobSystem(1, 1)
	require.NoError(t, err)
	require.NoError(t, js.Shutdown())

	_, err = s.CullParallel(js, 1)
	require.ErrorIs(t, err, systems.ErrJobSystemClosed)
}
