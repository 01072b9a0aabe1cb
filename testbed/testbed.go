package testbed

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spaghettifunk/acid/engine/containers"
	"github.com/spaghettifunk/acid/engine/core"
	"github.com/spaghettifunk/acid/engine/math"
	"github.com/spaghettifunk/acid/engine/scene"
	"github.com/spaghettifunk/acid/engine/systems"
)

const (
	HISTORY_SIZE     int = 16
	CULL_BATCH_SIZE  int = 64
	JOB_QUEUE_LENGTH int = 32
)

type testbedState struct {
	scene   *scene.Scene
	clock   *core.Clock
	metrics *core.MetricsState
	jobs    *systems.JobSystem
	history *containers.RingQueue[scene.CullReport]
	passes  uint32
	// events is set when this testbed brought the event system up.
	events bool
}

// Testbed loads a scene file, culls it against its camera and reports the
// result through the logger.
type Testbed struct {
	path  string
	state *testbedState
}

func NewTestbed(path string) *Testbed {
	return &Testbed{
		path: path,
		state: &testbedState{
			clock:   core.NewClock(),
			metrics: core.NewMetrics(),
			history: containers.NewRingQueue[scene.CullReport](HISTORY_SIZE),
		},
	}
}

// Run loads the scene at path and logs a culling report. With watch set it
// keeps reloading the scene on every change until ctx is cancelled.
func Run(ctx context.Context, path string, watch bool) error {
	tb := NewTestbed(path)
	if err := tb.Initialize(); err != nil {
		return err
	}
	defer tb.Shutdown()

	if !watch {
		return nil
	}
	return tb.Watch(ctx)
}

func (tb *Testbed) Initialize() error {
	jobs, err := systems.NewJobSystem(runtime.NumCPU(), JOB_QUEUE_LENGTH)
	if err != nil {
		return err
	}
	tb.state.jobs = jobs

	tb.state.events = core.EventInitialize()
	core.EventRegister(core.EVENT_CODE_SCENE_LOADED, tb, tb.onSceneEvent)
	core.EventRegister(core.EVENT_CODE_SCENE_RELOADED, tb, tb.onSceneEvent)
	core.EventRegister(core.EVENT_CODE_CULL_COMPLETED, tb, tb.onCullCompleted)

	s, err := scene.Load(tb.path)
	if err != nil {
		tb.Shutdown()
		return err
	}
	tb.fireScene(core.EVENT_CODE_SCENE_LOADED, s)
	return nil
}

func (tb *Testbed) Shutdown() {
	core.EventUnregister(core.EVENT_CODE_SCENE_LOADED, tb)
	core.EventUnregister(core.EVENT_CODE_SCENE_RELOADED, tb)
	core.EventUnregister(core.EVENT_CODE_CULL_COMPLETED, tb)
	if tb.state.jobs != nil {
		if err := tb.state.jobs.Shutdown(); err != nil {
			core.LogWarn("job system shutdown: %s", err)
		}
		tb.state.jobs = nil
	}
	if tb.state.events {
		core.EventShutdown()
		tb.state.events = false
	}
}

// History returns the latest culling reports, oldest first.
func (tb *Testbed) History() []scene.CullReport {
	return tb.state.history.Items()
}

// Scene returns the scene that was loaded last.
func (tb *Testbed) Scene() *scene.Scene {
	return tb.state.scene
}

func (tb *Testbed) Passes() uint32 {
	return tb.state.passes
}

func (tb *Testbed) Watch(ctx context.Context) error {
	watcher, err := scene.NewWatcher(tb.path)
	if err != nil {
		return fmt.Errorf("watching %s: %w", tb.path, err)
	}
	defer watcher.Close()

	core.LogInfo("watching %s for changes", watcher.Path())
	for {
		select {
		case <-ctx.Done():
			core.LogInfo("stopped watching %s", watcher.Path())
			return nil
		case s, ok := <-watcher.Scenes():
			if !ok {
				return nil
			}
			tb.fireScene(core.EVENT_CODE_SCENE_RELOADED, s)
		case err, ok := <-watcher.Errors():
			if !ok {
				return nil
			}
			// A broken edit keeps the previous scene alive.
			core.LogWarn("scene reload failed: %s", err)
		}
	}
}

func (tb *Testbed) fireScene(code core.SystemEventCode, s *scene.Scene) {
	ctx := core.EventContext{Payload: s}
	ctx.Data.C[0] = s.Path
	core.EventFire(code, tb, ctx)
}

func (tb *Testbed) onSceneEvent(code core.SystemEventCode, sender interface{}, listener interface{}, data core.EventContext) bool {
	s, ok := data.Payload.(*scene.Scene)
	if !ok {
		return false
	}
	tb.state.scene = s
	core.SetLogLevel(s.LogLevel)
	if code == core.EVENT_CODE_SCENE_RELOADED {
		core.LogInfo("reloaded scene %s with %d objects", data.Data.C[0], len(s.Objects))
	} else {
		core.LogInfo("loaded scene %s with %d objects", data.Data.C[0], len(s.Objects))
	}
	tb.cull()
	return true
}

func (tb *Testbed) cull() {
	tb.state.clock.Start()
	report, err := tb.state.scene.CullParallel(tb.state.jobs, CULL_BATCH_SIZE)
	if err != nil {
		core.LogWarn("parallel culling unavailable, culling inline: %s", err)
		report = tb.state.scene.Cull()
	}
	tb.state.clock.Update()
	tb.state.clock.Stop()
	tb.state.metrics.Update(tb.state.clock.Elapsed())
	tb.state.history.Push(report)
	tb.state.passes++

	for _, res := range report.Results {
		center := res.Object.WorldSphere().Center
		core.LogDebug("%s [%s] at %s: %s", res.Object.Name, res.Object.ID, center, res.Containment)
	}

	ctx := core.EventContext{Payload: report}
	ctx.Data.U32[0] = report.Contained
	ctx.Data.U32[1] = report.Intersecting
	ctx.Data.U32[2] = report.Disjoint
	ctx.Data.F32[0] = float32(tb.state.clock.Elapsed().Seconds() * 1000.0)
	core.EventFire(core.EVENT_CODE_CULL_COMPLETED, tb, ctx)
}

func (tb *Testbed) onCullCompleted(code core.SystemEventCode, sender interface{}, listener interface{}, data core.EventContext) bool {
	camera := tb.state.scene.Camera
	core.LogInfo("culled from %s looking %s: %d inside, %d intersecting, %d outside (%.3fms, avg %.3fms)",
		camera.GetPosition(), camera.Forward(),
		data.Data.U32[0], data.Data.U32[1], data.Data.U32[2],
		data.Data.F32[0], tb.state.metrics.FrameTime())
	if data.Data.U32[0]+data.Data.U32[1] == 0 {
		core.LogWarn("no object is visible, camera frustum corners: %v", frustumCorners(camera.GetFrustum()))
	}
	return true
}

func frustumCorners(f math.BoundingFrustum) []string {
	corners := f.Corners()
	out := make([]string, 0, len(corners))
	for _, c := range corners {
		out = append(out, c.String())
	}
	return out
}
