package scene

import (
	"sync"

	"github.com/google/uuid"

	"github.com/spaghettifunk/acid/engine/components"
	"github.com/spaghettifunk/acid/engine/core"
	"github.com/spaghettifunk/acid/engine/math"
	"github.com/spaghettifunk/acid/engine/systems"
)

// Object is a named volume placed in the scene. Exactly one of Sphere and
// Box is set; both are expressed in the object's local space.
type Object struct {
	ID        uuid.UUID
	Name      string
	Transform *math.Transform
	Sphere    *math.BoundingSphere
	Box       *math.BoundingBox
}

// WorldSphere returns the object's bounds as a world space sphere.
func (o *Object) WorldSphere() math.BoundingSphere {
	world := o.Transform.GetWorld()
	if o.Sphere != nil {
		return o.Sphere.Transform(world)
	}
	return math.NewBoundingSphereFromBox(o.Box.Transform(world))
}

// WorldBox returns the object's bounds as a world space axis aligned box.
func (o *Object) WorldBox() math.BoundingBox {
	world := o.Transform.GetWorld()
	if o.Box != nil {
		return o.Box.Transform(world)
	}
	return math.NewBoundingBoxFromSphere(o.Sphere.Transform(world))
}

type Scene struct {
	Path     string
	LogLevel core.LogLevel
	Camera   *components.Camera
	Objects  []*Object
}

// Find returns the first object with the given name.
func (s *Scene) Find(name string) (*Object, bool) {
	for _, o := range s.Objects {
		if o.Name == name {
			return o, true
		}
	}
	return nil, false
}

type CullResult struct {
	Object      *Object
	Containment math.ContainmentType
}

type CullReport struct {
	Results      []CullResult
	Contained    uint32
	Intersecting uint32
	Disjoint     uint32
}

// Visible returns the objects that are at least partially inside the frustum.
func (r CullReport) Visible() []*Object {
	visible := make([]*Object, 0, len(r.Results))
	for _, res := range r.Results {
		if res.Containment != math.Disjoint {
			visible = append(visible, res.Object)
		}
	}
	return visible
}

// Cull classifies every object against the camera frustum.
func (s *Scene) Cull() CullReport {
	return s.CullWith(s.Camera.GetFrustum())
}

func (s *Scene) CullWith(frustum math.BoundingFrustum) CullReport {
	results := make([]CullResult, len(s.Objects))
	for i, o := range s.Objects {
		results[i] = CullResult{Object: o, Containment: classify(frustum, o)}
	}
	return newCullReport(results)
}

// CullParallel splits the objects into batches of batchSize and classifies
// them on the job system. Results keep the order of Objects.
func (s *Scene) CullParallel(js *systems.JobSystem, batchSize int) (CullReport, error) {
	if batchSize <= 0 {
		batchSize = 1
	}
	frustum := s.Camera.GetFrustum()
	if js == nil {
		return s.CullWith(frustum), nil
	}
	results := make([]CullResult, len(s.Objects))

	var wg sync.WaitGroup
	for start := 0; start < len(s.Objects); start += batchSize {
		end := start + batchSize
		if end > len(s.Objects) {
			end = len(s.Objects)
		}
		lo, hi := start, end
		wg.Add(1)
		err := js.Submit(systems.JobTask{
			OnStart: func() error {
				for i := lo; i < hi; i++ {
					results[i] = CullResult{Object: s.Objects[i], Containment: classify(frustum, s.Objects[i])}
				}
				return nil
			},
			OnCompletionCallback: wg.Done,
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return CullReport{}, err
		}
	}
	wg.Wait()
	return newCullReport(results), nil
}

func classify(frustum math.BoundingFrustum, o *Object) math.ContainmentType {
	if o.Sphere != nil {
		return frustum.ContainsSphere(o.WorldSphere())
	}
	return frustum.ContainsBox(o.WorldBox())
}

func newCullReport(results []CullResult) CullReport {
	report := CullReport{Results: results}
	for _, res := range results {
		switch res.Containment {
		case math.Contains:
			report.Contained++
		case math.Intersects:
			report.Intersecting++
		default:
			report.Disjoint++
		}
	}
	return report
}
