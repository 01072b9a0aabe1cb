package math

/**
 * @brief Indices of the six clipping planes held by a BoundingFrustum.
 */
const (
	FrustumNear = iota
	FrustumFar
	FrustumLeft
	FrustumRight
	FrustumTop
	FrustumBottom
)

/**
 * @brief The volume visible through a view-projection matrix, bounded by
 * six normalized planes whose normals point into the volume. A point is
 * inside when its signed distance to every plane is non-negative.
 *
 * Projections are expected to map depth to [0, 1], as the projection
 * builders in this package do.
 */
type BoundingFrustum struct {
	matrix Mat4
	planes [6]Plane
}

/**
 * @brief Extracts the clipping planes from view_projection (Gribb-Hartmann).
 * With row vectors the clip coordinates are dot products against the
 * matrix columns.
 */
func NewBoundingFrustum(view_projection Mat4) BoundingFrustum {
	d := view_projection.Data
	col := func(c int) Vec4 {
		return Vec4{d[c], d[4+c], d[8+c], d[12+c]}
	}
	c1, c2, c3, c4 := col(0), col(1), col(2), col(3)

	f := BoundingFrustum{matrix: view_projection}
	f.planes[FrustumNear] = NewPlaneFromVec4(c3)
	f.planes[FrustumFar] = NewPlaneFromVec4(c4.Sub(c3))
	f.planes[FrustumLeft] = NewPlaneFromVec4(c4.Add(c1))
	f.planes[FrustumRight] = NewPlaneFromVec4(c4.Sub(c1))
	f.planes[FrustumTop] = NewPlaneFromVec4(c4.Sub(c2))
	f.planes[FrustumBottom] = NewPlaneFromVec4(c4.Add(c2))
	for i := range f.planes {
		f.planes[i] = f.planes[i].Normalize()
	}
	return f
}

// Matrix returns the view-projection the frustum was built from.
func (f BoundingFrustum) Matrix() Mat4 { return f.matrix }

func (f BoundingFrustum) Planes() [6]Plane { return f.planes }

func (f BoundingFrustum) Near() Plane   { return f.planes[FrustumNear] }
func (f BoundingFrustum) Far() Plane    { return f.planes[FrustumFar] }
func (f BoundingFrustum) Left() Plane   { return f.planes[FrustumLeft] }
func (f BoundingFrustum) Right() Plane  { return f.planes[FrustumRight] }
func (f BoundingFrustum) Top() Plane    { return f.planes[FrustumTop] }
func (f BoundingFrustum) Bottom() Plane { return f.planes[FrustumBottom] }

/**
 * @brief Returns the eight corners in world space: near top-left, near
 * top-right, near bottom-right, near bottom-left, then the same on the far
 * plane.
 */
func (f BoundingFrustum) Corners() [8]Vec3 {
	inv := f.matrix.Inverse()
	ndc := [8]Vec4{
		{-1, 1, 0, 1}, {1, 1, 0, 1}, {1, -1, 0, 1}, {-1, -1, 0, 1},
		{-1, 1, 1, 1}, {1, 1, 1, 1}, {1, -1, 1, 1}, {-1, -1, 1, 1},
	}
	var corners [8]Vec3
	for i, p := range ndc {
		w := p.Transform(inv)
		corners[i] = w.ToVec3().DivScalar(w.W)
	}
	return corners
}

func (f BoundingFrustum) ContainsPoint(point Vec3) ContainmentType {
	for _, p := range f.planes {
		if p.DotCoordinate(point) < 0 {
			return Disjoint
		}
	}
	return Contains
}

/**
 * @brief Classifies box with the six-plane test. A box lying just outside a
 * frustum corner may be reported as Intersects.
 */
func (f BoundingFrustum) ContainsBox(box BoundingBox) ContainmentType {
	result := Contains
	for _, p := range f.planes {
		switch p.IntersectsBox(box) {
		case PlaneIntersectionBack:
			return Disjoint
		case PlaneIntersectionIntersecting:
			result = Intersects
		}
	}
	return result
}

func (f BoundingFrustum) ContainsSphere(sphere BoundingSphere) ContainmentType {
	result := Contains
	for _, p := range f.planes {
		switch p.IntersectsSphere(sphere) {
		case PlaneIntersectionBack:
			return Disjoint
		case PlaneIntersectionIntersecting:
			result = Intersects
		}
	}
	return result
}

func (f BoundingFrustum) IntersectsBox(box BoundingBox) bool {
	return f.ContainsBox(box) != Disjoint
}

func (f BoundingFrustum) IntersectsSphere(sphere BoundingSphere) bool {
	return f.ContainsSphere(sphere) != Disjoint
}
