package math

import "fmt"

// BoundingSphere is a sphere with a non-negative radius.
type BoundingSphere struct {
	Center Vec3
	Radius float32
}

func NewBoundingSphere(center Vec3, radius float32) BoundingSphere {
	return BoundingSphere{Center: center, Radius: radius}
}

/**
 * @brief Creates a sphere enclosing every point, centred on their bounding
 * box. The result is not guaranteed to be minimal.
 */
func NewBoundingSphereFromPoints(points []Vec3) BoundingSphere {
	if len(points) == 0 {
		return BoundingSphere{}
	}
	center := NewBoundingBoxFromPoints(points).Center()
	var radiusSquared float32
	for _, p := range points {
		radiusSquared = kmax(radiusSquared, p.DistanceSquared(center))
	}
	return BoundingSphere{Center: center, Radius: ksqrt(radiusSquared)}
}

// NewBoundingSphereFromBox creates the sphere passing through box's corners.
func NewBoundingSphereFromBox(box BoundingBox) BoundingSphere {
	return BoundingSphere{Center: box.Center(), Radius: box.Extents().Length()}
}

// Merge returns the smallest sphere enclosing both s and other.
func (s BoundingSphere) Merge(other BoundingSphere) BoundingSphere {
	offset := other.Center.Sub(s.Center)
	distance := offset.Length()
	if distance+other.Radius <= s.Radius {
		return s
	}
	if distance+s.Radius <= other.Radius {
		return other
	}
	radius := (distance + s.Radius + other.Radius) * 0.5
	center := s.Center.Add(offset.MulScalar((radius - s.Radius) / distance))
	return BoundingSphere{Center: center, Radius: radius}
}

/**
 * @brief Transforms the centre by m and scales the radius by the largest
 * axis scale found in m's upper 3x3 rows.
 */
func (s BoundingSphere) Transform(m Mat4) BoundingSphere {
	d := m.Data
	sx := d[0]*d[0] + d[1]*d[1] + d[2]*d[2]
	sy := d[4]*d[4] + d[5]*d[5] + d[6]*d[6]
	sz := d[8]*d[8] + d[9]*d[9] + d[10]*d[10]
	scale := ksqrt(kmax(sx, kmax(sy, sz)))
	return BoundingSphere{Center: s.Center.Transform(m), Radius: s.Radius * scale}
}

func (s BoundingSphere) ContainsPoint(point Vec3) ContainmentType {
	if point.DistanceSquared(s.Center) <= s.Radius*s.Radius {
		return Contains
	}
	return Disjoint
}

func (s BoundingSphere) ContainsBox(box BoundingBox) ContainmentType {
	if !box.IntersectsSphere(s) {
		return Disjoint
	}
	for _, corner := range box.Corners() {
		if s.ContainsPoint(corner) == Disjoint {
			return Intersects
		}
	}
	return Contains
}

func (s BoundingSphere) ContainsSphere(other BoundingSphere) ContainmentType {
	distance := s.Center.Distance(other.Center)
	if distance > s.Radius+other.Radius {
		return Disjoint
	}
	if distance+other.Radius <= s.Radius {
		return Contains
	}
	return Intersects
}

func (s BoundingSphere) IntersectsBox(box BoundingBox) bool {
	return box.IntersectsSphere(s)
}

func (s BoundingSphere) IntersectsSphere(other BoundingSphere) bool {
	r := s.Radius + other.Radius
	return s.Center.DistanceSquared(other.Center) <= r*r
}

func (s BoundingSphere) IntersectsPlane(plane Plane) PlaneIntersectionType {
	return plane.IntersectsSphere(s)
}

func (s BoundingSphere) Equals(other BoundingSphere) bool {
	return s.Center.Equals(other.Center) && s.Radius == other.Radius
}

func (s BoundingSphere) String() string {
	return fmt.Sprintf("{center: %v, radius: %v}", s.Center, s.Radius)
}
