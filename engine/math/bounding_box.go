package math

import "fmt"

/**
 * @brief An axis-aligned box. Min must be component-wise less than or
 * equal to Max.
 */
type BoundingBox struct {
	Min Vec3
	Max Vec3
}

func NewBoundingBox(min, max Vec3) BoundingBox {
	return BoundingBox{Min: min, Max: max}
}

/**
 * @brief Creates the smallest box enclosing every point. An empty slice
 * yields a degenerate box at the origin.
 */
func NewBoundingBoxFromPoints(points []Vec3) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}
	box := BoundingBox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min = box.Min.Min(p)
		box.Max = box.Max.Max(p)
	}
	return box
}

// NewBoundingBoxFromSphere creates the smallest box enclosing sphere.
func NewBoundingBoxFromSphere(sphere BoundingSphere) BoundingBox {
	r := Vec3{sphere.Radius, sphere.Radius, sphere.Radius}
	return BoundingBox{Min: sphere.Center.Sub(r), Max: sphere.Center.Add(r)}
}

func (b BoundingBox) Center() Vec3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Extents returns the half size of the box along each axis.
func (b BoundingBox) Extents() Vec3 {
	return b.Max.Sub(b.Min).MulScalar(0.5)
}

/**
 * @brief Returns the eight corners, the four on the Max.Z face first.
 */
func (b BoundingBox) Corners() [8]Vec3 {
	return [8]Vec3{
		{b.Min.X, b.Max.Y, b.Max.Z},
		{b.Max.X, b.Max.Y, b.Max.Z},
		{b.Max.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Min.Z},
	}
}

// Merge returns the smallest box enclosing both b and other.
func (b BoundingBox) Merge(other BoundingBox) BoundingBox {
	return BoundingBox{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

/**
 * @brief Transforms the corners of b by m and returns the box enclosing
 * them. Rotations grow the box.
 */
func (b BoundingBox) Transform(m Mat4) BoundingBox {
	corners := b.Corners()
	for i := range corners {
		corners[i] = corners[i].Transform(m)
	}
	return NewBoundingBoxFromPoints(corners[:])
}

// ContainsPoint reports Contains when point lies inside or on the box.
func (b BoundingBox) ContainsPoint(point Vec3) ContainmentType {
	if point.X < b.Min.X || point.X > b.Max.X ||
		point.Y < b.Min.Y || point.Y > b.Max.Y ||
		point.Z < b.Min.Z || point.Z > b.Max.Z {
		return Disjoint
	}
	return Contains
}

func (b BoundingBox) ContainsBox(other BoundingBox) ContainmentType {
	if !b.IntersectsBox(other) {
		return Disjoint
	}
	if other.Min.X >= b.Min.X && other.Max.X <= b.Max.X &&
		other.Min.Y >= b.Min.Y && other.Max.Y <= b.Max.Y &&
		other.Min.Z >= b.Min.Z && other.Max.Z <= b.Max.Z {
		return Contains
	}
	return Intersects
}

func (b BoundingBox) ContainsSphere(sphere BoundingSphere) ContainmentType {
	if !b.IntersectsSphere(sphere) {
		return Disjoint
	}
	c, r := sphere.Center, sphere.Radius
	if c.X-r >= b.Min.X && c.X+r <= b.Max.X &&
		c.Y-r >= b.Min.Y && c.Y+r <= b.Max.Y &&
		c.Z-r >= b.Min.Z && c.Z+r <= b.Max.Z {
		return Contains
	}
	return Intersects
}

// IntersectsBox reports whether the boxes overlap; touching faces count.
func (b BoundingBox) IntersectsBox(other BoundingBox) bool {
	if b.Max.X < other.Min.X || b.Min.X > other.Max.X {
		return false
	}
	if b.Max.Y < other.Min.Y || b.Min.Y > other.Max.Y {
		return false
	}
	return b.Max.Z >= other.Min.Z && b.Min.Z <= other.Max.Z
}

// IntersectsSphere tests the distance from the sphere centre to the closest
// point of the box.
func (b BoundingBox) IntersectsSphere(sphere BoundingSphere) bool {
	closest := sphere.Center.Clamp(b.Min, b.Max)
	return closest.DistanceSquared(sphere.Center) <= sphere.Radius*sphere.Radius
}

func (b BoundingBox) IntersectsPlane(plane Plane) PlaneIntersectionType {
	return plane.IntersectsBox(b)
}

func (b BoundingBox) Equals(other BoundingBox) bool {
	return b.Min.Equals(other.Min) && b.Max.Equals(other.Max)
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("{min: %v, max: %v}", b.Min, b.Max)
}
