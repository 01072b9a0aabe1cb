package math

import "fmt"

/**
 * @brief A plane in implicit form A*x + B*y + C*z + D = 0. (A, B, C) is a
 * unit normal only after Normalize has been applied.
 */
type Plane struct {
	A, B, C, D float32
}

// PlaneIntersectionType classifies a volume against a plane.
type PlaneIntersectionType int

const (
	// The volume is entirely on the side the normal points to.
	PlaneIntersectionFront PlaneIntersectionType = iota
	// The volume is entirely behind the plane.
	PlaneIntersectionBack
	// The volume straddles the plane.
	PlaneIntersectionIntersecting
)

func (t PlaneIntersectionType) String() string {
	switch t {
	case PlaneIntersectionFront:
		return "front"
	case PlaneIntersectionBack:
		return "back"
	case PlaneIntersectionIntersecting:
		return "intersecting"
	}
	return "unknown"
}

func NewPlane(a, b, c, d float32) Plane {
	return Plane{a, b, c, d}
}

// NewPlaneFromVec4 reads (A, B, C, D) from (X, Y, Z, W).
func NewPlaneFromVec4(v Vec4) Plane {
	return Plane{v.X, v.Y, v.Z, v.W}
}

/**
 * @brief Creates the plane through point with the given normal. The normal
 * is used as is.
 */
func NewPlaneFromPointNormal(point, normal Vec3) Plane {
	return Plane{normal.X, normal.Y, normal.Z, -normal.Dot(point)}
}

/**
 * @brief Creates the normalized plane through three points. The normal
 * follows the right-hand rule over (p1, p2, p3).
 */
func NewPlaneFromPoints(p1, p2, p3 Vec3) Plane {
	normal := p2.Sub(p1).Cross(p3.Sub(p1)).Normalize()
	return NewPlaneFromPointNormal(p1, normal)
}

// Normal returns (A, B, C).
func (p Plane) Normal() Vec3 {
	return Vec3{p.A, p.B, p.C}
}

/**
 * @brief Divides all four coefficients by the length of the normal.
 */
func (p Plane) Normalize() Plane {
	inv := 1.0 / ksqrt(p.A*p.A+p.B*p.B+p.C*p.C)
	return Plane{p.A * inv, p.B * inv, p.C * inv, p.D * inv}
}

/**
 * @brief Returns the four component dot product against a homogeneous vector.
 */
func (p Plane) Dot(v Vec4) float32 {
	return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D*v.W
}

/**
 * @brief Returns the signed distance of point from the plane (exact when the
 * plane is normalized).
 */
func (p Plane) DotCoordinate(point Vec3) float32 {
	return p.A*point.X + p.B*point.Y + p.C*point.Z + p.D
}

/**
 * @brief Returns the dot product of the plane normal with direction,
 * ignoring D.
 */
func (p Plane) DotNormal(direction Vec3) float32 {
	return p.A*direction.X + p.B*direction.Y + p.C*direction.Z
}

/**
 * @brief Re-expresses the plane in the space produced by transforming points
 * with m. The coefficients are multiplied by the inverse of m so that points
 * on the plane stay on it after v.Transform(m).
 */
func (p Plane) Transform(m Mat4) Plane {
	inv := m.Inverse().Data
	return Plane{
		p.A*inv[0] + p.B*inv[1] + p.C*inv[2] + p.D*inv[3],
		p.A*inv[4] + p.B*inv[5] + p.C*inv[6] + p.D*inv[7],
		p.A*inv[8] + p.B*inv[9] + p.C*inv[10] + p.D*inv[11],
		p.A*inv[12] + p.B*inv[13] + p.C*inv[14] + p.D*inv[15],
	}
}

/**
 * @brief Rotates the plane normal by the unit quaternion q. D is unchanged
 * since a rotation about the origin keeps the distance to it.
 */
func (p Plane) TransformQuaternion(q Quaternion) Plane {
	n := p.Normal().TransformQuaternion(q)
	return Plane{n.X, n.Y, n.Z, p.D}
}

// IntersectsBox classifies box against the plane.
func (p Plane) IntersectsBox(box BoundingBox) PlaneIntersectionType {
	positive, negative := box.Max, box.Min
	if p.A < 0 {
		positive.X, negative.X = box.Min.X, box.Max.X
	}
	if p.B < 0 {
		positive.Y, negative.Y = box.Min.Y, box.Max.Y
	}
	if p.C < 0 {
		positive.Z, negative.Z = box.Min.Z, box.Max.Z
	}

	if p.DotCoordinate(negative) > 0 {
		return PlaneIntersectionFront
	}
	if p.DotCoordinate(positive) < 0 {
		return PlaneIntersectionBack
	}
	return PlaneIntersectionIntersecting
}

// IntersectsSphere classifies sphere against the plane, which must be normalized.
func (p Plane) IntersectsSphere(sphere BoundingSphere) PlaneIntersectionType {
	distance := p.DotCoordinate(sphere.Center)
	if distance > sphere.Radius {
		return PlaneIntersectionFront
	}
	if distance < -sphere.Radius {
		return PlaneIntersectionBack
	}
	return PlaneIntersectionIntersecting
}

func (p Plane) Equals(other Plane) bool {
	return p.A == other.A && p.B == other.B && p.C == other.C && p.D == other.D
}

func (p Plane) Compare(other Plane, tolerance float32) bool {
	return Vec4{p.A, p.B, p.C, p.D}.Compare(Vec4{other.A, other.B, other.C, other.D}, tolerance)
}

func (p Plane) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", p.A, p.B, p.C, p.D)
}
