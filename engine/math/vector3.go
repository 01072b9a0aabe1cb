package math

import "fmt"

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of the
 * supplied vec4, essentially dropping the w component.
 */
func NewVec3FromVec4(vector Vec4) Vec3 {
	return Vec3{vector.X, vector.Y, vector.Z}
}

/**
 * @brief Returns a new vec4 using v as the x, y and z components and w for w.
 */
func (v Vec3) ToVec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0f.
 */
func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.0f.
 */
func NewVec3One() Vec3 {
	return Vec3{1.0, 1.0, 1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVec3Up() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing down (0, -1, 0).
 */
func NewVec3Down() Vec3 {
	return Vec3{0.0, -1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing left (-1, 0, 0).
 */
func NewVec3Left() Vec3 {
	return Vec3{-1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing right (1, 0, 0).
 */
func NewVec3Right() Vec3 {
	return Vec3{1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing forward (0, 0, -1).
 */
func NewVec3Forward() Vec3 {
	return Vec3{0.0, 0.0, -1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing backward (0, 0, 1).
 */
func NewVec3Back() Vec3 {
	return Vec3{0.0, 0.0, 1.0}
}

/**
 * @brief Adds other to v and returns a copy of the result.
 */
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 */
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

/**
 * @brief Multiplies v by other element-wise and returns a copy of the result.
 */
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{
		v.X * other.X,
		v.Y * other.Y,
		v.Z * other.Z}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 */
func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar}
}

/**
 * @brief Divides v by other element-wise and returns a copy of the result.
 */
func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{
		v.X / other.X,
		v.Y / other.Y,
		v.Z / other.Z}
}

/**
 * @brief Divides all elements of v by scalar and returns a copy of the result.
 */
func (v Vec3) DivScalar(scalar float32) Vec3 {
	return Vec3{
		v.X / scalar,
		v.Y / scalar,
		v.Z / scalar}
}

// Negate returns v with every component sign-flipped.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec3) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns a unit length copy of v. The caller must make sure v is
 * not the zero vector, which yields NaN components.
 */
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	return Vec3{
		v.X / length,
		v.Y / length,
		v.Z / length}
}

/**
 * @brief Returns the dot product between the provided vectors. Typically used
 * to calculate the difference in direction.
 */
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

/**
 * @brief Returns the squared distance between v and other.
 */
func (v Vec3) DistanceSquared(other Vec3) float32 {
	return v.Sub(other).LengthSquared()
}

// Min returns the component-wise minimum of v and other.
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{kmin(v.X, other.X), kmin(v.Y, other.Y), kmin(v.Z, other.Z)}
}

// Max returns the component-wise maximum of v and other.
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{kmax(v.X, other.X), kmax(v.Y, other.Y), kmax(v.Z, other.Z)}
}

// Clamp restricts every component of v to [min, max], capping against max
// before flooring against min.
func (v Vec3) Clamp(min, max Vec3) Vec3 {
	return Vec3{
		clampMaxFirst(v.X, min.X, max.X),
		clampMaxFirst(v.Y, min.Y, max.Y),
		clampMaxFirst(v.Z, min.Z, max.Z)}
}

// Lerp linearly interpolates between v and other without clamping amount.
func (v Vec3) Lerp(other Vec3, amount float32) Vec3 {
	return Vec3{
		v.X + (other.X-v.X)*amount,
		v.Y + (other.Y-v.Y)*amount,
		v.Z + (other.Z-v.Z)*amount}
}

// Barycentric returns the point with barycentric coordinates (amount1, amount2)
// in the triangle (v, value2, value3).
func (v Vec3) Barycentric(value2, value3 Vec3, amount1, amount2 float32) Vec3 {
	return Vec3{
		v.X + amount1*(value2.X-v.X) + amount2*(value3.X-v.X),
		v.Y + amount1*(value2.Y-v.Y) + amount2*(value3.Y-v.Y),
		v.Z + amount1*(value2.Z-v.Z) + amount2*(value3.Z-v.Z)}
}

// SmoothStep interpolates between v and other using the cubic t²(3-2t)
// curve. amount is clamped to [0, 1] first.
func (v Vec3) SmoothStep(other Vec3, amount float32) Vec3 {
	t := Clamp(amount, 0, 1)
	t = t * t * (3.0 - 2.0*t)
	return v.Lerp(other, t)
}

/**
 * @brief Performs a Catmull-Rom interpolation between value2 and value3,
 * using v and value4 as the outer control points.
 *
 * @param value2 The second control point, returned when amount is 0.
 * @param value3 The third control point, returned when amount is 1.
 * @param value4 The fourth control point.
 * @param amount The weighting factor.
 */
func (v Vec3) CatmullRom(value2, value3, value4 Vec3, amount float32) Vec3 {
	return Vec3{
		catmullRom(v.X, value2.X, value3.X, value4.X, amount),
		catmullRom(v.Y, value2.Y, value3.Y, value4.Y, amount),
		catmullRom(v.Z, value2.Z, value3.Z, value4.Z, amount)}
}

func catmullRom(p0, p1, p2, p3, t float32) float32 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * ((2.0 * p1) +
		(-p0+p2)*t +
		(2.0*p0-5.0*p1+4.0*p2-p3)*t2 +
		(-p0+3.0*p1-3.0*p2+p3)*t3)
}

/**
 * @brief Performs a cubic Hermite interpolation from v to value2 with the
 * given tangents.
 *
 * @param tangent1 The tangent at v.
 * @param value2 The end point.
 * @param tangent2 The tangent at value2.
 * @param amount The weighting factor.
 */
func (v Vec3) Hermite(tangent1, value2, tangent2 Vec3, amount float32) Vec3 {
	t2 := amount * amount
	t3 := amount * t2
	h1 := 2.0*t3 - 3.0*t2 + 1.0
	h2 := -2.0*t3 + 3.0*t2
	h3 := t3 - 2.0*t2 + amount
	h4 := t3 - t2
	return Vec3{
		v.X*h1 + value2.X*h2 + tangent1.X*h3 + tangent2.X*h4,
		v.Y*h1 + value2.Y*h2 + tangent1.Y*h3 + tangent2.Y*h4,
		v.Z*h1 + value2.Z*h2 + tangent1.Z*h3 + tangent2.Z*h4}
}

/**
 * @brief Reflects v off the surface with the given unit normal.
 */
func (v Vec3) Reflect(normal Vec3) Vec3 {
	d := 2.0 * v.Dot(normal)
	return Vec3{
		v.X - d*normal.X,
		v.Y - d*normal.Y,
		v.Z - d*normal.Z}
}

/**
 * @brief Transform v by m. NOTE: It is assumed by this function that the
 * vector v is a point, not a direction, and is calculated as if a w component
 * with a value of 1.0f is there.
 *
 * @param m The matrix to transform by.
 * @return A transformed copy of v.
 */
func (v Vec3) Transform(m Mat4) Vec3 {
	return Vec3{
		v.X*m.Data[0] + v.Y*m.Data[4] + v.Z*m.Data[8] + m.Data[12],
		v.X*m.Data[1] + v.Y*m.Data[5] + v.Z*m.Data[9] + m.Data[13],
		v.X*m.Data[2] + v.Y*m.Data[6] + v.Z*m.Data[10] + m.Data[14]}
}

/**
 * @brief Transform v by the upper 3x3 block of m. The translation row is
 * ignored, which is what directions and normals need.
 */
func (v Vec3) TransformNormal(m Mat4) Vec3 {
	return Vec3{
		v.X*m.Data[0] + v.Y*m.Data[4] + v.Z*m.Data[8],
		v.X*m.Data[1] + v.Y*m.Data[5] + v.Z*m.Data[9],
		v.X*m.Data[2] + v.Y*m.Data[6] + v.Z*m.Data[10]}
}

/**
 * @brief Rotates v by the unit quaternion q. The result matches
 * v.Transform(NewMat4FromQuaternion(q)).
 */
func (v Vec3) TransformQuaternion(q Quaternion) Vec3 {
	r := newQuatBasis(q)
	return Vec3{
		v.X*r.m11 + v.Y*r.m21 + v.Z*r.m31,
		v.X*r.m12 + v.Y*r.m22 + v.Z*r.m32,
		v.X*r.m13 + v.Y*r.m23 + v.Z*r.m33}
}

/**
 * @brief Reports whether every component of v equals the one in other exactly.
 */
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}

	if kabs(v.Y-other.Y) > tolerance {
		return false
	}

	if kabs(v.Z-other.Z) > tolerance {
		return false
	}

	return true
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}
