package math

import "fmt"

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @param w The w value.
 * @return A new 4-element vector.
 */
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of the
 * supplied vec4, essentially dropping the w component.
 */
func (v Vec4) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

/**
 * @brief Returns a new vec4 using vector as the x, y and z components and w for w.
 */
func NewVec4FromVec3(v Vec3, w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 0.0f.
 */
func NewVec4Zero() Vec4 {
	return Vec4{0.0, 0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 1.0f.
 */
func NewVec4One() Vec4 {
	return Vec4{1.0, 1.0, 1.0, 1.0}
}

func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
		W: v.W + other.W,
	}
}

func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
		W: v.W - other.W,
	}
}

// Mul multiplies element-wise.
func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
		W: v.W * other.W,
	}
}

func (v Vec4) MulScalar(scalar float32) Vec4 {
	return Vec4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

// Div divides element-wise.
func (v Vec4) Div(other Vec4) Vec4 {
	return Vec4{
		X: v.X / other.X,
		Y: v.Y / other.Y,
		Z: v.Z / other.Z,
		W: v.W / other.W,
	}
}

func (v Vec4) DivScalar(scalar float32) Vec4 {
	return Vec4{v.X / scalar, v.Y / scalar, v.Z / scalar, v.W / scalar}
}

func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

func (v Vec4) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

func (v Vec4) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns a unit length copy of v. A zero vector yields NaN components.
 */
func (v Vec4) Normalize() Vec4 {
	length := v.Length()
	return Vec4{
		v.X / length,
		v.Y / length,
		v.Z / length,
		v.W / length}
}

func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vec4) Distance(other Vec4) float32 {
	return v.Sub(other).Length()
}

func (v Vec4) Min(other Vec4) Vec4 {
	return Vec4{kmin(v.X, other.X), kmin(v.Y, other.Y), kmin(v.Z, other.Z), kmin(v.W, other.W)}
}

func (v Vec4) Max(other Vec4) Vec4 {
	return Vec4{kmax(v.X, other.X), kmax(v.Y, other.Y), kmax(v.Z, other.Z), kmax(v.W, other.W)}
}

func (v Vec4) Clamp(min, max Vec4) Vec4 {
	return Vec4{
		clampMaxFirst(v.X, min.X, max.X),
		clampMaxFirst(v.Y, min.Y, max.Y),
		clampMaxFirst(v.Z, min.Z, max.Z),
		clampMaxFirst(v.W, min.W, max.W)}
}

func (v Vec4) Lerp(other Vec4, amount float32) Vec4 {
	return Vec4{
		v.X + (other.X-v.X)*amount,
		v.Y + (other.Y-v.Y)*amount,
		v.Z + (other.Z-v.Z)*amount,
		v.W + (other.W-v.W)*amount}
}

func (v Vec4) Barycentric(value2, value3 Vec4, amount1, amount2 float32) Vec4 {
	return Vec4{
		v.X + amount1*(value2.X-v.X) + amount2*(value3.X-v.X),
		v.Y + amount1*(value2.Y-v.Y) + amount2*(value3.Y-v.Y),
		v.Z + amount1*(value2.Z-v.Z) + amount2*(value3.Z-v.Z),
		v.W + amount1*(value2.W-v.W) + amount2*(value3.W-v.W)}
}

/**
 * @brief Multiplies v as a row vector by the full 4x4 matrix m.
 */
func (v Vec4) Transform(m Mat4) Vec4 {
	d := m.Data
	return Vec4{
		v.X*d[0] + v.Y*d[4] + v.Z*d[8] + v.W*d[12],
		v.X*d[1] + v.Y*d[5] + v.Z*d[9] + v.W*d[13],
		v.X*d[2] + v.Y*d[6] + v.Z*d[10] + v.W*d[14],
		v.X*d[3] + v.Y*d[7] + v.Z*d[11] + v.W*d[15]}
}

func (v Vec4) Equals(other Vec4) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z && v.W == other.W
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 */
func (v Vec4) Compare(other Vec4, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}

	if kabs(v.Y-other.Y) > tolerance {
		return false
	}

	if kabs(v.Z-other.Z) > tolerance {
		return false
	}

	if kabs(v.W-other.W) > tolerance {
		return false
	}

	return true
}

func (v Vec4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}
