package math

import "fmt"

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.0f.
 */
func NewVec2Zero() Vec2 {
	return Vec2{0.0, 0.0}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 1.0f.
 */
func NewVec2One() Vec2 {
	return Vec2{1.0, 1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing up (0, 1).
 */
func NewVec2Up() Vec2 {
	return Vec2{0.0, 1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing down (0, -1).
 */
func NewVec2Down() Vec2 {
	return Vec2{0.0, -1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing left (-1, 0).
 */
func NewVec2Left() Vec2 {
	return Vec2{-1.0, 0.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing right (1, 0).
 */
func NewVec2Right() Vec2 {
	return Vec2{1.0, 0.0}
}

/**
 * Adds other to v and returns a copy of the result.
 */
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

/**
 * Subtracts other from v and returns a copy of the result.
 */
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

/**
 * Multiplies v by other element-wise and returns a copy of the result.
 */
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

/**
 * Multiplies all elements of v by scalar and returns a copy of the result.
 */
func (v Vec2) MulScalar(scalar float32) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

/**
 * Divides v by other element-wise and returns a copy of the result.
 */
func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

/**
 * Divides all elements of v by scalar and returns a copy of the result.
 */
func (v Vec2) DivScalar(scalar float32) Vec2 {
	return Vec2{v.X / scalar, v.Y / scalar}
}

/**
 * Returns a copy of v with every element negated.
 */
func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

/**
 * Returns the squared length of the provided vector.
 */
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec2) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * Returns a unit length copy of v. A zero vector yields NaN components.
 */
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	return Vec2{v.X / length, v.Y / length}
}

/**
 * @brief Returns the dot product between v and other.
 */
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

/**
 * @brief Returns the squared distance between v and other.
 */
func (v Vec2) DistanceSquared(other Vec2) float32 {
	return v.Sub(other).LengthSquared()
}

/**
 * @brief Returns the component-wise minimum of v and other.
 */
func (v Vec2) Min(other Vec2) Vec2 {
	return Vec2{kmin(v.X, other.X), kmin(v.Y, other.Y)}
}

/**
 * @brief Returns the component-wise maximum of v and other.
 */
func (v Vec2) Max(other Vec2) Vec2 {
	return Vec2{kmax(v.X, other.X), kmax(v.Y, other.Y)}
}

/**
 * @brief Restricts every component of v to the range [min, max]. The cap
 * against max is applied before the floor against min.
 */
func (v Vec2) Clamp(min, max Vec2) Vec2 {
	return Vec2{
		clampMaxFirst(v.X, min.X, max.X),
		clampMaxFirst(v.Y, min.Y, max.Y)}
}

/**
 * @brief Linearly interpolates between v and other. amount is not clamped,
 * so values outside [0, 1] extrapolate.
 */
func (v Vec2) Lerp(other Vec2, amount float32) Vec2 {
	return Vec2{
		v.X + (other.X-v.X)*amount,
		v.Y + (other.Y-v.Y)*amount}
}

/**
 * @brief Returns the point with barycentric coordinates (amount1, amount2)
 * in the triangle (v, value2, value3).
 */
func (v Vec2) Barycentric(value2, value3 Vec2, amount1, amount2 float32) Vec2 {
	return Vec2{
		v.X + amount1*(value2.X-v.X) + amount2*(value3.X-v.X),
		v.Y + amount1*(value2.Y-v.Y) + amount2*(value3.Y-v.Y)}
}

/**
 * @brief Reflects v off the surface with the given unit normal.
 */
func (v Vec2) Reflect(normal Vec2) Vec2 {
	d := 2.0 * v.Dot(normal)
	return Vec2{v.X - d*normal.X, v.Y - d*normal.Y}
}

/**
 * @brief Transforms v as a point (z = 0, w = 1) by m.
 */
func (v Vec2) Transform(m Mat4) Vec2 {
	return Vec2{
		v.X*m.Data[0] + v.Y*m.Data[4] + m.Data[12],
		v.X*m.Data[1] + v.Y*m.Data[5] + m.Data[13]}
}

/**
 * @brief Transforms v as a direction by m, ignoring the translation row.
 */
func (v Vec2) TransformNormal(m Mat4) Vec2 {
	return Vec2{
		v.X*m.Data[0] + v.Y*m.Data[4],
		v.X*m.Data[1] + v.Y*m.Data[5]}
}

/**
 * @brief Reports whether every component of v equals the one in other exactly.
 */
func (v Vec2) Equals(other Vec2) bool {
	return v.X == other.X && v.Y == other.Y
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}
