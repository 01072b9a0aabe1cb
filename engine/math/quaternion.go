package math

import "fmt"

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1.0}
}

/**
 * @brief Creates a quaternion from its raw components.
 */
func NewQuaternion(x, y, z, w float32) Quaternion {
	return Quaternion{x, y, z, w}
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param axis The axis of rotation. Expected to be unit length.
 * @param angle The angle of rotation in radians.
 * @param normalize Indicates if the quaternion should be normalized.
 * @return A new quaternion.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32, normalize bool) Quaternion {
	half_angle := 0.5 * angle
	s := ksin(half_angle)
	c := kcos(half_angle)

	q := Quaternion{s * axis.X, s * axis.Y, s * axis.Z, c}
	if normalize {
		q = q.Normalize()
	}
	return q
}

/**
 * @brief Creates a quaternion that rotates by roll around Z, then pitch
 * around X, then yaw around Y.
 *
 * @param yaw The rotation around the y axis in radians.
 * @param pitch The rotation around the x axis in radians.
 * @param roll The rotation around the z axis in radians.
 */
func NewQuatFromYawPitchRoll(yaw, pitch, roll float32) Quaternion {
	sr, cr := ksin(roll*0.5), kcos(roll*0.5)
	sp, cp := ksin(pitch*0.5), kcos(pitch*0.5)
	sy, cy := ksin(yaw*0.5), kcos(yaw*0.5)

	return Quaternion{
		X: cy*sp*cr + sy*cp*sr,
		Y: sy*cp*cr - cy*sp*sr,
		Z: cy*cp*sr - sy*sp*cr,
		W: cy*cp*cr + sy*sp*sr,
	}
}

/**
 * @brief Extracts the rotation held in the upper 3x3 block of m. The block
 * is expected to be orthonormal.
 */
func NewQuatFromRotationMatrix(m Mat4) Quaternion {
	d := m.Data
	m11, m12, m13 := d[0], d[1], d[2]
	m21, m22, m23 := d[4], d[5], d[6]
	m31, m32, m33 := d[8], d[9], d[10]

	trace := m11 + m22 + m33
	if trace > 0 {
		s := ksqrt(trace + 1.0)
		half := 0.5 / s
		return Quaternion{
			(m23 - m32) * half,
			(m31 - m13) * half,
			(m12 - m21) * half,
			s * 0.5}
	}
	if m11 >= m22 && m11 >= m33 {
		s := ksqrt(1.0 + m11 - m22 - m33)
		half := 0.5 / s
		return Quaternion{
			0.5 * s,
			(m12 + m21) * half,
			(m13 + m31) * half,
			(m23 - m32) * half}
	}
	if m22 > m33 {
		s := ksqrt(1.0 + m22 - m11 - m33)
		half := 0.5 / s
		return Quaternion{
			(m21 + m12) * half,
			0.5 * s,
			(m32 + m23) * half,
			(m31 - m13) * half}
	}
	s := ksqrt(1.0 + m33 - m11 - m22)
	half := 0.5 / s
	return Quaternion{
		(m31 + m13) * half,
		(m32 + m23) * half,
		0.5 * s,
		(m12 - m21) * half}
}

func (q Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion{q.X + other.X, q.Y + other.Y, q.Z + other.Z, q.W + other.W}
}

func (q Quaternion) Sub(other Quaternion) Quaternion {
	return Quaternion{q.X - other.X, q.Y - other.Y, q.Z - other.Z, q.W - other.W}
}

func (q Quaternion) MulScalar(scalar float32) Quaternion {
	return Quaternion{q.X * scalar, q.Y * scalar, q.Z * scalar, q.W * scalar}
}

func (q Quaternion) Negate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, -q.W}
}

/**
 * @brief Returns the squared length of the provided quaternion.
 */
func (q Quaternion) LengthSquared() float32 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

/**
 * @brief Returns the length of the provided quaternion.
 */
func (q Quaternion) Length() float32 {
	return ksqrt(q.LengthSquared())
}

/**
 * @brief Returns a normalized copy of the provided quaternion.
 *
 * @return A normalized copy of the provided quaternion.
 */
func (q Quaternion) Normalize() Quaternion {
	length := q.Length()
	return Quaternion{
		q.X / length,
		q.Y / length,
		q.Z / length,
		q.W / length}
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * The x, y and z elements are negated, but the w element is untouched.
 *
 * @return The conjugate quaternion.
 */
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

/**
 * @brief Returns the multiplicative inverse of the provided quaternion. For
 * unit quaternions this is the conjugate.
 */
func (q Quaternion) Inverse() Quaternion {
	return q.Conjugate().MulScalar(1.0 / q.LengthSquared())
}

/**
 * @brief Returns the Hamilton product q * other. Rotating by the result
 * applies other first and q second.
 *
 * @param other The second quaternion.
 * @return The multiplied quaternion.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	out_quaternion := Quaternion{}

	out_quaternion.X = q.X*other.W +
		q.Y*other.Z -
		q.Z*other.Y +
		q.W*other.X

	out_quaternion.Y = -q.X*other.Z +
		q.Y*other.W +
		q.Z*other.X +
		q.W*other.Y

	out_quaternion.Z = q.X*other.Y -
		q.Y*other.X +
		q.Z*other.W +
		q.W*other.Z

	out_quaternion.W = -q.X*other.X -
		q.Y*other.Y -
		q.Z*other.Z +
		q.W*other.W

	return out_quaternion
}

// Concatenate returns the rotation that applies q and then next.
func (q Quaternion) Concatenate(next Quaternion) Quaternion {
	return next.Mul(q)
}

/**
 * @brief Calculates the dot product of the provided quaternions.
 */
func (q Quaternion) Dot(other Quaternion) float32 {
	return q.X*other.X +
		q.Y*other.Y +
		q.Z*other.Z +
		q.W*other.W
}

/**
 * @brief Linearly interpolates between q and other along the shortest arc
 * and normalizes the result.
 */
func (q Quaternion) Lerp(other Quaternion, amount float32) Quaternion {
	if q.Dot(other) < 0 {
		other = other.Negate()
	}
	out := Quaternion{
		q.X + (other.X-q.X)*amount,
		q.Y + (other.Y-q.Y)*amount,
		q.Z + (other.Z-q.Z)*amount,
		q.W + (other.W-q.W)*amount}
	return out.Normalize()
}

/**
 * @brief Calculates spherical linear interpolation of a given percentage
 * between two quaternions.
 *
 * @param other The second quaternion.
 * @param percentage The percentage of interpolation, typically a value from 0.0f-1.0f.
 * @return An interpolated quaternion.
 */
func (q Quaternion) Slerp(other Quaternion, percentage float32) Quaternion {
	// Source: https://en.Wikipedia.org/wiki/Slerp
	v0 := q.Normalize()
	v1 := other.Normalize()

	dot := v0.Dot(v1)

	// v1 and -v1 are the same rotation; flip to take the shorter path.
	if dot < 0.0 {
		v1 = v1.Negate()
		dot = -dot
	}

	const DOT_THRESHOLD = float32(0.9995)
	if dot > DOT_THRESHOLD {
		return v0.Lerp(v1, percentage)
	}

	// dot is in [0, DOT_THRESHOLD], so acos is safe.
	theta_0 := kacos(dot)
	theta := theta_0 * percentage
	sin_theta := ksin(theta)
	sin_theta_0 := ksin(theta_0)

	s0 := kcos(theta) - dot*sin_theta/sin_theta_0 // == sin(theta_0 - theta) / sin(theta_0)
	s1 := sin_theta / sin_theta_0

	return Quaternion{
		(v0.X * s0) + (v1.X * s1),
		(v0.Y * s0) + (v1.Y * s1),
		(v0.Z * s0) + (v1.Z * s1),
		(v0.W * s0) + (v1.W * s1)}
}

func (q Quaternion) Equals(other Quaternion) bool {
	return q.X == other.X && q.Y == other.Y && q.Z == other.Z && q.W == other.W
}

func (q Quaternion) Compare(other Quaternion, tolerance float32) bool {
	return Vec4(q).Compare(Vec4(other), tolerance)
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", q.X, q.Y, q.Z, q.W)
}

// quatBasis is the row-major 3x3 rotation block of a unit quaternion, shared
// by every quaternion transform so they agree with NewMat4FromQuaternion.
type quatBasis struct {
	m11, m12, m13 float32
	m21, m22, m23 float32
	m31, m32, m33 float32
}

func newQuatBasis(q Quaternion) quatBasis {
	x2 := q.X + q.X
	y2 := q.Y + q.Y
	z2 := q.Z + q.Z
	wx := q.W * x2
	wy := q.W * y2
	wz := q.W * z2
	xx := q.X * x2
	xy := q.X * y2
	xz := q.X * z2
	yy := q.Y * y2
	yz := q.Y * z2
	zz := q.Z * z2

	return quatBasis{
		m11: 1.0 - yy - zz, m12: xy + wz, m13: xz - wy,
		m21: xy - wz, m22: 1.0 - xx - zz, m23: yz + wx,
		m31: xz + wy, m32: yz - wx, m33: 1.0 - xx - yy,
	}
}
