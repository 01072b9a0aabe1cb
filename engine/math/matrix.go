package math

import "fmt"

/**
 * @brief Creates a matrix from its sixteen elements given row by row.
 */
func NewMat4(
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 float32) Mat4 {
	return Mat4{Data: [16]float32{
		m11, m12, m13, m14,
		m21, m22, m23, m24,
		m31, m32, m33, m34,
		m41, m42, m43, m44,
	}}
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[5] = 1.0
	out_matrix.Data[10] = 1.0
	out_matrix.Data[15] = 1.0
	return out_matrix
}

/**
 * @brief Creates and returns a matrix with every element set to 0.
 */
func NewMat4Zero() Mat4 {
	return Mat4{}
}

/**
 * @brief Creates and returns a matrix with every element set to 1.
 */
func NewMat4One() Mat4 {
	out_matrix := Mat4{}
	for i := range out_matrix.Data {
		out_matrix.Data[i] = 1.0
	}
	return out_matrix
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[12] = position.X
	out_matrix.Data[13] = position.Y
	out_matrix.Data[14] = position.Z
	return out_matrix
}

/**
 * @brief Returns a scale matrix using the provided scale.
 *
 * @param scale The 3-component scale.
 * @return A scale matrix.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = scale.X
	out_matrix.Data[5] = scale.Y
	out_matrix.Data[10] = scale.Z
	return out_matrix
}

/**
 * @brief Creates a rotation matrix around the x axis.
 *
 * @param angle_radians The x angle in radians.
 * @return A rotation matrix.
 */
func NewMat4RotationX(angle_radians float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := kcos(angle_radians)
	s := ksin(angle_radians)

	out_matrix.Data[5] = c
	out_matrix.Data[6] = s
	out_matrix.Data[9] = -s
	out_matrix.Data[10] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix around the y axis.
 *
 * @param angle_radians The y angle in radians.
 * @return A rotation matrix.
 */
func NewMat4RotationY(angle_radians float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := kcos(angle_radians)
	s := ksin(angle_radians)

	out_matrix.Data[0] = c
	out_matrix.Data[2] = -s
	out_matrix.Data[8] = s
	out_matrix.Data[10] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix around the z axis.
 *
 * @param angle_radians The z angle in radians.
 * @return A rotation matrix.
 */
func NewMat4RotationZ(angle_radians float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := kcos(angle_radians)
	s := ksin(angle_radians)

	out_matrix.Data[0] = c
	out_matrix.Data[1] = s
	out_matrix.Data[4] = -s
	out_matrix.Data[5] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided x, y and z axis rotations,
 * applied in that order.
 */
func NewMat4EulerXYZ(x_radians, y_radians, z_radians float32) Mat4 {
	rx := NewMat4RotationX(x_radians)
	ry := NewMat4RotationY(y_radians)
	rz := NewMat4RotationZ(z_radians)
	return rx.Mul(ry).Mul(rz)
}

/**
 * @brief Creates a matrix rotating around an arbitrary axis (Rodrigues).
 *
 * @param axis The unit axis to rotate around.
 * @param angle_radians The angle in radians.
 */
func NewMat4RotationAxis(axis Vec3, angle_radians float32) Mat4 {
	x, y, z := axis.X, axis.Y, axis.Z
	s := ksin(angle_radians)
	c := kcos(angle_radians)
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z

	return NewMat4(
		xx+c*(1.0-xx), xy-c*xy+s*z, xz-c*xz-s*y, 0,
		xy-c*xy-s*z, yy+c*(1.0-yy), yz-c*yz+s*x, 0,
		xz-c*xz+s*y, yz-c*yz-s*x, zz+c*(1.0-zz), 0,
		0, 0, 0, 1,
	)
}

/**
 * @brief Creates a rotation matrix from the given unit quaternion.
 *
 * @param q The quaternion to be used.
 * @return A rotation matrix.
 */
func NewMat4FromQuaternion(q Quaternion) Mat4 {
	r := newQuatBasis(q)
	return NewMat4(
		r.m11, r.m12, r.m13, 0,
		r.m21, r.m22, r.m23, 0,
		r.m31, r.m32, r.m33, 0,
		0, 0, 0, 1,
	)
}

/**
 * @brief Creates a rotation matrix applying roll around Z, pitch around X
 * and yaw around Y, in that order.
 */
func NewMat4FromYawPitchRoll(yaw, pitch, roll float32) Mat4 {
	return NewMat4FromQuaternion(NewQuatFromYawPitchRoll(yaw, pitch, roll))
}

/**
 * @brief Creates a perspective projection from the dimensions of the view
 * volume at the near plane. Depth maps to [0, 1].
 */
func NewMat4Perspective(width, height, near_clip, far_clip float32) Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = (2.0 * near_clip) / width
	out_matrix.Data[5] = (2.0 * near_clip) / height
	out_matrix.Data[10] = far_clip / (near_clip - far_clip)
	out_matrix.Data[11] = -1.0
	out_matrix.Data[14] = (near_clip * far_clip) / (near_clip - far_clip)
	return out_matrix
}

/**
 * @brief Creates and returns a perspective matrix. Typically used to render 3d scenes.
 *
 * @param fov_radians The vertical field of view in radians.
 * @param aspect_ratio The aspect ratio (width / height).
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4PerspectiveFov(fov_radians, aspect_ratio, near_clip, far_clip float32) Mat4 {
	y_scale := 1.0 / ktan(fov_radians*0.5)
	out_matrix := Mat4{}
	out_matrix.Data[0] = y_scale / aspect_ratio
	out_matrix.Data[5] = y_scale
	out_matrix.Data[10] = far_clip / (near_clip - far_clip)
	out_matrix.Data[11] = -1.0
	out_matrix.Data[14] = (near_clip * far_clip) / (near_clip - far_clip)
	return out_matrix
}

/**
 * @brief Creates a customized perspective projection whose view volume may
 * be off-center.
 */
func NewMat4PerspectiveOffCenter(left, right, bottom, top, near_clip, far_clip float32) Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = (2.0 * near_clip) / (right - left)
	out_matrix.Data[5] = (2.0 * near_clip) / (top - bottom)
	out_matrix.Data[8] = (left + right) / (right - left)
	out_matrix.Data[9] = (top + bottom) / (top - bottom)
	out_matrix.Data[10] = far_clip / (near_clip - far_clip)
	out_matrix.Data[11] = -1.0
	out_matrix.Data[14] = (near_clip * far_clip) / (near_clip - far_clip)
	return out_matrix
}

/**
 * @brief Creates and returns an orthographic projection matrix centred on
 * the view axis. Typically used to render flat or 2D scenes.
 */
func NewMat4Orthographic(width, height, near_clip, far_clip float32) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = 2.0 / width
	out_matrix.Data[5] = 2.0 / height
	out_matrix.Data[10] = 1.0 / (near_clip - far_clip)
	out_matrix.Data[14] = near_clip / (near_clip - far_clip)
	return out_matrix
}

/**
 * @brief Creates and returns an orthographic projection matrix.
 *
 * @param left The left side of the view frustum.
 * @param right The right side of the view frustum.
 * @param bottom The bottom side of the view frustum.
 * @param top The top side of the view frustum.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new orthographic projection matrix.
 */
func NewMat4OrthographicOffCenter(left, right, bottom, top, near_clip, far_clip float32) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = 2.0 / (right - left)
	out_matrix.Data[5] = 2.0 / (top - bottom)
	out_matrix.Data[10] = 1.0 / (near_clip - far_clip)
	out_matrix.Data[12] = (left + right) / (left - right)
	out_matrix.Data[13] = (top + bottom) / (bottom - top)
	out_matrix.Data[14] = near_clip / (near_clip - far_clip)
	return out_matrix
}

/**
 * @brief Creates and returns a look-at (view) matrix, or a matrix looking
 * at target from the perspective of position.
 *
 * @param position The position of the matrix.
 * @param target The position to "look at".
 * @param up The up vector.
 * @return A matrix looking at target from the perspective of position.
 */
func NewMat4LookAt(position, target, up Vec3) Mat4 {
	z_axis := position.Sub(target).Normalize()
	x_axis := up.Cross(z_axis).Normalize()
	y_axis := z_axis.Cross(x_axis)

	return NewMat4(
		x_axis.X, y_axis.X, z_axis.X, 0,
		x_axis.Y, y_axis.Y, z_axis.Y, 0,
		x_axis.Z, y_axis.Z, z_axis.Z, 0,
		-x_axis.Dot(position), -y_axis.Dot(position), -z_axis.Dot(position), 1,
	)
}

/**
 * @brief Creates a world matrix placing an object at position, facing
 * forward with the given up direction.
 */
func NewMat4World(position, forward, up Vec3) Mat4 {
	z_axis := forward.Negate().Normalize()
	x_axis := up.Cross(z_axis).Normalize()
	y_axis := z_axis.Cross(x_axis)

	return NewMat4(
		x_axis.X, x_axis.Y, x_axis.Z, 0,
		y_axis.X, y_axis.Y, y_axis.Z, 0,
		z_axis.X, z_axis.Y, z_axis.Z, 0,
		position.X, position.Y, position.Z, 1,
	)
}

/**
 * @brief Creates a matrix flattening geometry onto plane as a shadow cast
 * by a light travelling along light_direction. The result is projective,
 * divide by w after transforming.
 */
func NewMat4Shadow(light_direction Vec3, plane Plane) Mat4 {
	p := plane.Normalize()
	dot := p.A*light_direction.X + p.B*light_direction.Y + p.C*light_direction.Z
	a, b, c, d := -p.A, -p.B, -p.C, -p.D
	l := light_direction

	return NewMat4(
		a*l.X+dot, a*l.Y, a*l.Z, 0,
		b*l.X, b*l.Y+dot, b*l.Z, 0,
		c*l.X, c*l.Y, c*l.Z+dot, 0,
		d*l.X, d*l.Y, d*l.Z, dot,
	)
}

/**
 * @brief Creates a matrix mirroring geometry across plane (Householder).
 */
func NewMat4Reflection(plane Plane) Mat4 {
	p := plane.Normalize()
	a, b, c := p.A, p.B, p.C
	a2, b2, c2 := -2.0*a, -2.0*b, -2.0*c

	return NewMat4(
		a2*a+1, b2*a, c2*a, 0,
		a2*b, b2*b+1, c2*b, 0,
		a2*c, b2*c, c2*c+1, 0,
		a2*p.D, b2*p.D, c2*p.D, 1,
	)
}

/**
 * @brief Returns the element at the given 1-based row and column.
 */
func (mt Mat4) M(row, col int) float32 {
	return mt.Data[(row-1)*4+(col-1)]
}

func (mt Mat4) Add(other Mat4) Mat4 {
	out_matrix := Mat4{}
	for i := range mt.Data {
		out_matrix.Data[i] = mt.Data[i] + other.Data[i]
	}
	return out_matrix
}

func (mt Mat4) Sub(other Mat4) Mat4 {
	out_matrix := Mat4{}
	for i := range mt.Data {
		out_matrix.Data[i] = mt.Data[i] - other.Data[i]
	}
	return out_matrix
}

/**
 * @brief Returns the matrix product mt * other. Transforming by the result
 * applies mt first and other second.
 *
 * @param other The second matrix to be multiplied.
 * @return The result of the matrix multiplication.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out_matrix := Mat4{}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := float32(0)
			for i := 0; i < 4; i++ {
				sum += mt.Data[row*4+i] * other.Data[i*4+col]
			}
			out_matrix.Data[row*4+col] = sum
		}
	}

	return out_matrix
}

/**
 * @brief Multiplies mt by other element by element. This is not the matrix
 * product, see Mul for that.
 */
func (mt Mat4) MulElements(other Mat4) Mat4 {
	out_matrix := Mat4{}
	for i := range mt.Data {
		out_matrix.Data[i] = mt.Data[i] * other.Data[i]
	}
	return out_matrix
}

func (mt Mat4) MulScalar(scalar float32) Mat4 {
	out_matrix := Mat4{}
	for i := range mt.Data {
		out_matrix.Data[i] = mt.Data[i] * scalar
	}
	return out_matrix
}

// Div divides element by element.
func (mt Mat4) Div(other Mat4) Mat4 {
	out_matrix := Mat4{}
	for i := range mt.Data {
		out_matrix.Data[i] = mt.Data[i] / other.Data[i]
	}
	return out_matrix
}

func (mt Mat4) DivScalar(scalar float32) Mat4 {
	return mt.MulScalar(1.0 / scalar)
}

func (mt Mat4) Negate() Mat4 {
	return mt.MulScalar(-1.0)
}

/**
 * @brief Interpolates every element between mt and other.
 */
func (mt Mat4) Lerp(other Mat4, amount float32) Mat4 {
	out_matrix := Mat4{}
	for i := range mt.Data {
		out_matrix.Data[i] = mt.Data[i] + (other.Data[i]-mt.Data[i])*amount
	}
	return out_matrix
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->colums)
 *
 * @return A transposed copy of of the provided matrix.
 */
func (mt Mat4) Transpose() Mat4 {
	out_matrix := Mat4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out_matrix.Data[col*4+row] = mt.Data[row*4+col]
		}
	}
	return out_matrix
}

/**
 * @brief Returns the determinant, expanded along the first row.
 */
func (mt Mat4) Determinant() float32 {
	d := mt.Data
	m11, m12, m13, m14 := d[0], d[1], d[2], d[3]
	m21, m22, m23, m24 := d[4], d[5], d[6], d[7]
	m31, m32, m33, m34 := d[8], d[9], d[10], d[11]
	m41, m42, m43, m44 := d[12], d[13], d[14], d[15]

	// 2x2 minors of the bottom two rows.
	s34_34 := m33*m44 - m34*m43
	s24_34 := m32*m44 - m34*m42
	s23_34 := m32*m43 - m33*m42
	s14_34 := m31*m44 - m34*m41
	s13_34 := m31*m43 - m33*m41
	s12_34 := m31*m42 - m32*m41

	return m11*(m22*s34_34-m23*s24_34+m24*s23_34) -
		m12*(m21*s34_34-m23*s14_34+m24*s13_34) +
		m13*(m21*s24_34-m22*s14_34+m24*s12_34) -
		m14*(m21*s23_34-m22*s13_34+m23*s12_34)
}

/**
 * @brief Creates and returns an inverse of the provided matrix using the
 * adjugate divided by the determinant. A singular matrix produces Inf/NaN
 * elements; check Determinant first when that matters.
 *
 * @return A inverted copy of the provided matrix.
 */
func (mt Mat4) Inverse() Mat4 {
	d := mt.Data
	m11, m12, m13, m14 := d[0], d[1], d[2], d[3]
	m21, m22, m23, m24 := d[4], d[5], d[6], d[7]
	m31, m32, m33, m34 := d[8], d[9], d[10], d[11]
	m41, m42, m43, m44 := d[12], d[13], d[14], d[15]

	t0 := m33*m44 - m34*m43
	t1 := m32*m44 - m34*m42
	t2 := m32*m43 - m33*m42
	t3 := m31*m44 - m34*m41
	t4 := m31*m43 - m33*m41
	t5 := m31*m42 - m32*m41

	c11 := m22*t0 - m23*t1 + m24*t2
	c12 := -(m21*t0 - m23*t3 + m24*t4)
	c13 := m21*t1 - m22*t3 + m24*t5
	c14 := -(m21*t2 - m22*t4 + m23*t5)

	inv := 1.0 / (m11*c11 + m12*c12 + m13*c13 + m14*c14)

	u0 := m23*m44 - m24*m43
	u1 := m22*m44 - m24*m42
	u2 := m22*m43 - m23*m42
	u3 := m21*m44 - m24*m41
	u4 := m21*m43 - m23*m41
	u5 := m21*m42 - m22*m41

	v0 := m23*m34 - m24*m33
	v1 := m22*m34 - m24*m32
	v2 := m22*m33 - m23*m32
	v3 := m21*m34 - m24*m31
	v4 := m21*m33 - m23*m31
	v5 := m21*m32 - m22*m31

	out_matrix := Mat4{}
	o := &out_matrix.Data

	o[0] = c11 * inv
	o[4] = c12 * inv
	o[8] = c13 * inv
	o[12] = c14 * inv

	o[1] = -(m12*t0 - m13*t1 + m14*t2) * inv
	o[5] = (m11*t0 - m13*t3 + m14*t4) * inv
	o[9] = -(m11*t1 - m12*t3 + m14*t5) * inv
	o[13] = (m11*t2 - m12*t4 + m13*t5) * inv

	o[2] = (m12*u0 - m13*u1 + m14*u2) * inv
	o[6] = -(m11*u0 - m13*u3 + m14*u4) * inv
	o[10] = (m11*u1 - m12*u3 + m14*u5) * inv
	o[14] = -(m11*u2 - m12*u4 + m13*u5) * inv

	o[3] = -(m12*v0 - m13*v1 + m14*v2) * inv
	o[7] = (m11*v0 - m13*v3 + m14*v4) * inv
	o[11] = -(m11*v1 - m12*v3 + m14*v5) * inv
	o[15] = (m11*v2 - m12*v4 + m13*v5) * inv

	return out_matrix
}

/**
 * @brief Rotates the upper three columns of every row by the unit
 * quaternion q. The fourth column is left untouched, so for a matrix with
 * an identity last column this equals mt.Mul(NewMat4FromQuaternion(q)).
 */
func (mt Mat4) TransformQuaternion(q Quaternion) Mat4 {
	r := newQuatBasis(q)
	out_matrix := mt
	for row := 0; row < 4; row++ {
		x := mt.Data[row*4+0]
		y := mt.Data[row*4+1]
		z := mt.Data[row*4+2]
		out_matrix.Data[row*4+0] = x*r.m11 + y*r.m21 + z*r.m31
		out_matrix.Data[row*4+1] = x*r.m12 + y*r.m22 + z*r.m32
		out_matrix.Data[row*4+2] = x*r.m13 + y*r.m23 + z*r.m33
	}
	return out_matrix
}

// Translation returns the translation row (m41, m42, m43).
func (mt Mat4) Translation() Vec3 {
	return Vec3{mt.Data[12], mt.Data[13], mt.Data[14]}
}

/**
 * @brief Returns the up vector (row 2) of the provided matrix.
 */
func (mt Mat4) Up() Vec3 {
	return Vec3{mt.Data[4], mt.Data[5], mt.Data[6]}
}

/**
 * @brief Returns the down vector (negated row 2) of the provided matrix.
 */
func (mt Mat4) Down() Vec3 {
	return Vec3{-mt.Data[4], -mt.Data[5], -mt.Data[6]}
}

/**
 * @brief Returns the right vector (row 1) of the provided matrix.
 */
func (mt Mat4) Right() Vec3 {
	return Vec3{mt.Data[0], mt.Data[1], mt.Data[2]}
}

/**
 * @brief Returns the left vector (negated row 1) of the provided matrix.
 */
func (mt Mat4) Left() Vec3 {
	return Vec3{-mt.Data[0], -mt.Data[1], -mt.Data[2]}
}

/**
 * @brief Returns the forward vector (negated row 3) of the provided matrix.
 */
func (mt Mat4) Forward() Vec3 {
	return Vec3{-mt.Data[8], -mt.Data[9], -mt.Data[10]}
}

/**
 * @brief Returns the backward vector (row 3) of the provided matrix.
 */
func (mt Mat4) Backward() Vec3 {
	return Vec3{mt.Data[8], mt.Data[9], mt.Data[10]}
}

// Equals compares all sixteen elements exactly.
func (mt Mat4) Equals(other Mat4) bool {
	return mt.Data == other.Data
}

// Compare reports whether every element is within tolerance of other.
func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := range mt.Data {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

func (mt Mat4) String() string {
	d := mt.Data
	return fmt.Sprintf("%v, %v, %v, %v\n%v, %v, %v, %v\n%v, %v, %v, %v\n%v, %v, %v, %v",
		d[0], d[1], d[2], d[3],
		d[4], d[5], d[6], d[7],
		d[8], d[9], d[10], d[11],
		d[12], d[13], d[14], d[15])
}
