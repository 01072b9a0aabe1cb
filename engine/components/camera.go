package components

import (
	"github.com/spaghettifunk/acid/engine/math"
)

/**
 * @brief Represents a camera used to build view and projection matrices
 * and to produce the frustum that the scene is culled against.
 */
type Camera struct {
	/**
	 * @brief The position of this camera.
	 * NOTE: Do not set this directly, use SetPosition() instead
	 * so the view matrix is recalculated when needed.
	 */
	Position math.Vec3
	/**
	 * @brief The rotation of this camera using Euler angles (pitch, yaw, roll).
	 * NOTE: Do not set this directly, use SetEulerRotation() instead
	 * so the view matrix is recalculated when needed.
	 */
	EulerRotation math.Vec3
	/** @brief Vertical field of view in radians. */
	Fov float32
	/** @brief Width divided by height of the viewport. */
	AspectRatio float32
	/** @brief Distance to the near clipping plane. */
	NearClip float32
	/** @brief Distance to the far clipping plane. */
	FarClip float32
	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	IsDirty bool
	/**
	 * @brief The view matrix of this camera.
	 * NOTE: IMPORTANT: Do not get this directly, use GetView() instead
	 * so the view matrix is recalculated when needed.
	 */
	ViewMatrix math.Mat4
	// world is the inverse of ViewMatrix and is rebuilt alongside it.
	world math.Mat4
}

/** @brief The name of the default camera. */
const DEFAULT_CAMERA_NAME string = "default"

const (
	DEFAULT_CAMERA_FOV    float32 = math.K_QUARTER_PI
	DEFAULT_CAMERA_ASPECT float32 = 16.0 / 9.0
	DEFAULT_CAMERA_NEAR   float32 = 0.1
	DEFAULT_CAMERA_FAR    float32 = 1000.0
)

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

func (c *Camera) Reset() {
	c.EulerRotation = math.NewVec3Zero()
	c.Position = math.NewVec3Zero()
	c.Fov = DEFAULT_CAMERA_FOV
	c.AspectRatio = DEFAULT_CAMERA_ASPECT
	c.NearClip = DEFAULT_CAMERA_NEAR
	c.FarClip = DEFAULT_CAMERA_FAR
	c.IsDirty = false
	c.ViewMatrix = math.NewMat4Identity()
	c.world = math.NewMat4Identity()
}

func (c *Camera) GetPosition() math.Vec3 {
	return c.Position
}

func (c *Camera) SetPosition(position math.Vec3) {
	c.Position = position
	c.IsDirty = true
}

func (c *Camera) GetEulerRotation() math.Vec3 {
	return c.EulerRotation
}

func (c *Camera) SetEulerRotation(rotation math.Vec3) {
	c.EulerRotation = rotation
	c.IsDirty = true
}

// SetPerspective replaces the lens parameters used by GetProjection.
func (c *Camera) SetPerspective(fovRadians, aspectRatio, nearClip, farClip float32) {
	c.Fov = fovRadians
	c.AspectRatio = aspectRatio
	c.NearClip = nearClip
	c.FarClip = farClip
}

func (c *Camera) rebuild() {
	if c.IsDirty {
		rotation := math.NewMat4EulerXYZ(c.EulerRotation.X, c.EulerRotation.Y, c.EulerRotation.Z)
		translation := math.NewMat4Translation(c.Position)

		c.world = rotation.Mul(translation)
		c.ViewMatrix = c.world.Inverse()

		c.IsDirty = false
	}
}

func (c *Camera) GetView() math.Mat4 {
	c.rebuild()
	return c.ViewMatrix
}

func (c *Camera) GetProjection() math.Mat4 {
	return math.NewMat4PerspectiveFov(c.Fov, c.AspectRatio, c.NearClip, c.FarClip)
}

// GetViewProjection returns view * projection, the matrix a world space row
// vector is multiplied by to reach clip space.
func (c *Camera) GetViewProjection() math.Mat4 {
	return c.GetView().Mul(c.GetProjection())
}

func (c *Camera) GetFrustum() math.BoundingFrustum {
	return math.NewBoundingFrustum(c.GetViewProjection())
}

func (c *Camera) Forward() math.Vec3 {
	c.rebuild()
	return c.world.Forward().Normalize()
}

func (c *Camera) Backward() math.Vec3 {
	c.rebuild()
	return c.world.Backward().Normalize()
}

func (c *Camera) Left() math.Vec3 {
	c.rebuild()
	return c.world.Left().Normalize()
}

func (c *Camera) Right() math.Vec3 {
	c.rebuild()
	return c.world.Right().Normalize()
}

func (c *Camera) move(direction math.Vec3, amount float32) {
	c.Position = c.Position.Add(direction.MulScalar(amount))
	c.IsDirty = true
}

func (c *Camera) MoveForward(amount float32) {
	c.move(c.Forward(), amount)
}

func (c *Camera) MoveBackward(amount float32) {
	c.move(c.Backward(), amount)
}

func (c *Camera) MoveLeft(amount float32) {
	c.move(c.Left(), amount)
}

func (c *Camera) MoveRight(amount float32) {
	c.move(c.Right(), amount)
}

func (c *Camera) MoveUp(amount float32) {
	c.move(math.NewVec3Up(), amount)
}

func (c *Camera) MoveDown(amount float32) {
	c.move(math.NewVec3Down(), amount)
}

func (c *Camera) Yaw(amount float32) {
	c.EulerRotation.Y += amount
	c.IsDirty = true
}

func (c *Camera) Pitch(amount float32) {
	c.EulerRotation.X += amount

	// Clamp to avoid Gimbal lock.
	limit := math.DegToRad(89.0)
	c.EulerRotation.X = math.Clamp(c.EulerRotation.X, -limit, limit)

	c.IsDirty = true
}
