package math

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaneDot(t *testing.T) {
	ground := NewPlane(0, 1, 0, 0)
	require.Equal(t, float32(5), ground.DotCoordinate(NewVec3(0, 5, 0)))
	require.Equal(t, float32(-2), ground.DotCoordinate(NewVec3(7, -2, 1)))

	raised := NewPlane(0, 1, 0, -3)
	require.Equal(t, float32(2), raised.DotCoordinate(NewVec3(0, 5, 0)))
	require.Equal(t, float32(5), raised.DotNormal(NewVec3(0, 5, 0)))
	require.Equal(t, float32(2), raised.Dot(NewVec4(0, 5, 0, 1)))
	require.Equal(t, float32(5), raised.Dot(NewVec4(0, 5, 0, 0)))
}

func TestPlaneNormalize(t *testing.T) {
	p := NewPlane(0, 3, 4, 10).Normalize()
	require.True(t, NewPlane(0, 0.6, 0.8, 2).Compare(p, tolerance))
	require.InDelta(t, 1.0, p.Normal().Length(), 1e-6)
}

func TestPlaneConstructors(t *testing.T) {
	p := NewPlaneFromPointNormal(NewVec3(0, 2, 0), NewVec3Up())
	require.True(t, NewPlane(0, 1, 0, -2).Equals(p))

	fromPoints := NewPlaneFromPoints(NewVec3(0, 1, 0), NewVec3(1, 1, 0), NewVec3(0, 1, -1))
	require.True(t, NewPlane(0, 1, 0, -1).Compare(fromPoints, tolerance))

	require.True(t, NewPlane(1, 2, 3, 4).Equals(NewPlaneFromVec4(NewVec4(1, 2, 3, 4))))
	require.True(t, NewVec3(1, 2, 3).Equals(NewPlane(1, 2, 3, 4).Normal()))
}

func TestPlaneTransform(t *testing.T) {
	ground := NewPlane(0, 1, 0, 0)

	lifted := ground.Transform(NewMat4Translation(NewVec3(0, 5, 0)))
	require.True(t, NewPlane(0, 1, 0, -5).Compare(lifted, tolerance))

	// Points on the plane stay on it after the same transform.
	m := NewMat4RotationAxis(NewVec3(1, 1, 1).Normalize(), 0.8).Mul(NewMat4Translation(NewVec3(2, -1, 4)))
	p := NewPlaneFromPoints(NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1))
	moved := p.Transform(m)
	for _, point := range []Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
		require.InDelta(t, 0.0, moved.DotCoordinate(point.Transform(m)), 1e-4)
	}
}

func TestPlaneTransformQuaternion(t *testing.T) {
	q := NewQuatFromAxisAngle(NewVec3(0, 0, 1), K_HALF_PI, false)
	rotated := NewPlane(0, 1, 0, -2).TransformQuaternion(q)
	require.True(t, NewPlane(-1, 0, 0, -2).Compare(rotated, tolerance))

	m := NewMat4FromQuaternion(q)
	p := NewPlane(0.6, 0.8, 0, 3)
	require.True(t, p.Transform(m).Compare(p.TransformQuaternion(q), tolerance))
}

func TestPlaneIntersects(t *testing.T) {
	ground := NewPlane(0, 1, 0, 0)

	above := NewBoundingBox(NewVec3(-1, 1, -1), NewVec3(1, 2, 1))
	below := NewBoundingBox(NewVec3(-1, -3, -1), NewVec3(1, -2, 1))
	across := NewBoundingBox(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	require.Equal(t, PlaneIntersectionFront, ground.IntersectsBox(above))
	require.Equal(t, PlaneIntersectionBack, ground.IntersectsBox(below))
	require.Equal(t, PlaneIntersectionIntersecting, ground.IntersectsBox(across))

	require.Equal(t, PlaneIntersectionFront, ground.IntersectsSphere(NewBoundingSphere(NewVec3(0, 3, 0), 1)))
	require.Equal(t, PlaneIntersectionBack, ground.IntersectsSphere(NewBoundingSphere(NewVec3(0, -3, 0), 1)))
	require.Equal(t, PlaneIntersectionIntersecting, ground.IntersectsSphere(NewBoundingSphere(NewVec3(0, 0.5, 0), 1)))

	tilted := NewPlane(-1, 0, 0, 0)
	require.Equal(t, PlaneIntersectionFront, tilted.IntersectsBox(NewBoundingBox(NewVec3(-3, 0, 0), NewVec3(-2, 1, 1))))
	require.Equal(t, PlaneIntersectionBack, tilted.IntersectsBox(NewBoundingBox(NewVec3(2, 0, 0), NewVec3(3, 1, 1))))
}

func TestPlaneString(t *testing.T) {
	require.Equal(t, "(0, 1, 0, -5)", NewPlane(0, 1, 0, -5).String())
	require.Equal(t, "intersecting", PlaneIntersectionIntersecting.String())
}
