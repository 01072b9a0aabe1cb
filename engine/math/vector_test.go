package math

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const tolerance float32 = 1e-5

func TestVec3Length(t *testing.T) {
	require.Equal(t, float32(3), NewVec3(3, 0, 0).Length())
	require.Equal(t, float32(5), NewVec3(3, 4, 0).Length())
	require.Equal(t, float32(3), NewVec3(1, 2, 2).Length())
	require.Equal(t, float32(5), NewVec2(3, 4).Length())
	require.Equal(t, float32(25), NewVec2(3, 4).LengthSquared())
	require.Equal(t, float32(2), NewVec4(1, 1, 1, 1).Length())
}

func TestVec3Normalize(t *testing.T) {
	for _, v := range []Vec3{{3, 0, 0}, {1, 2, 3}, {-4, 0.5, 9}} {
		require.InDelta(t, 1.0, v.Normalize().Length(), 1e-6)
	}
	require.InDelta(t, 1.0, NewVec2(5, -7).Normalize().Length(), 1e-6)
	require.InDelta(t, 1.0, NewVec4(1, 2, 3, 4).Normalize().Length(), 1e-6)
}

func TestVec3Cross(t *testing.T) {
	x, y, z := NewVec3(1, 0, 0), NewVec3Up(), NewVec3(0, 0, 1)
	require.True(t, z.Equals(x.Cross(y)))

	a, b := NewVec3(1, 2, 3), NewVec3(-2, 0.5, 4)
	require.True(t, a.Cross(b).Compare(b.Cross(a).Negate(), tolerance))
	require.InDelta(t, 0, a.Cross(b).Dot(a), 1e-4)
	require.InDelta(t, 0, a.Cross(b).Dot(b), 1e-4)
}

func TestVecDot(t *testing.T) {
	a, b := NewVec3(1, 2, 3), NewVec3(4, -5, 6)
	require.Equal(t, float32(12), a.Dot(b))
	require.Equal(t, a.Dot(b), b.Dot(a))

	require.Equal(t, float32(11), NewVec2(1, 2).Dot(NewVec2(3, 4)))
	require.Equal(t, float32(0), NewVec2Up().Dot(NewVec2Right()))
	require.Equal(t, float32(30), NewVec4(1, 2, 3, 4).Dot(NewVec4(1, 2, 3, 4)))
}

func TestVecDivScalar(t *testing.T) {
	require.True(t, NewVec3(1, 2, 3).Equals(NewVec3(2, 4, 6).DivScalar(2)))
	require.True(t, NewVec2(0.5, 1).Equals(NewVec2(1, 2).DivScalar(2)))
	require.True(t, NewVec4(1, 1, 1, 1).Equals(NewVec4(4, 4, 4, 4).DivScalar(4)))
}

func TestVecDistance(t *testing.T) {
	require.Equal(t, float32(5), NewVec2(0, 0).Distance(NewVec2(3, 4)))
	require.Equal(t, float32(3), NewVec3Zero().Distance(NewVec3(1, 2, 2)))
	require.Equal(t, float32(9), NewVec3Zero().DistanceSquared(NewVec3(1, 2, 2)))
}

func TestVecLerp(t *testing.T) {
	a, b := NewVec3(1, 2, 3), NewVec3(-3, 8, 0)
	require.True(t, a.Equals(a.Lerp(b, 0)))
	require.True(t, b.Equals(a.Lerp(b, 1)))
	require.True(t, NewVec3(-1, 5, 1.5).Equals(a.Lerp(b, 0.5)))

	// amount is not clamped
	require.True(t, NewVec3(-7, 14, -3).Compare(a.Lerp(b, 2), tolerance))

	require.True(t, NewVec2(1, 1).Equals(NewVec2Zero().Lerp(NewVec2(2, 2), 0.5)))
	require.True(t, NewVec4One().Equals(NewVec4Zero().Lerp(NewVec4One(), 1)))
}

func TestVec3SmoothStep(t *testing.T) {
	a, b := NewVec3Zero(), NewVec3(10, 20, 30)
	require.True(t, a.Equals(a.SmoothStep(b, 0)))
	require.True(t, b.Equals(a.SmoothStep(b, 1)))
	require.True(t, b.Equals(a.SmoothStep(b, 7)))
	require.True(t, NewVec3(5, 10, 15).Compare(a.SmoothStep(b, 0.5), tolerance))
}

func TestVec3Splines(t *testing.T) {
	p0, p1, p2, p3 := NewVec3(0, 0, 0), NewVec3(1, 1, 0), NewVec3(2, 0, 1), NewVec3(3, 1, 1)
	require.True(t, p1.Compare(p0.CatmullRom(p1, p2, p3, 0), tolerance))
	require.True(t, p2.Compare(p0.CatmullRom(p1, p2, p3, 1), tolerance))

	t1, t2 := NewVec3(1, 0, 0), NewVec3(0, 1, 0)
	require.True(t, p0.Compare(p0.Hermite(t1, p3, t2, 0), tolerance))
	require.True(t, p3.Compare(p0.Hermite(t1, p3, t2, 1), tolerance))
}

func TestVecBarycentric(t *testing.T) {
	a, b, c := NewVec3(0, 0, 0), NewVec3(4, 0, 0), NewVec3(0, 4, 0)
	require.True(t, a.Equals(a.Barycentric(b, c, 0, 0)))
	require.True(t, b.Equals(a.Barycentric(b, c, 1, 0)))
	require.True(t, c.Equals(a.Barycentric(b, c, 0, 1)))
	require.True(t, NewVec3(1, 2, 0).Equals(a.Barycentric(b, c, 0.25, 0.5)))

	require.True(t, NewVec2(1, 2).Equals(NewVec2Zero().Barycentric(NewVec2(4, 0), NewVec2(0, 4), 0.25, 0.5)))
}

func TestVecMinMaxClamp(t *testing.T) {
	a, b := NewVec3(1, 5, -2), NewVec3(3, 0, -1)
	require.True(t, NewVec3(1, 0, -2).Equals(a.Min(b)))
	require.True(t, NewVec3(3, 5, -1).Equals(a.Max(b)))

	clamped := NewVec3(-5, 0.5, 10).Clamp(NewVec3Zero(), NewVec3One())
	require.True(t, NewVec3(0, 0.5, 1).Equals(clamped))

	// An inverted range resolves to min because max is applied first.
	inverted := NewVec3(0.5, 0.5, 0.5).Clamp(NewVec3One(), NewVec3Zero())
	require.True(t, NewVec3One().Equals(inverted))

	require.True(t, NewVec2(0, 1).Equals(NewVec2(-1, 2).Clamp(NewVec2Zero(), NewVec2One())))
	require.True(t, NewVec4(0, 1, 0.5, 1).Equals(NewVec4(-1, 2, 0.5, 3).Clamp(NewVec4Zero(), NewVec4One())))
}

func TestVecReflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	require.True(t, NewVec3(1, 1, 0).Equals(v.Reflect(NewVec3Up())))
	require.True(t, NewVec2(1, 1).Equals(NewVec2(1, -1).Reflect(NewVec2Up())))
}

func TestVecTransform(t *testing.T) {
	require.True(t, NewVec3(1, 2, 3).Equals(NewVec3Zero().Transform(NewMat4Translation(NewVec3(1, 2, 3)))))

	translation := NewMat4Translation(NewVec3(10, 20, 30))

	require.True(t, NewVec3(11, 22, 33).Equals(NewVec3(1, 2, 3).Transform(translation)))
	require.True(t, NewVec3(1, 2, 3).Equals(NewVec3(1, 2, 3).TransformNormal(translation)))

	require.True(t, NewVec2(11, 22).Equals(NewVec2(1, 2).Transform(translation)))
	require.True(t, NewVec2(1, 2).Equals(NewVec2(1, 2).TransformNormal(translation)))

	require.True(t, NewVec4(11, 22, 33, 1).Equals(NewVec4(1, 2, 3, 1).Transform(translation)))
	require.True(t, NewVec4(1, 2, 3, 0).Equals(NewVec4(1, 2, 3, 0).Transform(translation)))
}

func TestVec3TransformQuaternion(t *testing.T) {
	axis := NewVec3(1, 2, 3).Normalize()
	q := NewQuatFromAxisAngle(axis, 1.2, false)
	m := NewMat4FromQuaternion(q)

	for _, v := range []Vec3{{1, 0, 0}, {0, 1, 0}, {-2, 5, 0.5}} {
		require.True(t, v.Transform(m).Compare(v.TransformQuaternion(q), tolerance))
	}

	// A quarter turn around Y takes +X to -Z.
	quarter := NewQuatFromAxisAngle(NewVec3Up(), K_HALF_PI, false)
	require.True(t, NewVec3(0, 0, -1).Compare(NewVec3(1, 0, 0).TransformQuaternion(quarter), tolerance))
}

func TestVecConversions(t *testing.T) {
	v := NewVec3(1, 2, 3)
	require.True(t, NewVec4(1, 2, 3, 4).Equals(v.ToVec4(4)))
	require.True(t, NewVec4(1, 2, 3, 4).Equals(NewVec4FromVec3(v, 4)))
	require.True(t, v.Equals(NewVec4(1, 2, 3, 4).ToVec3()))
	require.True(t, v.Equals(NewVec3FromVec4(NewVec4(1, 2, 3, 4))))
}

func TestVecDirections(t *testing.T) {
	require.True(t, NewVec3(0, 1, 0).Equals(NewVec3Up()))
	require.True(t, NewVec3(0, -1, 0).Equals(NewVec3Down()))
	require.True(t, NewVec3(-1, 0, 0).Equals(NewVec3Left()))
	require.True(t, NewVec3(1, 0, 0).Equals(NewVec3Right()))
	require.True(t, NewVec3(0, 0, -1).Equals(NewVec3Forward()))
	require.True(t, NewVec3(0, 0, 1).Equals(NewVec3Back()))
	require.True(t, NewVec2(0, 1).Equals(NewVec2Up()))
}

func TestVecEquality(t *testing.T) {
	require.True(t, NewVec3(1, 2, 3).Equals(NewVec3(1, 2, 3)))
	require.False(t, NewVec3(1, 2, 3).Equals(NewVec3(1, 2, 3.0001)))
	require.True(t, NewVec3(1, 2, 3).Compare(NewVec3(1, 2, 3.0001), 0.001))
	require.False(t, NewVec2(1, 2).Equals(NewVec2(2, 1)))
	require.False(t, NewVec4(1, 2, 3, 4).Compare(NewVec4(1, 2, 3, 5), 0.5))
}

func TestVecString(t *testing.T) {
	require.Equal(t, "(1, 2)", NewVec2(1, 2).String())
	require.Equal(t, "(1, 2.5, -3)", NewVec3(1, 2.5, -3).String())
	require.Equal(t, "(1, 2, 3, 4)", NewVec4(1, 2, 3, 4).String())
}
