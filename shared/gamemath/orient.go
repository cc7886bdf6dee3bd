package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// World axes. Yaw rotates +Z (forward) toward +X (right).
var (
	Up      = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
	Right   = mgl64.Vec3{1, 0, 0}
)

// YawRotation returns a rotation of yaw radians about the up axis.
func YawRotation(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, Up)
}

// ForwardOf returns the facing direction of q.
func ForwardOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(Forward)
}

// YawOf returns the heading of q in radians.
func YawOf(q mgl64.Quat) float64 {
	f := ForwardOf(q)
	return math.Atan2(f.X(), f.Z())
}

// Flatten drops the vertical component of v.
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// LookRotation returns the yaw rotation facing dir. It reports false when dir has
// no horizontal component.
func LookRotation(dir mgl64.Vec3) (mgl64.Quat, bool) {
	flat := Flatten(dir)
	if flat.LenSqr() < 1e-12 {
		return mgl64.QuatIdent(), false
	}
	return YawRotation(math.Atan2(flat.X(), flat.Z())), true
}

// SlerpClamped interpolates from a to b along the shorter arc. t is clamped to
// [0, 1].
func SlerpClamped(a, b mgl64.Quat, t float64) mgl64.Quat {
	t = mgl64.Clamp(t, 0, 1)
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t).Normalize()
}

// RotateAroundY rotates p about the vertical line through pivot by degrees.
func RotateAroundY(p, pivot mgl64.Vec3, degrees float64) mgl64.Vec3 {
	q := YawRotation(mgl64.DegToRad(degrees))
	return pivot.Add(q.Rotate(p.Sub(pivot)))
}

// CameraRelative maps stick input (x right, y forward) into world space for a
// camera looking along yaw.
func CameraRelative(x, y, yaw float64) mgl64.Vec3 {
	return YawRotation(yaw).Rotate(mgl64.Vec3{x, 0, y})
}
