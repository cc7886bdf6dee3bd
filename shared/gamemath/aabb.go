package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Skin is the penetration tolerance used by overlap tests.
const Skin = 1e-6

// AABB is an axis-aligned box in world space.
type AABB struct {
	Min, Max mgl64.Vec3
}

// BoxFromCenter builds a box from its centre and half extents.
func BoxFromCenter(center, half mgl64.Vec3) AABB {
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// BoxFromFeet builds an upright box standing on feet.
func BoxFromFeet(feet mgl64.Vec3, halfX, halfZ, height float64) AABB {
	return AABB{
		Min: mgl64.Vec3{feet.X() - halfX, feet.Y(), feet.Z() - halfZ},
		Max: mgl64.Vec3{feet.X() + halfX, feet.Y() + height, feet.Z() + halfZ},
	}
}

// OrientedBounds returns the box enclosing a rotated box.
func OrientedBounds(center, half mgl64.Vec3, rot mgl64.Quat) AABB {
	ax := rot.Rotate(mgl64.Vec3{half.X(), 0, 0})
	ay := rot.Rotate(mgl64.Vec3{0, half.Y(), 0})
	az := rot.Rotate(mgl64.Vec3{0, 0, half.Z()})
	var ext mgl64.Vec3
	for i := 0; i < 3; i++ {
		ext[i] = math.Abs(ax[i]) + math.Abs(ay[i]) + math.Abs(az[i])
	}
	return BoxFromCenter(center, ext)
}

func (b AABB) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b AABB) HalfExtents() mgl64.Vec3 {
	return b.Max.Sub(b.Min).Mul(0.5)
}

func (b AABB) Translate(d mgl64.Vec3) AABB {
	return AABB{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Union returns the smallest box containing both boxes.
func (b AABB) Union(o AABB) AABB {
	var u AABB
	for i := 0; i < 3; i++ {
		u.Min[i] = math.Min(b.Min[i], o.Min[i])
		u.Max[i] = math.Max(b.Max[i], o.Max[i])
	}
	return u
}

// Overlaps reports whether the boxes interpenetrate by more than Skin.
// Touching faces do not count.
func (b AABB) Overlaps(o AABB) bool {
	for i := 0; i < 3; i++ {
		if b.Min[i] >= o.Max[i]-Skin || b.Max[i] <= o.Min[i]+Skin {
			return false
		}
	}
	return true
}

// OverlapsXZ is Overlaps restricted to the ground plane.
func (b AABB) OverlapsXZ(o AABB) bool {
	for _, i := range [2]int{0, 2} {
		if b.Min[i] >= o.Max[i]-Skin || b.Max[i] <= o.Min[i]+Skin {
			return false
		}
	}
	return true
}

// ClosestPoint returns the point of the box nearest p.
func (b AABB) ClosestPoint(p mgl64.Vec3) mgl64.Vec3 {
	var c mgl64.Vec3
	for i := 0; i < 3; i++ {
		c[i] = mgl64.Clamp(p[i], b.Min[i], b.Max[i])
	}
	return c
}

// DistanceTo returns the distance from p to the box, zero when p is inside.
func (b AABB) DistanceTo(p mgl64.Vec3) float64 {
	return b.ClosestPoint(p).Sub(p).Len()
}
