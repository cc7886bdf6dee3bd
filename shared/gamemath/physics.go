package gamemath

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// JumpVelocity returns the launch speed needed to peak at height under gravity.
// The sign of gravity is ignored.
func JumpVelocity(height, gravity float64) float64 {
	return math.Sqrt(2 * height * math.Abs(gravity))
}

// ExplosionImpulse returns the impulse an explosion at origin imparts on a body.
// closest is the point of the body nearest to origin and center is its centre of
// mass. Bodies further than radius receive nothing; inside it the strength falls
// off linearly. upwards lowers the push origin so bodies are thrown up as well as
// out. A radius of zero disables the falloff.
func ExplosionImpulse(force float64, origin mgl64.Vec3, radius, upwards float64, center, closest mgl64.Vec3) mgl64.Vec3 {
	dist := closest.Sub(origin).Len()
	strength := force
	if radius > 0 {
		if dist > radius {
			return mgl64.Vec3{}
		}
		strength *= 1 - dist/radius
	}

	pushFrom := origin.Sub(Up.Mul(upwards))
	dir := center.Sub(pushFrom)
	if dir.LenSqr() < 1e-12 {
		dir = Up
	}
	return dir.Normalize().Mul(strength)
}

// RandomInUnitSphere returns a uniformly distributed point inside the unit sphere.
func RandomInUnitSphere(rng *rand.Rand) mgl64.Vec3 {
	for {
		p := mgl64.Vec3{
			rng.Float64()*2 - 1,
			rng.Float64()*2 - 1,
			rng.Float64()*2 - 1,
		}
		if p.LenSqr() <= 1 {
			return p
		}
	}
}

// BoxInertia returns the diagonal inertia tensor of a solid box.
func BoxInertia(mass float64, half mgl64.Vec3) mgl64.Vec3 {
	x, y, z := 2*half.X(), 2*half.Y(), 2*half.Z()
	k := mass / 12
	return mgl64.Vec3{
		k * (y*y + z*z),
		k * (x*x + z*z),
		k * (x*x + y*y),
	}
}

// IntegrateRotation advances q by angular velocity w over dt.
func IntegrateRotation(q mgl64.Quat, w mgl64.Vec3, dt float64) mgl64.Quat {
	if w.LenSqr() == 0 {
		return q
	}
	spin := mgl64.Quat{W: 0, V: w}.Mul(q).Scale(0.5 * dt)
	return q.Add(spin).Normalize()
}
