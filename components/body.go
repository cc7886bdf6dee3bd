package components

import (
	"github.com/automoto/vinehop/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Hit is a solid contact reported by a body move.
type Hit struct {
	Point  mgl64.Vec3
	Normal mgl64.Vec3
	Entity donburi.Entity
}

// BodyData is a kinematic capsule approximated by an upright box. Radius and
// Height are unscaled; the owner's Transform.Scale sizes the box.
type BodyData struct {
	Radius     float64
	Height     float64
	StepOffset float64

	// Grounded is refreshed by every move.
	Grounded bool
	Ground   donburi.Entity

	// Velocity is the last velocity handed to the move.
	Velocity mgl64.Vec3
	// Pending is the displacement the kinematics system applies this tick.
	Pending mgl64.Vec3
	// External is set by whatever the body rides and cleared once applied.
	External mgl64.Vec3

	// Hits accumulates contacts until the power-up system consumes them.
	Hits []Hit
}

var Body = donburi.NewComponentType[BodyData]()

// Bounds returns the body box for a pose.
func (b *BodyData) Bounds(t *TransformData) gamemath.AABB {
	return gamemath.BoxFromFeet(t.Position,
		b.Radius*t.Scale.X(), b.Radius*t.Scale.Z(), b.Height*t.Scale.Y())
}
