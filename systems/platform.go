package systems

import (
	"github.com/automoto/vinehop/components"
	"github.com/automoto/vinehop/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms advances moving platforms and hands each one's velocity to the
// bodies standing on it.
// Must run before UpdateLocomotion.
func UpdatePlatforms(ecs *ecs.ECS) {
	w := ecs.World
	dt := GetClock(w).Delta()

	components.MovingPlatform.Each(w, func(e *donburi.Entry) {
		mp := components.MovingPlatform.Get(e)
		tr := components.Transform.Get(e)
		col := components.Collider.Get(e)

		if dt <= 0 || mp.Sequence == nil {
			mp.Velocity = mgl64.Vec3{}
			return
		}

		offset, _, _ := mp.Sequence.Update(float32(dt))
		prev := tr.Position
		mp.Offset = float64(offset)
		tr.Position = mp.Base.Add(mp.Axis.Mul(mp.Offset))
		mp.Velocity = tr.Position.Sub(prev).Mul(1 / dt)

		col.Bounds = gamemath.BoxFromCenter(tr.Position, col.Bounds.HalfExtents())
		syncObject(w, e, col.Bounds)
	})

	components.Body.Each(w, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if !body.Grounded || body.Ground == donburi.Null || !w.Valid(body.Ground) {
			return
		}
		ground := w.Entry(body.Ground)
		if !ground.HasComponent(components.MovingPlatform) {
			return
		}
		SetExternalVelocity(e, components.MovingPlatform.Get(ground).Velocity)
	})
}

// SetExternalVelocity sets the velocity added on top of e's own motion for the
// current tick.
func SetExternalVelocity(e *donburi.Entry, v mgl64.Vec3) {
	components.Body.Get(e).External = v
}
