package systems

import (
	"math"

	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/shared/gamemath"
	"github.com/automoto/vinehop/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebris integrates detached pieces under gravity and resolves them
// against the level and each other.
func UpdateDebris(ecs *ecs.ECS) {
	w := ecs.World
	dt := GetClock(w).Delta()
	if dt <= 0 {
		return
	}

	var pieces []*donburi.Entry
	components.RigidBody.Each(w, func(e *donburi.Entry) {
		pieces = append(pieces, e)
	})

	damping := math.Max(0, 1-cfg.Physics.AngularDamping*dt)
	for _, e := range pieces {
		rb := components.RigidBody.Get(e)
		tr := components.Transform.Get(e)

		rb.Velocity[1] += cfg.Physics.Gravity * dt
		tr.Position = tr.Position.Add(rb.Velocity.Mul(dt))
		tr.Rotation = gamemath.IntegrateRotation(tr.Rotation, rb.AngularVelocity, dt)
		rb.AngularVelocity = rb.AngularVelocity.Mul(damping)

		if e.HasComponent(components.Collider) {
			col := components.Collider.Get(e)
			col.Bounds = gamemath.OrientedBounds(tr.Position, rb.HalfExtents, tr.Rotation)
			resolveAgainstLevel(w, e, rb, tr, col, dt)
			syncObject(w, e, col.Bounds)
		}
	}

	separatePieces(w, pieces)
}

func resolveAgainstLevel(w donburi.World, e *donburi.Entry, rb *components.RigidBodyData, tr *components.TransformData, col *components.ColliderData, dt float64) {
	for _, other := range queryBox(w, col.Bounds, tags.Blocking...) {
		if other.Entity() == e.Entity() || !other.HasComponent(components.Collider) {
			continue
		}
		oc := components.Collider.Get(other)
		if !oc.Enabled || oc.Trigger || !col.Bounds.Overlaps(oc.Bounds) {
			continue
		}

		axis, push := penetration(col.Bounds, oc.Bounds)
		var d mgl64.Vec3
		d[axis] = push
		tr.Position = tr.Position.Add(d)
		col.Bounds = col.Bounds.Translate(d)

		if rb.Velocity[axis]*push < 0 {
			rb.Velocity[axis] *= -cfg.Physics.Restitution
		}
		if axis == 1 && push > 0 {
			friction := math.Max(0, 1-cfg.Physics.GroundFriction*dt)
			rb.Velocity[0] *= friction
			rb.Velocity[2] *= friction
		}
	}
}

// separatePieces pushes overlapping pieces apart and swaps their velocities
// along the contact axis, damped by restitution.
func separatePieces(w donburi.World, pieces []*donburi.Entry) {
	for _, a := range pieces {
		if !a.Valid() || !a.HasComponent(components.Collider) {
			continue
		}
		ac := components.Collider.Get(a)
		for _, b := range queryBox(w, ac.Bounds, tags.ResolvDebris) {
			if b.Entity() <= a.Entity() || !b.HasComponent(components.RigidBody) || !b.HasComponent(components.Collider) {
				continue
			}
			bc := components.Collider.Get(b)
			if !ac.Bounds.Overlaps(bc.Bounds) {
				continue
			}

			axis, push := penetration(ac.Bounds, bc.Bounds)
			var d mgl64.Vec3
			d[axis] = push / 2
			moveDebris(a, ac, d)
			moveDebris(b, bc, d.Mul(-1))

			ra := components.RigidBody.Get(a)
			rbb := components.RigidBody.Get(b)
			va, vb := ra.Velocity[axis], rbb.Velocity[axis]
			if (va-vb)*push < 0 {
				ra.Velocity[axis] = vb * cfg.Physics.Restitution
				rbb.Velocity[axis] = va * cfg.Physics.Restitution
			}
			syncObject(w, a, ac.Bounds)
			syncObject(w, b, bc.Bounds)
		}
	}
}

func moveDebris(e *donburi.Entry, col *components.ColliderData, d mgl64.Vec3) {
	tr := components.Transform.Get(e)
	tr.Position = tr.Position.Add(d)
	col.Bounds = col.Bounds.Translate(d)
}

// penetration returns the axis of least overlap between a and b and the signed
// distance that moves a out of b along it.
func penetration(a, b gamemath.AABB) (int, float64) {
	best, push := 0, math.Inf(1)
	ca, cb := a.Center(), b.Center()
	for i := 0; i < 3; i++ {
		depth := math.Min(a.Max[i]-b.Min[i], b.Max[i]-a.Min[i])
		if depth < math.Abs(push) {
			best = i
			push = depth
			if ca[i] < cb[i] {
				push = -depth
			}
		}
	}
	return best, push
}
