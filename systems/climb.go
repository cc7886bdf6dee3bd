package systems

import (
	"math"

	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/logging"
	"github.com/automoto/vinehop/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClimb grips and releases vines from this tick's trigger changes and
// drives every climbing body around its vine.
// Must run after UpdateTriggers and before UpdateLocomotion.
func UpdateClimb(ecs *ecs.ECS) {
	w := ecs.World
	dt := GetClock(w).Delta()

	components.Climb.Each(w, func(e *donburi.Entry) {
		climb := components.Climb.Get(e)
		state := components.TriggerState.Get(e)

		if climb.Vine != donburi.Null && state.HasExited(climb.Vine) {
			StopClimbing(w, e)
		}
		for _, id := range state.Entered {
			if !w.Valid(id) {
				continue
			}
			vine := w.Entry(id)
			if vine.HasComponent(components.Climbable) {
				StartClimbing(w, e, vine)
			}
		}

		if components.Overlay.Get(e).Climbing {
			updateClimbing(w, e, dt)
		}
	})
}

// StartClimbing grips vine: the body snaps onto the vine's anchor line, keeps its
// facing, and backs off by the orbit radius. Locomotion is suspended until the
// climb ends.
func StartClimbing(w donburi.World, e *donburi.Entry, vine *donburi.Entry) {
	CancelDash(e)

	climb := components.Climb.Get(e)
	tr := components.Transform.Get(e)
	anchor := components.Transform.Get(vine).Position

	climb.Vine = vine.Entity()
	climb.Anchor = anchor
	climb.OrbitRadius = orbitRadius(vine)
	components.Overlay.Get(e).Climbing = true

	loco := components.Locomotion.Get(e)
	loco.VerticalVelocity = 0
	loco.Carry = mgl64.Vec3{}

	tr.Position[0] = anchor.X()
	tr.Position[2] = anchor.Z()
	// Already on the line, so there is no direction to face; the current
	// facing is kept.
	if rot, ok := gamemath.LookRotation(anchor.Sub(tr.Position)); ok {
		tr.Rotation = rot
	}
	tr.Position = tr.Position.Sub(gamemath.Flatten(tr.Forward()).Mul(climb.OrbitRadius))
	syncObject(w, e, components.Body.Get(e).Bounds(tr))

	logging.Named("climb").Debugw("climb started", "entity", e.Entity(), "radius", climb.OrbitRadius)
}

// StopClimbing releases the vine and hands control back to locomotion.
func StopClimbing(w donburi.World, e *donburi.Entry) {
	overlay := components.Overlay.Get(e)
	if !overlay.Climbing {
		return
	}
	overlay.Climbing = false

	climb := components.Climb.Get(e)
	climb.Vine = donburi.Null

	loco := components.Locomotion.Get(e)
	if loco.Mode != components.ModeDashing {
		loco.Mode = modeFromGround(components.Body.Get(e))
	}
	logging.Named("climb").Debugw("climb stopped", "entity", e.Entity())
}

// orbitRadius derives the climbing distance from the vine's collider. Capsule
// vines are orbited just inside their radius so the body stays in the trigger.
func orbitRadius(vine *donburi.Entry) float64 {
	if vine.HasComponent(components.Collider) {
		col := components.Collider.Get(vine)
		if col.Shape == components.ShapeCapsule {
			return math.Max(cfg.Climb.MinOrbitRadius, col.Radius-cfg.Climb.RadiusInset)
		}
	}
	return cfg.Climb.FallbackOrbitRadius
}

func updateClimbing(w donburi.World, e *donburi.Entry, dt float64) {
	climb := components.Climb.Get(e)
	tr := components.Transform.Get(e)
	in := components.PlayerInput.Get(e)
	anchor := climb.Anchor

	if math.Abs(in.MoveX) > cfg.Climb.OrbitInputDeadzone {
		degrees := -in.MoveX * cfg.Climb.RotationSpeed * dt
		tr.Position = gamemath.RotateAroundY(tr.Position, anchor, degrees)
		tr.Rotation = gamemath.YawRotation(mgl64.DegToRad(degrees)).Mul(tr.Rotation).Normalize()
	}

	target := anchor.Add(orbitDirection(tr, anchor).Mul(climb.OrbitRadius))
	target[1] = tr.Position.Y()
	correction := target.Sub(tr.Position)
	vertical := gamemath.Up.Mul(in.MoveY * cfg.Climb.Speed * dt)

	total := correction.Add(vertical)
	if total.LenSqr() > 1e-5 {
		MoveBody(w, e, total)
	}

	toAnchor := gamemath.Flatten(anchor.Sub(tr.Position))
	if toAnchor.LenSqr() > 0.001 {
		if rot, ok := gamemath.LookRotation(toAnchor); ok {
			tr.Rotation = rot
		}
	}

	if in.Action(cfg.ActionJump).JustPressed {
		away := tr.Forward().Mul(-1)
		StopClimbing(w, e)
		jump := gamemath.JumpVelocity(components.Locomotion.Get(e).Speeds().Jump, cfg.Player.Gravity)
		InitiateExternalJump(w, e, away, jump)
	}
}

// orbitDirection is the horizontal direction from the anchor to the body. When
// the body sits on the anchor line it falls back to the facing, then to world
// right.
func orbitDirection(tr *components.TransformData, anchor mgl64.Vec3) mgl64.Vec3 {
	dir := gamemath.Flatten(tr.Position.Sub(anchor))
	if dir.LenSqr() < 1e-4 {
		dir = gamemath.Flatten(tr.Forward())
		if dir.LenSqr() < 1e-4 {
			dir = gamemath.Right
		}
	}
	return dir.Normalize()
}
