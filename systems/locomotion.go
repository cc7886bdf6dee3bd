package systems

import (
	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const dashEpsilon = 1e-9

// UpdateLocomotion turns each player's input sample into a pending
// displacement. Climbing bodies are left to UpdateClimb.
// Must run after UpdateClimb and before UpdateKinematics.
func UpdateLocomotion(ecs *ecs.ECS) {
	w := ecs.World
	clock := GetClock(w)

	components.Locomotion.Each(w, func(e *donburi.Entry) {
		in := components.PlayerInput.Get(e)
		if in.Action(cfg.ActionDash).JustPressed {
			StartDash(w, e)
		}

		loco := components.Locomotion.Get(e)
		if loco.Mode == components.ModeDashing {
			updateDash(e, loco, clock.UnscaledDelta())
			return
		}
		if components.Overlay.Get(e).Climbing {
			return
		}
		updateMovement(w, e, loco, clock.Delta())
	})
}

func updateMovement(w donburi.World, e *donburi.Entry, loco *components.LocomotionData, dt float64) {
	body := components.Body.Get(e)
	tr := components.Transform.Get(e)
	in := components.PlayerInput.Get(e)

	switch loco.Mode {
	case components.ModeAirborne:
		if body.Grounded && loco.VerticalVelocity <= 0 {
			loco.Mode = components.ModeGrounded
			loco.VerticalVelocity = cfg.Player.StickVelocity
			loco.Carry = mgl64.Vec3{}
			publishLocomotion(w, e, components.EventLanded)
		}
	case components.ModeGrounded:
		if !body.Grounded {
			loco.Mode = components.ModeAirborne
		}
	}

	if loco.Mode == components.ModeGrounded &&
		loco.VerticalVelocity < cfg.Player.StickThreshold &&
		body.External.Y() <= cfg.Player.ExternalLiftCutoff {
		loco.VerticalVelocity = cfg.Player.StickVelocity
	}

	input := mgl64.Vec3{in.MoveX, 0, in.MoveY}
	loco.Moving = input.Len() > cfg.Player.MoveInputDeadzone

	var dir mgl64.Vec3
	if loco.Moving {
		input = input.Normalize()
		dir = gamemath.CameraRelative(input.X(), input.Z(), in.CameraYaw)
		if dir.LenSqr() > 0.01 {
			if target, ok := gamemath.LookRotation(dir); ok {
				tr.Rotation = gamemath.SlerpClamped(tr.Rotation, target, cfg.Player.RotationSpeed*dt)
			}
		}
	}

	speeds := loco.Speeds()
	jumped := false
	if in.Action(cfg.ActionJump).JustPressed && loco.Mode == components.ModeGrounded && body.Grounded {
		loco.VerticalVelocity = gamemath.JumpVelocity(speeds.Jump, cfg.Player.Gravity)
		loco.Mode = components.ModeAirborne
		if body.External.Y() > 0 {
			body.External[1] = 0
		}
		jumped = true
		publishLocomotion(w, e, components.EventJumped)
	}

	if loco.Mode == components.ModeAirborne && !jumped {
		loco.VerticalVelocity += cfg.Player.Gravity * dt
	}

	speed := speeds.Walk
	if in.Action(cfg.ActionSprint).Pressed {
		speed = speeds.Sprint
	}
	loco.Horizontal = mgl64.Vec3{}
	if loco.Moving {
		loco.Horizontal = dir.Mul(speed)
	}

	velocity := loco.Horizontal.Add(loco.Carry).Add(body.External)
	velocity[1] += loco.VerticalVelocity
	body.Velocity = velocity
	body.Pending = velocity.Mul(dt)
}

// StartDash begins a dash along the body's current facing. It reports false
// while climbing, while already dashing, or before the cooldown has run out.
func StartDash(w donburi.World, e *donburi.Entry) bool {
	loco := components.Locomotion.Get(e)
	if components.Overlay.Get(e).Climbing || loco.Mode == components.ModeDashing {
		return false
	}
	now := GetClock(w).Unscaled
	if loco.HasDashed && now < loco.LastDashStart+cfg.Dash.Cooldown {
		return false
	}

	dir := gamemath.Flatten(components.Transform.Get(e).Forward())
	if dir.LenSqr() < 1e-12 {
		dir = gamemath.Forward
	}
	loco.DashDirection = dir.Normalize()
	loco.DashRemaining = cfg.Dash.Duration
	loco.LastDashStart = now
	loco.HasDashed = true
	loco.Mode = components.ModeDashing
	publishLocomotion(w, e, components.EventDashed)
	return true
}

// CancelDash ends a running dash without moving the body.
func CancelDash(e *donburi.Entry) {
	loco := components.Locomotion.Get(e)
	if loco.Mode != components.ModeDashing {
		return
	}
	loco.DashRemaining = 0
	loco.Mode = modeFromGround(components.Body.Get(e))
}

func updateDash(e *donburi.Entry, loco *components.LocomotionData, dt float64) {
	body := components.Body.Get(e)
	step := dt
	if step > loco.DashRemaining {
		step = loco.DashRemaining
	}
	loco.DashRemaining -= step

	body.Velocity = loco.DashDirection.Mul(cfg.Dash.Speed)
	body.Pending = loco.DashDirection.Mul(cfg.Dash.Speed * step)

	if loco.DashRemaining <= dashEpsilon {
		loco.DashRemaining = 0
		loco.Mode = modeFromGround(body)
	}
}

// InitiateExternalJump launches the body off whatever held it. The horizontal
// push is kept until the body lands; any ridden platform velocity is dropped.
func InitiateExternalJump(w donburi.World, e *donburi.Entry, direction mgl64.Vec3, verticalVelocity float64) {
	loco := components.Locomotion.Get(e)
	body := components.Body.Get(e)

	dir := gamemath.Flatten(direction)
	if dir.LenSqr() > 1e-12 {
		dir = dir.Normalize()
	}
	loco.Carry = dir.Mul(loco.Speeds().Sprint * cfg.Player.JumpOffCarry)
	loco.VerticalVelocity = verticalVelocity
	loco.Mode = components.ModeAirborne
	body.Grounded = false
	body.External = mgl64.Vec3{}
	publishLocomotion(w, e, components.EventJumpedOff)
}

func modeFromGround(body *components.BodyData) components.LocomotionMode {
	if body.Grounded {
		return components.ModeGrounded
	}
	return components.ModeAirborne
}

func publishLocomotion(w donburi.World, e *donburi.Entry, kind components.LocomotionEventKind) {
	components.LocomotionEvents.Publish(w, components.LocomotionEvent{Entity: e.Entity(), Kind: kind})
}
