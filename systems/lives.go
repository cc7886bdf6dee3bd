package systems

import (
	"github.com/automoto/vinehop/components"
	"github.com/automoto/vinehop/logging"
	"github.com/automoto/vinehop/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLives costs a life for every dead zone entered, and for every hazard or
// enemy touched while vulnerable. The last life ends the run.
// Must run after UpdateTriggers.
func UpdateLives(ecs *ecs.ECS) {
	w := ecs.World
	if GetGameState(w).Ended() {
		return
	}

	var fallen []*donburi.Entry
	components.Lives.Each(w, func(e *donburi.Entry) {
		state := components.TriggerState.Get(e)
		invulnerable := e.HasComponent(components.Overlay) && components.Overlay.Get(e).Invulnerable
		for _, id := range state.Entered {
			if !w.Valid(id) {
				continue
			}
			other := w.Entry(id)
			harmful := other.HasComponent(tags.Hazard) || other.HasComponent(tags.Enemy)
			if other.HasComponent(tags.DeadZone) || (harmful && !invulnerable) {
				fallen = append(fallen, e)
				return
			}
		}
	})

	for _, e := range fallen {
		LoseLife(w, e)
	}
}

// LoseLife takes one life from e and respawns it, or ends the run when none
// are left.
func LoseLife(w donburi.World, e *donburi.Entry) {
	lives := components.Lives.Get(e)
	if lives.Lives <= 0 {
		return
	}
	lives.Lives--
	components.LifeLostEvent.Publish(w, components.LifeLost{Entity: e.Entity(), Remaining: lives.Lives})
	logging.Named("lives").Infow("life lost", "entity", e.Entity(), "remaining", lives.Lives)

	if lives.Lives == 0 {
		EndGame(w, components.OutcomeLost)
		return
	}
	Respawn(w, e)
}

// Respawn puts e back at its spawn point at rest.
func Respawn(w donburi.World, e *donburi.Entry) {
	StopClimbing(w, e)
	CancelDash(e)

	tr := components.Transform.Get(e)
	tr.Position = components.Lives.Get(e).Spawn

	loco := components.Locomotion.Get(e)
	loco.VerticalVelocity = 0
	loco.Horizontal = mgl64.Vec3{}
	loco.Carry = mgl64.Vec3{}
	loco.Mode = components.ModeAirborne

	body := components.Body.Get(e)
	body.Grounded = false
	body.Ground = donburi.Null
	body.Velocity = mgl64.Vec3{}
	body.Pending = mgl64.Vec3{}
	body.External = mgl64.Vec3{}
	syncObject(w, e, body.Bounds(tr))
}
