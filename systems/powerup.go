package systems

import (
	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/logging"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePowerUps runs the scale power-up: it arms when the item shows up in the
// store, activates on the activation edge, and expires after its duration.
// While active, solid contacts break destructibles.
// Must run after UpdateKinematics.
func UpdatePowerUps(ecs *ecs.ECS) {
	w := ecs.World
	dt := GetClock(w).Delta()

	var owners []*donburi.Entry
	components.ScalePowerUp.Each(w, func(e *donburi.Entry) {
		owners = append(owners, e)
	})

	for _, e := range owners {
		p := components.ScalePowerUp.Get(e)
		switch p.State {
		case components.PowerUpInactive:
			if p.Store == nil {
				break
			}
			available := p.Store.Contains(cfg.ScalePowerUp.Item)
			if available && !p.ItemSeen {
				setPowerUpState(w, e, p, components.PowerUpArmed)
			}
			p.ItemSeen = available
		case components.PowerUpArmed:
			if components.PlayerInput.Get(e).Action(cfg.ActionActivate).JustPressed {
				ActivatePowerUp(w, e)
			}
		case components.PowerUpActive:
			breakContacts(w, e)
			p = components.ScalePowerUp.Get(e)
			p.Remaining -= dt
			if p.Remaining <= 0 {
				ExpirePowerUp(w, e)
			}
		}

		if e.HasComponent(components.Body) {
			body := components.Body.Get(e)
			body.Hits = body.Hits[:0]
		}
	}
}

// ActivatePowerUp consumes the item and enlarges the body. It does nothing
// unless the power-up is armed and the movement speeds are free. A failed
// consume disarms the power-up.
func ActivatePowerUp(w donburi.World, e *donburi.Entry) bool {
	p := components.ScalePowerUp.Get(e)
	if p.State != components.PowerUpArmed || p.Store == nil {
		return false
	}
	loco := components.Locomotion.Get(e)
	if loco.SpeedOwner() != components.SpeedOwnerNone {
		return false
	}

	item := cfg.ScalePowerUp.Item
	ok := p.Store.Remove(item)
	components.ItemConsumedEvent.Publish(w, components.ItemConsumed{Entity: e.Entity(), Item: item, OK: ok})
	if !ok {
		logging.Named("powerup").Errorw("power-up item missing at activation", "item", item, "entity", e.Entity())
		setPowerUpState(w, e, p, components.PowerUpInactive)
		p.ItemSeen = p.Store.Contains(item)
		return false
	}

	tr := components.Transform.Get(e)
	p.SavedScale = tr.Scale
	p.SavedSpeeds = loco.Speeds()

	factor := cfg.ScalePowerUp.SlowMotionFactor
	loco.LeaseSpeeds(components.SpeedOwnerScale)
	loco.SetSpeeds(components.SpeedOwnerScale, components.MovementSpeeds{
		Walk:   p.SavedSpeeds.Walk * factor,
		Sprint: p.SavedSpeeds.Sprint * factor,
		Jump:   p.SavedSpeeds.Jump,
	})
	tr.Scale = cfg.ScalePowerUp.ScaledSize

	overlay := components.Overlay.Get(e)
	overlay.ScaledUp = true
	overlay.Invulnerable = true

	p.Remaining = cfg.ScalePowerUp.Duration
	setPowerUpState(w, e, p, components.PowerUpActive)

	// The grown body may already sit inside its neighbours.
	if e.HasComponent(components.Body) {
		MoveBody(w, e, mgl64.Vec3{})
		breakContacts(w, e)
	}
	StartSlotEffect(w, item)
	return true
}

// ExpirePowerUp restores the scale and speeds saved at activation.
func ExpirePowerUp(w donburi.World, e *donburi.Entry) {
	p := components.ScalePowerUp.Get(e)
	if p.State != components.PowerUpActive {
		return
	}

	tr := components.Transform.Get(e)
	tr.Scale = p.SavedScale
	components.Locomotion.Get(e).ReleaseSpeeds(components.SpeedOwnerScale, p.SavedSpeeds)

	overlay := components.Overlay.Get(e)
	overlay.ScaledUp = false
	overlay.Invulnerable = false

	p.Remaining = 0
	p.ItemSeen = false
	setPowerUpState(w, e, p, components.PowerUpInactive)

	if e.HasComponent(components.Body) {
		syncObject(w, e, components.Body.Get(e).Bounds(tr))
	}
}

// breakContacts turns the body's solid contacts this tick into destruction. The
// hit point is the impact origin and the body position the force source, both
// for the object hit and for everything the area check finds around it.
func breakContacts(w donburi.World, e *donburi.Entry) {
	if !e.HasComponent(components.Body) {
		return
	}
	hits := append([]components.Hit(nil), components.Body.Get(e).Hits...)
	source := components.Transform.Get(e).Position

	for _, hit := range hits {
		if !w.Valid(hit.Entity) {
			continue
		}
		target := w.Entry(hit.Entity)
		if !target.HasComponent(components.Destructible) {
			continue
		}
		TriggerDestruction(w, target, hit.Point, source)
		CheckAreaDamage(w, hit.Point, cfg.ScalePowerUp.AreaRadius, cfg.ScalePowerUp.DestructibleMask, source)
	}
}

func setPowerUpState(w donburi.World, e *donburi.Entry, p *components.ScalePowerUpData, to components.PowerUpState) {
	if p.State == to {
		return
	}
	from := p.State
	p.State = to
	components.PowerUpChangedEvent.Publish(w, components.PowerUpChanged{Entity: e.Entity(), From: from, To: to})
	logging.Named("powerup").Debugw("power-up state", "entity", e.Entity(), "from", from, "to", to)
}
