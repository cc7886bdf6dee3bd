package systems

import (
	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/logging"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// boostSlot is the HUD slot the overflow boost animates.
const boostSlot = "overflow"

// UpdateBoost grants the overflow boost on the boost edge once every normal
// collectible is in, and restores the speeds when it runs out.
func UpdateBoost(ecs *ecs.ECS) {
	w := ecs.World
	dt := GetClock(w).Delta()

	components.Boost.Each(w, func(e *donburi.Entry) {
		b := components.Boost.Get(e)
		loco := components.Locomotion.Get(e)

		if b.Active {
			b.Remaining -= dt
			if b.Remaining <= 0 {
				loco.ReleaseSpeeds(components.SpeedOwnerBoost, b.SavedSpeeds)
				b.Active = false
				b.Remaining = 0
			}
			return
		}

		if !components.PlayerInput.Get(e).Action(cfg.ActionBoost).JustPressed {
			return
		}
		inv := components.Inventory.Get(e)
		if !inv.AllNormalCollected() || !loco.LeaseSpeeds(components.SpeedOwnerBoost) {
			return
		}

		b.SavedSpeeds = loco.Speeds()
		m := cfg.Boost.Multiplier
		loco.SetSpeeds(components.SpeedOwnerBoost, components.MovementSpeeds{
			Walk:   b.SavedSpeeds.Walk * m,
			Sprint: b.SavedSpeeds.Sprint * m,
			Jump:   b.SavedSpeeds.Jump * m,
		})
		b.Active = true
		b.Remaining = cfg.Boost.Duration
		inv.NormalCollected = 0

		StartSlotEffect(w, boostSlot)
		logging.Named("boost").Debugw("overflow boost", "entity", e.Entity(), "duration", b.Remaining)
	})
}
