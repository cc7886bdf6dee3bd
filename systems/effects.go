package systems

import (
	"math"

	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes timed effects (piece fades, HUD slot effects, auto-destroy)
func UpdateEffects(ecs *ecs.ECS) {
	clock := GetClock(ecs.World)
	updateFades(ecs.World, clock.Delta())
	updateSlotEffects(ecs.World, clock.UnscaledDelta())
	updateAutoDestroy(ecs.World, clock.Delta())
}

// updateFades waits out each piece's fade delay, then tweens its alpha to zero
// and removes it.
func updateFades(w donburi.World, dt float64) {
	var toDestroy []*donburi.Entry

	components.Fade.Each(w, func(e *donburi.Entry) {
		f := components.Fade.Get(e)
		step := dt
		if f.Tween == nil {
			f.Delay -= step
			if f.Delay > 0 {
				return
			}
			step = -f.Delay
			f.Delay = 0
			if f.Duration <= 0 {
				toDestroy = append(toDestroy, e)
				return
			}
			from := float32(1)
			if e.HasComponent(components.Visual) {
				from = float32(components.Visual.Get(e).Alpha)
			}
			f.Tween = gween.New(from, 0, float32(f.Duration), ease.Linear)
		}

		alpha, done := f.Tween.Update(float32(step))
		if e.HasComponent(components.Visual) {
			components.Visual.Get(e).Alpha = math.Max(float64(alpha), 0)
		}
		if done {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		destroyEntry(e)
	}
}

// updateAutoDestroy removes entities whose countdown ran out. Cascading entries
// take their still-attached parts with them.
func updateAutoDestroy(w donburi.World, dt float64) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(w, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.Remaining -= dt
		if ad.Remaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		if !e.Valid() {
			continue
		}
		if components.AutoDestroy.Get(e).Cascade {
			removeAttached(w, attachedParts(e))
		}
		destroyEntry(e)
	}
}

func attachedParts(e *donburi.Entry) []donburi.Entity {
	switch {
	case e.HasComponent(components.Destructible):
		return append([]donburi.Entity(nil), components.Destructible.Get(e).Parts...)
	case e.HasComponent(components.Part):
		return append([]donburi.Entity(nil), components.Part.Get(e).Children...)
	}
	return nil
}

// removeAttached removes parts still hanging off a removed node. Parts with a
// schedule of their own are left to it.
func removeAttached(w donburi.World, ids []donburi.Entity) {
	for _, id := range ids {
		if !w.Valid(id) {
			continue
		}
		part := w.Entry(id)
		if part.HasComponent(components.AutoDestroy) || part.HasComponent(components.Fade) {
			continue
		}
		removeAttached(w, attachedParts(part))
		destroyEntry(part)
	}
}

// StartSlotEffect plays the HUD pulse and spin for item. A running effect is
// replaced rather than stacked.
func StartSlotEffect(w donburi.World, item string) {
	entry, ok := components.SlotEffect.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.SlotEffect))
	}

	half := float32(cfg.HUD.PulseDuration / 2)
	peak := float32(cfg.HUD.PulseScale)
	components.SlotEffect.SetValue(entry, components.SlotEffectData{
		Item: item,
		Pulse: gween.NewSequence(
			gween.New(1, peak, half, ease.OutQuad),
			gween.New(peak, 1, half, ease.InQuad),
		),
		Spin:  gween.New(0, 2*math.Pi, float32(cfg.HUD.SpinDuration), ease.InOutQuad),
		Scale: 1,
	})
}

// updateSlotEffects runs on unscaled time so the HUD still animates while the
// simulation is frozen.
func updateSlotEffects(w donburi.World, dt float64) {
	components.SlotEffect.Each(w, func(e *donburi.Entry) {
		fx := components.SlotEffect.Get(e)
		if fx.Done {
			return
		}
		scale, _, pulseDone := fx.Pulse.Update(float32(dt))
		angle, spinDone := fx.Spin.Update(float32(dt))
		fx.Scale = float64(scale)
		fx.Angle = float64(angle)
		if pulseDone && spinDone {
			fx.Scale = 1
			fx.Angle = 0
			fx.Done = true
		}
	})
}
