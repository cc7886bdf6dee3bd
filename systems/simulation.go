package systems

import (
	"github.com/automoto/vinehop/components"
	"github.com/automoto/vinehop/logging"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// Simulation returns the fixed-tick systems in the order they must run. Input
// sampling and the camera are added by the scene ahead of these.
func Simulation() []ecs.System {
	return []ecs.System{
		UpdateClock,
		UpdatePlatforms,
		UpdateTriggers,
		UpdateClimb,
		UpdateLocomotion,
		UpdateEnemies,
		UpdateKinematics,
		UpdatePowerUps,
		UpdateBoost,
		UpdateDebris,
		UpdateEffects,
		UpdateCollectibles,
		UpdateLives,
		UpdateEvents,
	}
}

// UpdateEvents delivers the events published during the tick.
// Must run last.
func UpdateEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}

// SubscribeEventLog logs every gameplay event at debug level.
func SubscribeEventLog(w donburi.World) {
	log := logging.Named("events")
	components.LocomotionEvents.Subscribe(w, func(w donburi.World, e components.LocomotionEvent) {
		log.Debugw("locomotion", "entity", e.Entity, "kind", e.Kind)
	})
	components.PowerUpChangedEvent.Subscribe(w, func(w donburi.World, e components.PowerUpChanged) {
		log.Debugw("power-up", "entity", e.Entity, "from", e.From, "to", e.To)
	})
	components.ItemConsumedEvent.Subscribe(w, func(w donburi.World, e components.ItemConsumed) {
		log.Debugw("item consumed", "entity", e.Entity, "item", e.Item, "ok", e.OK)
	})
	components.DecompositionStartedEvent.Subscribe(w, func(w donburi.World, e components.DecompositionStarted) {
		log.Debugw("decomposition", "entity", e.Entity, "pieces", e.Pieces, "impact", e.Impact)
	})
	components.LifeLostEvent.Subscribe(w, func(w donburi.World, e components.LifeLost) {
		log.Infow("life lost", "entity", e.Entity, "remaining", e.Remaining)
	})
	components.ItemCollectedEvent.Subscribe(w, func(w donburi.World, e components.ItemCollected) {
		log.Debugw("item collected", "entity", e.Entity, "kind", e.Kind, "item", e.Item)
	})
}
