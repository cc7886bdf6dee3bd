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

// UpdateCollectibles bobs and spins pickups and hands the ones a player
// touched to its inventory. Picking up the win item ends the run.
// Must run after UpdateTriggers.
func UpdateCollectibles(ecs *ecs.ECS) {
	w := ecs.World
	t := GetClock(w).Scaled

	components.Collectible.Each(w, func(e *donburi.Entry) {
		c := components.Collectible.Get(e)
		tr := components.Transform.Get(e)
		bob := math.Sin(t*cfg.Collectible.BobSpeed+c.Phase) * cfg.Collectible.BobHeight
		tr.Position = c.Base.Add(gamemath.Up.Mul(bob))
		tr.Rotation = gamemath.YawRotation(mgl64.DegToRad(t * cfg.Collectible.SpinSpeed))

		col := components.Collider.Get(e)
		col.Bounds = gamemath.BoxFromCenter(tr.Position, col.Bounds.HalfExtents())
		syncObject(w, e, col.Bounds)
	})

	type pickup struct{ player, item *donburi.Entry }
	var pickups []pickup
	components.Inventory.Each(w, func(e *donburi.Entry) {
		for _, id := range components.TriggerState.Get(e).Entered {
			if !w.Valid(id) {
				continue
			}
			if item := w.Entry(id); item.HasComponent(components.Collectible) {
				pickups = append(pickups, pickup{player: e, item: item})
			}
		}
	})

	for _, p := range pickups {
		Collect(w, p.player, p.item)
	}
}

// Collect moves item into player's inventory and removes it from the level.
func Collect(w donburi.World, player, item *donburi.Entry) {
	if !item.Valid() {
		return
	}
	c := *components.Collectible.Get(item)
	inv := components.Inventory.Get(player)

	switch c.Kind {
	case components.CollectibleNormal:
		inv.NormalCollected++
	case components.CollectibleSpecial:
		inv.Special.Add(c.Item)
	}
	destroyEntry(item)

	components.ItemCollectedEvent.Publish(w, components.ItemCollected{Entity: player.Entity(), Kind: c.Kind, Item: c.Item})
	logging.Named("collectibles").Debugw("collected", "kind", c.Kind, "item", c.Item,
		"normal", inv.NormalCollected, "total", inv.NormalTotal)

	if c.Kind == components.CollectibleSpecial && c.Item == cfg.Collectible.WinItem {
		EndGame(w, components.OutcomeWon)
	}
}
