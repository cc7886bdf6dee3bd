package factory

import (
	"github.com/automoto/vinehop/archetypes"
	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/logging"
	"github.com/automoto/vinehop/systems"
	"github.com/automoto/vinehop/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at spawn. The scale power-up draws from the
// player's own special items.
func CreatePlayer(ecs *ecs.ECS, spawn mgl64.Vec3) *donburi.Entry {
	bag := components.NewItemBag()
	return CreatePlayerWithStore(ecs, spawn, bag, bag)
}

// CreatePlayerWithStore spawns the player with pickups going to bag and the
// scale power-up consuming from store. A nil store leaves the power-up inert.
func CreatePlayerWithStore(ecs *ecs.ECS, spawn mgl64.Vec3, bag *components.ItemBag, store components.ItemStore) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	tr := components.NewTransform(spawn)
	components.Transform.SetValue(player, tr)
	components.Body.SetValue(player, components.BodyData{
		Radius:     cfg.Player.Radius,
		Height:     cfg.Player.Height,
		StepOffset: cfg.Player.StepOffset,
	})
	body := components.Body.Get(player)
	systems.AddObject(ecs.World, player, body.Bounds(&tr), tags.ResolvPlayer)

	components.Locomotion.SetValue(player, components.NewLocomotion(components.MovementSpeeds{
		Walk:   cfg.Player.WalkSpeed,
		Sprint: cfg.Player.SprintSpeed,
		Jump:   cfg.Player.JumpHeight,
	}))
	components.Climb.SetValue(player, components.ClimbData{Vine: donburi.Null})
	components.TriggerState.SetValue(player, components.NewTriggerState())
	components.Lives.SetValue(player, components.LivesData{
		Lives:    cfg.Player.StartingLives,
		MaxLives: cfg.Player.StartingLives,
		Spawn:    spawn,
	})
	if bag == nil {
		bag = components.NewItemBag()
	}
	components.Inventory.SetValue(player, components.InventoryData{Special: bag})

	if store == nil {
		logging.Named("powerup").Warnw("player has no item store; scale power-up disabled",
			"entity", player.Entity())
	}
	components.ScalePowerUp.SetValue(player, components.ScalePowerUpData{
		State: components.PowerUpInactive,
		Store: store,
	})

	return player
}
