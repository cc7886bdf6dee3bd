package archetypes

import (
	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Transform,
		components.Body,
		components.Object,
		components.Locomotion,
		components.Overlay,
		components.Climb,
		components.ScalePowerUp,
		components.Boost,
		components.Inventory,
		components.PlayerInput,
		components.TriggerState,
		components.Lives,
	)
	Solid = newArchetype(
		tags.Solid,
		components.Collider,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Transform,
		components.Collider,
		components.Object,
		components.MovingPlatform,
	)
	Vine = newArchetype(
		tags.Vine,
		components.Transform,
		components.Collider,
		components.Object,
		components.Climbable,
	)
	DeadZone = newArchetype(
		tags.DeadZone,
		components.Collider,
		components.Object,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Collider,
		components.Object,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Transform,
		components.Collider,
		components.Object,
		components.Collectible,
	)
	Destructible = newArchetype(
		tags.Destructible,
		components.Transform,
		components.Collider,
		components.Object,
		components.Destructible,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Transform,
		components.Body,
		components.Collider,
		components.Object,
		components.Enemy,
	)
	Part = newArchetype(
		components.Transform,
		components.Part,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Clock = newArchetype(
		components.Clock,
	)
	GameState = newArchetype(
		components.GameState,
	)
	SlotEffect = newArchetype(
		components.SlotEffect,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
