package factory

import (
	"github.com/automoto/vinehop/components"
	"github.com/automoto/vinehop/logging"
	"github.com/automoto/vinehop/shared/gamemath"
	"github.com/automoto/vinehop/shared/leveldata"
	"github.com/automoto/vinehop/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel populates an empty world from level and returns the player.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	CreateClock(ecs)
	CreateGameState(ecs)
	CreateSpace(ecs, level.Width, level.Depth)

	for _, b := range level.Solids {
		CreateSolid(ecs, box(b))
	}
	for _, b := range level.DeadZones {
		CreateDeadZone(ecs, box(b))
	}
	for _, b := range level.Hazards {
		CreateHazard(ecs, box(b))
	}

	rng := systems.GetRandom(ecs.World)
	for _, p := range level.Platforms {
		CreatePlatform(ecs, p, rng)
	}
	for _, v := range level.Vines {
		CreateVine(ecs, v)
	}
	for _, d := range level.Destructibles {
		CreateDestructible(ecs, d)
	}
	for _, en := range level.Enemies {
		CreateEnemy(ecs, en)
	}

	normal := 0
	for _, c := range level.Collectibles {
		CreateCollectible(ecs, c)
		if !c.Special {
			normal++
		}
	}

	player := CreatePlayer(ecs, level.Spawn)
	components.Inventory.Get(player).NormalTotal = normal
	CreateCamera(ecs, 0, level.Spawn)

	logging.Named("level").Infow("level created", "name", level.Name,
		"solids", len(level.Solids), "platforms", len(level.Platforms), "vines", len(level.Vines),
		"destructibles", len(level.Destructibles), "collectibles", len(level.Collectibles),
		"enemies", len(level.Enemies))
	return player
}

func box(b leveldata.Box) gamemath.AABB {
	return gamemath.AABB{Min: b.Min, Max: b.Max}
}
