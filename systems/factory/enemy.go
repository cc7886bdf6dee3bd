package factory

import (
	"github.com/automoto/vinehop/archetypes"
	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/shared/leveldata"
	"github.com/automoto/vinehop/systems"
	"github.com/automoto/vinehop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a roaming pest. Touching it costs the player a life
// unless the player is invulnerable.
func CreateEnemy(ecs *ecs.ECS, def leveldata.Enemy) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	tr := components.NewTransform(def.Position)
	components.Transform.SetValue(enemy, tr)
	components.Body.SetValue(enemy, components.BodyData{
		Radius:     cfg.Enemy.Radius,
		Height:     cfg.Enemy.Height,
		StepOffset: cfg.Enemy.StepOffset,
	})
	bounds := components.Body.Get(enemy).Bounds(&tr)
	components.Collider.SetValue(enemy, components.ColliderData{
		Bounds:  bounds,
		Shape:   components.ShapeBox,
		Trigger: true,
		Enabled: true,
		Layer:   cfg.LayerTrigger,
	})
	systems.AddObject(ecs.World, enemy, bounds, tags.ResolvEnemy)

	// Level properties override the tuned radii
	data := components.EnemyData{
		Origin:          def.Position,
		RoamRadius:      cfg.Enemy.RoamRadius,
		RoamSpeed:       cfg.Enemy.RoamSpeed,
		ChaseSpeed:      cfg.Enemy.ChaseSpeed,
		DetectionRadius: cfg.Enemy.DetectionRadius,
		LastPosition:    def.Position,
	}
	if def.RoamRadius > 0 {
		data.RoamRadius = def.RoamRadius
	}
	if def.DetectionRadius > 0 {
		data.DetectionRadius = def.DetectionRadius
	}
	components.Enemy.SetValue(enemy, data)

	return enemy
}
