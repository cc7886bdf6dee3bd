package factory

import (
	"github.com/automoto/vinehop/archetypes"
	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/shared/gamemath"
	"github.com/automoto/vinehop/systems"
	"github.com/automoto/vinehop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDeadZone creates an invisible trigger that costs a life when entered
func CreateDeadZone(ecs *ecs.ECS, b gamemath.AABB) *donburi.Entry {
	zone := archetypes.DeadZone.Spawn(ecs)
	components.Collider.SetValue(zone, triggerCollider(b))
	systems.AddObject(ecs.World, zone, b, tags.ResolvDeadZone)
	return zone
}

// CreateHazard creates a trigger that costs a life unless the body is invulnerable
func CreateHazard(ecs *ecs.ECS, b gamemath.AABB) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)
	components.Collider.SetValue(hazard, triggerCollider(b))
	systems.AddObject(ecs.World, hazard, b, tags.ResolvHazard)
	return hazard
}

func triggerCollider(b gamemath.AABB) components.ColliderData {
	return components.ColliderData{
		Bounds:  b,
		Shape:   components.ShapeBox,
		Trigger: true,
		Enabled: true,
		Layer:   cfg.LayerTrigger,
	}
}
