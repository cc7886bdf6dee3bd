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

// CreateSolid creates static level geometry.
func CreateSolid(ecs *ecs.ECS, b gamemath.AABB) *donburi.Entry {
	solid := archetypes.Solid.Spawn(ecs)
	components.Collider.SetValue(solid, components.ColliderData{
		Bounds:  b,
		Shape:   components.ShapeBox,
		Enabled: true,
		Layer:   cfg.LayerDefault,
	})
	systems.AddObject(ecs.World, solid, b, tags.ResolvSolid)
	return solid
}
