package factory

import (
	"github.com/automoto/vinehop/archetypes"
	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/shared/gamemath"
	"github.com/automoto/vinehop/shared/leveldata"
	"github.com/automoto/vinehop/systems"
	"github.com/automoto/vinehop/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateVine spawns a climbable vine. Its capsule trigger wraps the vertical
// anchor line through v.Base.
func CreateVine(ecs *ecs.ECS, v leveldata.Vine) *donburi.Entry {
	vine := archetypes.Vine.Spawn(ecs)

	components.Transform.SetValue(vine, components.NewTransform(v.Base))
	components.Climbable.SetValue(vine, components.ClimbableData{
		Bottom: v.Base.Y(),
		Top:    v.Base.Y() + v.Height,
	})

	bounds := gamemath.AABB{
		Min: v.Base.Sub(mgl64.Vec3{v.Radius, 0, v.Radius}),
		Max: v.Base.Add(mgl64.Vec3{v.Radius, v.Height, v.Radius}),
	}
	components.Collider.SetValue(vine, components.ColliderData{
		Bounds:  bounds,
		Shape:   components.ShapeCapsule,
		Radius:  v.Radius,
		Trigger: true,
		Enabled: true,
		Layer:   cfg.LayerTrigger,
	})
	systems.AddObject(ecs.World, vine, bounds, tags.ResolvClimbable)

	return vine
}
