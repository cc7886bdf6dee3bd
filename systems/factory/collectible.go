package factory

import (
	"math"

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

func CreateCollectible(ecs *ecs.ECS, c leveldata.Collectible) *donburi.Entry {
	item := archetypes.Collectible.Spawn(ecs)

	data := components.CollectibleData{
		Kind:  components.CollectibleNormal,
		Base:  c.Position,
		Phase: systems.GetRandom(ecs.World).Float64() * 2 * math.Pi,
	}
	if c.Special {
		data.Kind = components.CollectibleSpecial
		data.Item = c.Item
	}
	components.Collectible.SetValue(item, data)
	components.Transform.SetValue(item, components.NewTransform(c.Position))

	r := cfg.Collectible.PickupRange / 2
	bounds := gamemath.BoxFromCenter(c.Position, mgl64.Vec3{r, r, r})
	components.Collider.SetValue(item, components.ColliderData{
		Bounds:  bounds,
		Shape:   components.ShapeBox,
		Trigger: true,
		Enabled: true,
		Layer:   cfg.LayerTrigger,
	})
	systems.AddObject(ecs.World, item, bounds, tags.ResolvItem)

	return item
}
