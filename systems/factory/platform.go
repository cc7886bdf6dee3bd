package factory

import (
	"math/rand/v2"

	"github.com/automoto/vinehop/archetypes"
	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/shared/gamemath"
	"github.com/automoto/vinehop/shared/leveldata"
	"github.com/automoto/vinehop/systems"
	"github.com/automoto/vinehop/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns a platform that oscillates along p.Axis. Each platform
// starts at a random point of its cycle so a row of them does not move in
// lockstep.
func CreatePlatform(ecs *ecs.ECS, p leveldata.Platform, rng *rand.Rand) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	box := gamemath.AABB{Min: p.Box.Min, Max: p.Box.Max}
	base := box.Center()

	lo, hi, speed := p.Min, p.Max, p.Speed
	if speed <= 0 {
		speed = cfg.Platform.Speed
	}
	if hi <= lo {
		lo, hi = cfg.Platform.Min, cfg.Platform.Max
	}
	leg := float32((hi - lo) / speed)

	// Offset runs lo to hi and back, forever.
	seq := gween.NewSequence(
		gween.New(float32(lo), float32(hi), leg, ease.InOutQuad),
		gween.New(float32(hi), float32(lo), leg, ease.InOutQuad),
	)
	seq.SetLoop(-1)
	offset, _, _ := seq.Update(float32(rng.Float64()) * 2 * leg)

	tr := components.NewTransform(base.Add(p.Axis.Mul(float64(offset))))
	components.Transform.SetValue(platform, tr)
	components.MovingPlatform.SetValue(platform, components.MovingPlatformData{
		Axis:     p.Axis,
		Base:     base,
		Offset:   float64(offset),
		Sequence: seq,
	})

	bounds := gamemath.BoxFromCenter(tr.Position, box.HalfExtents())
	components.Collider.SetValue(platform, components.ColliderData{
		Bounds:  bounds,
		Shape:   components.ShapeBox,
		Enabled: true,
		Layer:   cfg.LayerDefault,
	})
	systems.AddObject(ecs.World, platform, bounds, tags.ResolvPlatform)

	return platform
}
