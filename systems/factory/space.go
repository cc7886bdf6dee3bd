package factory

import (
	"math"

	"github.com/automoto/vinehop/archetypes"
	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceMargin pads the broadphase around the level so bodies and debris that
// leave it are still tracked for a while.
const spaceMargin = 8.0

// CreateSpace builds the broadphase grid over a width by depth level, in metres.
func CreateSpace(ecs *ecs.ECS, width, depth float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)

	scale := cfg.Simulation.PixelsPerMetre
	cell := cfg.Simulation.CellSize
	w := int(math.Ceil((width + 2*spaceMargin) * scale))
	h := int(math.Ceil((depth + 2*spaceMargin) * scale))

	components.Space.SetValue(space, components.SpaceData{
		Space:   resolv.NewSpace(w, h, cell, cell),
		OriginX: -spaceMargin,
		OriginZ: -spaceMargin,
		Scale:   scale,
	})
	return space
}
