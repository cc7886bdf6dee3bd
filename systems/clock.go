package systems

import (
	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances simulation time by one fixed tick.
// Must run first in the system order.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetClock(ecs.World)
	clock.Ticks++
	clock.Scaled += clock.Delta()
	clock.Unscaled += clock.UnscaledDelta()
}

// GetClock returns the clock singleton, creating it on first use.
func GetClock(w donburi.World) *components.ClockData {
	entry, ok := components.Clock.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Clock))
		components.Clock.SetValue(entry, components.ClockData{
			FixedDelta: 1 / float64(cfg.Simulation.TickRate),
			Scale:      1,
		})
	}
	return components.Clock.Get(entry)
}

// SetTimeScale changes how fast scaled time runs. Zero freezes it.
func SetTimeScale(w donburi.World, scale float64) {
	if scale < 0 {
		scale = 0
	}
	GetClock(w).Scale = scale
}
