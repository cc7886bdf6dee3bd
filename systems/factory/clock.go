package factory

import (
	"github.com/automoto/vinehop/archetypes"
	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateClock creates the simulation clock at cfg.Simulation.TickRate.
func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{
		FixedDelta: 1 / float64(cfg.Simulation.TickRate),
		Scale:      1,
	})
	return clock
}

// CreateGameState creates the run state singleton.
func CreateGameState(ecs *ecs.ECS) *donburi.Entry {
	gs := archetypes.GameState.Spawn(ecs)
	components.GameState.SetValue(gs, components.GameStateData{Outcome: components.OutcomePlaying})
	return gs
}
