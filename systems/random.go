package systems

import (
	"math/rand/v2"

	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/yohamta/donburi"
)

// GetRandom returns the world's random source, seeding it from
// cfg.Simulation.Seed on first use. A zero seed picks one at random.
func GetRandom(w donburi.World) *rand.Rand {
	entry, ok := components.Random.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Random))
		seed := cfg.Simulation.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		components.Random.SetValue(entry, components.RandomData{
			Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		})
	}
	return components.Random.Get(entry).Rand
}
