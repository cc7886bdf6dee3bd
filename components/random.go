package components

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
)

// RandomData is the simulation's random source. Seeding it makes scatter and
// platform phases reproducible.
type RandomData struct {
	Rand *rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()
