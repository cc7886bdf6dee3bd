package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ClimbData is the climb session of a body. Vine is donburi.Null when the body
// is not climbing.
type ClimbData struct {
	Vine        donburi.Entity
	Anchor      mgl64.Vec3
	OrbitRadius float64
}

var Climb = donburi.NewComponentType[ClimbData]()

// ClimbableData marks a vine. The anchor line is vertical through the entity's
// Transform position.
type ClimbableData struct {
	Bottom, Top float64
}

var Climbable = donburi.NewComponentType[ClimbableData]()
