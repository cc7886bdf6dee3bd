package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MovingPlatformData oscillates a platform along one axis. Offset is driven by a
// looping tween sequence and applied relative to Base.
type MovingPlatformData struct {
	Axis     mgl64.Vec3
	Base     mgl64.Vec3
	Offset   float64
	Sequence *gween.Sequence
	Velocity mgl64.Vec3
}

var MovingPlatform = donburi.NewComponentType[MovingPlatformData]()
