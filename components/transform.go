package components

import (
	"github.com/automoto/vinehop/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is a world-space pose. For bodies Position is the feet; for
// pieces and props it is the centre.
type TransformData struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

var Transform = donburi.NewComponentType[TransformData]()

// NewTransform returns an unrotated, unit-scale pose at pos.
func NewTransform(pos mgl64.Vec3) TransformData {
	return TransformData{
		Position: pos,
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

func (t *TransformData) Forward() mgl64.Vec3 {
	return gamemath.ForwardOf(t.Rotation)
}
