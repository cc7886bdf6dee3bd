package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type LivesData struct {
	Lives    int
	MaxLives int
	Spawn    mgl64.Vec3
}

var Lives = donburi.NewComponentType[LivesData]()
