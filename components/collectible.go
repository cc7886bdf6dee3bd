package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type CollectibleKind int

const (
	CollectibleNormal CollectibleKind = iota
	CollectibleSpecial
)

type CollectibleData struct {
	Kind  CollectibleKind
	Item  string // special collectibles only
	Base  mgl64.Vec3
	Phase float64
}

var Collectible = donburi.NewComponentType[CollectibleData]()

func (k CollectibleKind) String() string {
	if k == CollectibleSpecial {
		return "special"
	}
	return "normal"
}
