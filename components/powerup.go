package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type PowerUpState int

const (
	PowerUpInactive PowerUpState = iota
	PowerUpArmed
	PowerUpActive
)

func (s PowerUpState) String() string {
	switch s {
	case PowerUpInactive:
		return "inactive"
	case PowerUpArmed:
		return "armed"
	case PowerUpActive:
		return "active"
	}
	return "unknown"
}

// ScalePowerUpData is the grow power-up. Store is wired at spawn; a nil Store
// leaves the power-up inert.
type ScalePowerUpData struct {
	State     PowerUpState
	Store     ItemStore
	Remaining float64

	// ItemSeen is the item availability seen on the previous tick. Arming only
	// happens when the item appears.
	ItemSeen bool

	SavedScale  mgl64.Vec3
	SavedSpeeds MovementSpeeds
}

var ScalePowerUp = donburi.NewComponentType[ScalePowerUpData]()

// BoostData is the overflow boost granted once all normal collectibles are in.
type BoostData struct {
	Active      bool
	Remaining   float64
	SavedSpeeds MovementSpeeds
}

var Boost = donburi.NewComponentType[BoostData]()
