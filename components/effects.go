package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AutoDestroyData removes an entity once Remaining seconds of scaled time pass.
// Cascade also removes any part children that are still attached.
type AutoDestroyData struct {
	Remaining float64
	Cascade   bool
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// SlotEffectData animates a HUD item slot: a pulse in size and a spin. Starting
// a new effect replaces the tweens of the old one.
type SlotEffectData struct {
	Item  string
	Pulse *gween.Sequence
	Spin  *gween.Tween
	Scale float64
	Angle float64
	Done  bool
}

var SlotEffect = donburi.NewComponentType[SlotEffectData]()
