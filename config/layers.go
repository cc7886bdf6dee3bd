package config

import "github.com/yohamta/donburi/ecs"

// Render layers
const (
	Default ecs.LayerID = iota
)

// Collision layers, tested against uint32 masks as 1<<layer.
const (
	LayerDefault = iota
	LayerPlayer
	LayerDestructible
	LayerDebris
	LayerTrigger
)

// LayerInMask reports whether layer is selected by mask.
func LayerInMask(layer int, mask uint32) bool {
	if layer < 0 || layer > 31 {
		return false
	}
	return mask&(1<<uint(layer)) != 0
}
