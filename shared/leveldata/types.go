// Package leveldata provides TMX level parsing for the garden levels.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
//
// Levels are drawn top-down in Tiled: map X is world X and map Y is world Z.
// Heights come from object properties, in metres.
package leveldata

import "github.com/go-gl/mathgl/mgl64"

// Level holds everything a level file places in the world, in metres.
type Level struct {
	Name          string
	Width, Depth  float64
	Spawn         mgl64.Vec3
	Solids        []Box
	Platforms     []Platform
	Vines         []Vine
	DeadZones     []Box
	Hazards       []Box
	Collectibles  []Collectible
	Destructibles []Destructible
	Enemies       []Enemy
}

// Box is an axis-aligned volume.
type Box struct {
	Min, Max mgl64.Vec3
}

// Platform is a box that oscillates along Axis between Min and Max offsets.
type Platform struct {
	Box
	Axis     mgl64.Vec3
	Min, Max float64
	Speed    float64
}

// Vine is a climbable vertical line with a capsule trigger around it.
type Vine struct {
	Base   mgl64.Vec3
	Height float64
	Radius float64
}

// Collectible is a pickup. Item names special collectibles only.
type Collectible struct {
	Position mgl64.Vec3
	Special  bool
	Item     string
}

// Destructible is a breakable prop split into a grid of pieces. Pieces are
// grouped under one container named Container.
type Destructible struct {
	Name      string
	Container string
	Box
	Cols, Rows, Layers int
	WithMesh           bool
	WithMaterial       bool
}

// Enemy is a roaming pest. Zero radii fall back to the tuned defaults.
type Enemy struct {
	Position        mgl64.Vec3
	RoamRadius      float64
	DetectionRadius float64
}
