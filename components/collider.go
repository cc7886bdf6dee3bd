package components

import (
	"github.com/automoto/vinehop/shared/gamemath"
	"github.com/yohamta/donburi"
)

type ColliderShape int

const (
	ShapeBox ColliderShape = iota
	ShapeCapsule
	ShapeMesh
)

// ColliderData is the world-space collision volume of a static or scripted
// entity. Disabled colliders are kept out of the broadphase.
type ColliderData struct {
	Bounds  gamemath.AABB
	Shape   ColliderShape
	Convex  bool    // mesh colliders only
	Radius  float64 // capsule colliders only
	Trigger bool
	Enabled bool
	Layer   int
}

var Collider = donburi.NewComponentType[ColliderData]()
