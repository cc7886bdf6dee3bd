package components

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type DestructibleState int

const (
	Intact DestructibleState = iota
	Decomposing
)

// DestructibleData is the root of a breakable prop. Parts lists its direct
// children.
type DestructibleData struct {
	State DestructibleState
	Parts []donburi.Entity
}

var Destructible = donburi.NewComponentType[DestructibleData]()

// PartData is a node in a destructible's part tree. A part with a Visual is a
// leaf piece; one without is a container.
type PartData struct {
	Name     string
	Root     donburi.Entity
	Parent   donburi.Entity
	Children []donburi.Entity
	Detached bool
}

var Part = donburi.NewComponentType[PartData]()

// VisualData is the drawable of a piece. HalfExtents sizes both the drawing and
// any collider synthesised from the mesh.
type VisualData struct {
	Color       color.RGBA
	Alpha       float64
	HalfExtents mgl64.Vec3
	HasMesh     bool
	HasMaterial bool
}

var Visual = donburi.NewComponentType[VisualData]()

// RigidBodyData is a dynamic body integrated by the debris system.
type RigidBodyData struct {
	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3
	Mass            float64
	Inertia         mgl64.Vec3
	HalfExtents     mgl64.Vec3
}

var RigidBody = donburi.NewComponentType[RigidBodyData]()

// AddImpulse applies an instantaneous change in momentum.
func (r *RigidBodyData) AddImpulse(j mgl64.Vec3) {
	if r.Mass <= 0 {
		return
	}
	r.Velocity = r.Velocity.Add(j.Mul(1 / r.Mass))
}

// AddTorqueImpulse applies an instantaneous change in angular momentum.
func (r *RigidBodyData) AddTorqueImpulse(t mgl64.Vec3) {
	for i := 0; i < 3; i++ {
		if r.Inertia[i] > 0 {
			r.AngularVelocity[i] += t[i] / r.Inertia[i]
		}
	}
}

// FadeData fades a piece's alpha to zero after Delay, then removes it.
type FadeData struct {
	Delay    float64
	Duration float64
	Tween    *gween.Tween
}

var Fade = donburi.NewComponentType[FadeData]()
