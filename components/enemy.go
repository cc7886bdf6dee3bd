package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	// Roaming
	Origin     mgl64.Vec3 // roam targets are picked around the spawn point
	RoamRadius float64
	RoamSpeed  float64
	Target     mgl64.Vec3
	HasTarget  bool
	Wait       float64 // seconds left at the current roam target

	// Chasing
	ChaseSpeed      float64
	DetectionRadius float64
	Chasing         bool

	// Progress check against the previous tick's step
	LastPosition mgl64.Vec3
	LastStep     float64
	// VerticalVelocity keeps the enemy on the ground.
	VerticalVelocity float64
	WarnedNoTarget   bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
