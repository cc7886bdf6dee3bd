package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Yaw    float64    // heading the camera looks along
	Target mgl64.Vec3 // smoothed follow point
}

var Camera = donburi.NewComponentType[CameraData]()
