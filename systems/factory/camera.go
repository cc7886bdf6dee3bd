package factory

import (
	"github.com/automoto/vinehop/archetypes"
	"github.com/automoto/vinehop/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera creates the orbit camera looking along yaw, centred on target.
func CreateCamera(ecs *ecs.ECS, yaw float64, target mgl64.Vec3) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{Yaw: yaw, Target: target})
	return camera
}
