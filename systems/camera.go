package systems

import (
	"github.com/automoto/vinehop/components"
	"github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera turns the orbit camera from input and eases its follow point
// toward the player. It runs on unscaled time so the view stays live while the
// simulation is frozen.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	input := getOrCreateInput(e.World)
	dt := GetClock(e.World).UnscaledDelta()

	turn := 0.0
	if input.Current[config.ActionCameraLeft] {
		turn--
	}
	if input.Current[config.ActionCameraRight] {
		turn++
	}
	camera.Yaw += turn * config.Camera.TurnSpeed * cameraSensitivity * dt

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	target := components.Transform.Get(playerEntry).Position
	camera.Target = camera.Target.Add(target.Sub(camera.Target).Mul(config.Camera.FollowLerp))
}
