package systems

import (
	"strings"

	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePlayerInput in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs.World)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.MoveX, input.MoveY = 0, 0

	// Get connected gamepads
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	// Track which input method was used this frame
	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		// Check keyboard keys
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		// Check gamepad buttons
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Digital movement first; a deflected stick overrides it
	input.MoveX = axisFromActions(input, cfg.ActionMoveLeft, cfg.ActionMoveRight)
	input.MoveY = axisFromActions(input, cfg.ActionMoveBack, cfg.ActionMoveForward)
	if x, y, gpID, ok := getAnalogStick(gamepadIDs); ok {
		input.MoveX, input.MoveY = x, y
		gamepadUsed = true
		activeGamepadID = gpID
	}

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// UpdatePlayerInput hands this frame's sample and the camera heading to every
// player. Players get an empty sample once the run has ended.
// Must run AFTER UpdateInput and UpdateCamera.
func UpdatePlayerInput(ecs *ecs.ECS) {
	w := ecs.World
	input := getOrCreateInput(w)
	ended := GetGameState(w).Ended()

	yaw := 0.0
	if camEntry, ok := components.Camera.First(w); ok {
		yaw = components.Camera.Get(camEntry).Yaw
	}

	components.PlayerInput.Each(w, func(e *donburi.Entry) {
		p := components.PlayerInput.Get(e)
		p.Latch()
		p.CameraYaw = yaw
		if ended {
			p.MoveX, p.MoveY = 0, 0
			return
		}
		p.Current = input.Current
		p.MoveX, p.MoveY = input.MoveX, input.MoveY
	})
}

func axisFromActions(input *components.InputData, neg, pos cfg.ActionID) float64 {
	v := 0.0
	if input.Current[neg] {
		v--
	}
	if input.Current[pos] {
		v++
	}
	return v
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	// Detect and cache controller type
	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStick reads the left stick of the first gamepad deflected past the
// deadzone. Y is flipped so pushing up moves forward.
func getAnalogStick(gamepads []ebiten.GamepadID) (x, y float64, gpID ebiten.GamepadID, ok bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, id := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if horizontal*horizontal+vertical*vertical < deadzone*deadzone {
			continue
		}
		return horizontal, -vertical, id, true
	}
	return 0, 0, 0, false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// ActionJustPressed reports whether id went down this frame.
func ActionJustPressed(w donburi.World, id cfg.ActionID) bool {
	return GetAction(getOrCreateInput(w), id).JustPressed
}
