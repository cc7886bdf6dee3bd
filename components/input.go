package components

import (
	cfg "github.com/automoto/vinehop/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	MoveX, MoveY    float64               // analog movement, x right and y forward
	LastInputMethod InputMethod           // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()

// PlayerInputData is the control sample a player body consumes each tick.
type PlayerInputData struct {
	MoveX, MoveY float64 // in [-1, 1]
	CameraYaw    float64
	Current      [cfg.ActionCount]bool
	Previous     [cfg.ActionCount]bool
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()

// Action returns the edge state of an action for this tick.
func (p *PlayerInputData) Action(id cfg.ActionID) ActionState {
	curr := p.Current[id]
	prev := p.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Latch moves the current sample into the previous slot before a new poll.
func (p *PlayerInputData) Latch() {
	p.Previous = p.Current
	p.Current = [cfg.ActionCount]bool{}
}
