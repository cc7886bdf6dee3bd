package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DecompositionStarted is published once per destructible, when it breaks.
type DecompositionStarted struct {
	Entity      donburi.Entity
	Impact      mgl64.Vec3
	ForceSource mgl64.Vec3
	Pieces      int
}

// PowerUpChanged is published on every power-up state transition.
type PowerUpChanged struct {
	Entity donburi.Entity
	From   PowerUpState
	To     PowerUpState
}

// ItemConsumed reports an inventory consume request and its result.
type ItemConsumed struct {
	Entity donburi.Entity
	Item   string
	OK     bool
}

// LocomotionEvent reports a jump, jump-off or landing.
type LocomotionEvent struct {
	Entity donburi.Entity
	Kind   LocomotionEventKind
}

type LocomotionEventKind int

const (
	EventJumped LocomotionEventKind = iota
	EventJumpedOff
	EventLanded
	EventDashed
)

// LifeLost is published when a body falls into a dead zone or touches a hazard.
type LifeLost struct {
	Entity    donburi.Entity
	Remaining int
}

// ItemCollected is published for every pickup.
type ItemCollected struct {
	Entity donburi.Entity
	Kind   CollectibleKind
	Item   string
}

var (
	DecompositionStartedEvent = events.NewEventType[DecompositionStarted]()
	PowerUpChangedEvent       = events.NewEventType[PowerUpChanged]()
	ItemConsumedEvent         = events.NewEventType[ItemConsumed]()
	LocomotionEvents          = events.NewEventType[LocomotionEvent]()
	LifeLostEvent             = events.NewEventType[LifeLost]()
	ItemCollectedEvent        = events.NewEventType[ItemCollected]()
)

func (k LocomotionEventKind) String() string {
	switch k {
	case EventJumped:
		return "jumped"
	case EventJumpedOff:
		return "jumped off"
	case EventLanded:
		return "landed"
	case EventDashed:
		return "dashed"
	}
	return "unknown"
}
