package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// LocomotionMode is the exclusive movement mode.
type LocomotionMode int

const (
	ModeGrounded LocomotionMode = iota
	ModeAirborne
	ModeDashing
)

func (m LocomotionMode) String() string {
	switch m {
	case ModeGrounded:
		return "grounded"
	case ModeAirborne:
		return "airborne"
	case ModeDashing:
		return "dashing"
	}
	return "unknown"
}

// SpeedOwner identifies the modifier currently holding the movement speeds.
type SpeedOwner int

const (
	SpeedOwnerNone SpeedOwner = iota
	SpeedOwnerScale
	SpeedOwnerBoost
)

// MovementSpeeds are the speeds a modifier may rewrite.
type MovementSpeeds struct {
	Walk   float64
	Sprint float64
	Jump   float64 // jump height
}

type LocomotionData struct {
	Mode LocomotionMode

	// VerticalVelocity persists across ticks; Horizontal is recomputed each tick.
	VerticalVelocity float64
	Horizontal       mgl64.Vec3
	// Carry is the horizontal push of a jump-off, kept until landing.
	Carry  mgl64.Vec3
	Moving bool

	speeds     MovementSpeeds
	speedOwner SpeedOwner

	// Dash bookkeeping, in unscaled seconds.
	DashDirection mgl64.Vec3
	DashRemaining float64
	LastDashStart float64
	HasDashed     bool
}

var Locomotion = donburi.NewComponentType[LocomotionData]()

// NewLocomotion returns a grounded state using the given base speeds.
func NewLocomotion(speeds MovementSpeeds) LocomotionData {
	return LocomotionData{Mode: ModeGrounded, speeds: speeds}
}

func (l *LocomotionData) Speeds() MovementSpeeds {
	return l.speeds
}

// SpeedOwner reports which modifier holds the speeds.
func (l *LocomotionData) SpeedOwner() SpeedOwner {
	return l.speedOwner
}

// LeaseSpeeds hands the speeds to owner. It fails while another owner holds them.
func (l *LocomotionData) LeaseSpeeds(owner SpeedOwner) bool {
	if owner == SpeedOwnerNone || l.speedOwner != SpeedOwnerNone {
		return false
	}
	l.speedOwner = owner
	return true
}

// SetSpeeds rewrites the speeds on behalf of their current owner.
func (l *LocomotionData) SetSpeeds(owner SpeedOwner, s MovementSpeeds) bool {
	if owner != l.speedOwner {
		return false
	}
	l.speeds = s
	return true
}

// ReleaseSpeeds restores s and gives up ownership.
func (l *LocomotionData) ReleaseSpeeds(owner SpeedOwner, s MovementSpeeds) bool {
	if owner == SpeedOwnerNone || owner != l.speedOwner {
		return false
	}
	l.speeds = s
	l.speedOwner = SpeedOwnerNone
	return true
}

// DashCooldownFraction reports how much of the dash cooldown has elapsed, in
// [0, 1], for HUD gauges.
func (l *LocomotionData) DashCooldownFraction(now, cooldown float64) float64 {
	if !l.HasDashed || cooldown <= 0 {
		return 1
	}
	return mgl64.Clamp((now-l.LastDashStart)/cooldown, 0, 1)
}

// OverlayData holds the flags that modify locomotion without replacing its mode.
type OverlayData struct {
	Climbing     bool
	ScaledUp     bool
	Invulnerable bool
}

var Overlay = donburi.NewComponentType[OverlayData]()
