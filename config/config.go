package config

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// PlayerConfig contains all player-related configuration values.
// Distances are in metres, times in seconds.
type PlayerConfig struct {
	// Movement
	WalkSpeed     float64 `yaml:"walkSpeed"`
	SprintSpeed   float64 `yaml:"sprintSpeed"`
	JumpHeight    float64 `yaml:"jumpHeight"`
	Gravity       float64 `yaml:"gravity"`
	RotationSpeed float64 `yaml:"rotationSpeed"` // facing slerp rate per second

	// Ground contact
	StickVelocity      float64 `yaml:"stickVelocity"`      // vertical speed kept while grounded
	StickThreshold     float64 `yaml:"stickThreshold"`     // vy below this is pinned to StickVelocity
	ExternalLiftCutoff float64 `yaml:"externalLiftCutoff"` // platform lift above this suspends the pin
	MoveInputDeadzone  float64 `yaml:"moveInputDeadzone"`

	// Jump-off from a climb carries sprintSpeed * JumpOffCarry horizontally
	JumpOffCarry float64 `yaml:"jumpOffCarry"`

	// Lives
	StartingLives int `yaml:"startingLives"`

	// Dimensions
	Radius     float64 `yaml:"radius"`
	Height     float64 `yaml:"height"`
	StepOffset float64 `yaml:"stepOffset"`
	GroundSnap float64 `yaml:"groundSnap"` // how far below the feet still counts as standing
}

// DashConfig contains dash tuning. Dash timing runs on unscaled time.
type DashConfig struct {
	Speed    float64 `yaml:"speed"`
	Duration float64 `yaml:"duration"`
	Cooldown float64 `yaml:"cooldown"`
}

// ClimbConfig contains vine climbing tuning.
type ClimbConfig struct {
	Speed               float64 `yaml:"speed"`
	RotationSpeed       float64 `yaml:"rotationSpeed"` // degrees per second around the vine
	FallbackOrbitRadius float64 `yaml:"fallbackOrbitRadius"`
	MinOrbitRadius      float64 `yaml:"minOrbitRadius"`
	RadiusInset         float64 `yaml:"radiusInset"` // keeps the body inside the vine trigger
	OrbitInputDeadzone  float64 `yaml:"orbitInputDeadzone"`
}

// ScalePowerUpConfig contains the grow power-up tuning.
type ScalePowerUpConfig struct {
	Item             string     `yaml:"item"`
	ScaledSize       mgl64.Vec3 `yaml:"scaledSize"`
	Duration         float64    `yaml:"duration"`
	SlowMotionFactor float64    `yaml:"slowMotionFactor"`
	AreaRadius       float64    `yaml:"areaRadius"`
	DestructibleMask uint32     `yaml:"destructibleMask"`
}

// BoostConfig contains the overflow boost granted once every normal collectible
// has been gathered.
type BoostConfig struct {
	Multiplier float64 `yaml:"multiplier"`
	Duration   float64 `yaml:"duration"`
}

// DestructibleConfig contains decomposition tuning shared by every destructible.
type DestructibleConfig struct {
	ExplosionForce  float64 `yaml:"explosionForce"`
	ExplosionRadius float64 `yaml:"explosionRadius"`
	UpwardsModifier float64 `yaml:"upwardsModifier"`
	TorqueStrength  float64 `yaml:"torqueStrength"`
	FadeDelay       float64 `yaml:"fadeDelay"`
	FadeDuration    float64 `yaml:"fadeDuration"`
	RootRemoveDelay float64 `yaml:"rootRemoveDelay"`
	ContainerGrace  float64 `yaml:"containerGrace"` // extra time containers outlive their pieces
	KeepTag         string  `yaml:"keepTag"`        // containers whose name contains this stay with the root
	PieceMass       float64 `yaml:"pieceMass"`
}

// PhysicsConfig contains rigid body tuning for detached pieces.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	Restitution    float64 `yaml:"restitution"`
	GroundFriction float64 `yaml:"groundFriction"`
	AngularDamping float64 `yaml:"angularDamping"`
}

// PlatformConfig contains moving platform defaults, used when a level omits them.
type PlatformConfig struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Speed float64 `yaml:"speed"`
}

// EnemyConfig contains roaming and chasing tuning for garden pests.
type EnemyConfig struct {
	RoamSpeed       float64 `yaml:"roamSpeed"`
	ChaseSpeed      float64 `yaml:"chaseSpeed"`
	DetectionRadius float64 `yaml:"detectionRadius"` // the player closer than this is chased
	RoamRadius      float64 `yaml:"roamRadius"`      // roam targets stay this close to the spawn
	MinRoamWait     float64 `yaml:"minRoamWait"`
	MaxRoamWait     float64 `yaml:"maxRoamWait"`
	ArriveDistance  float64 `yaml:"arriveDistance"`
	StuckFraction   float64 `yaml:"stuckFraction"` // progress below this share of a step counts as blocked
	Radius          float64 `yaml:"radius"`
	Height          float64 `yaml:"height"`
	StepOffset      float64 `yaml:"stepOffset"`
}

// CollectibleConfig contains pickup presentation tuning.
type CollectibleConfig struct {
	BobHeight   float64 `yaml:"bobHeight"`
	BobSpeed    float64 `yaml:"bobSpeed"`
	SpinSpeed   float64 `yaml:"spinSpeed"` // degrees per second
	WinItem     string  `yaml:"winItem"`
	PickupRange float64 `yaml:"pickupRange"`
}

// SimulationConfig contains fixed tick and broadphase settings.
type SimulationConfig struct {
	TickRate       int     `yaml:"tickRate"`
	PixelsPerMetre float64 `yaml:"pixelsPerMetre"` // broadphase resolution
	CellSize       int     `yaml:"cellSize"`       // broadphase cell, in broadphase pixels
	Seed           uint64  `yaml:"seed"`           // zero picks a random seed
}

// CameraConfig contains orbit camera and debug view settings.
type CameraConfig struct {
	TurnSpeed      float64 `yaml:"turnSpeed"` // radians per second at sensitivity 1
	ViewScale      float64 `yaml:"viewScale"` // screen pixels per metre
	FollowLerp     float64 `yaml:"followLerp"`
	VerticalSquash float64 `yaml:"verticalSquash"` // screen pixels per metre of height in the debug view
}

// HUDConfig contains HUD layout and effect settings.
type HUDConfig struct {
	Margin          float64
	BarWidth        float64
	BarHeight       float64
	PulseScale      float64
	PulseDuration   float64
	SpinDuration    float64
	BackgroundColor color.RGBA
	BarColor        color.RGBA
	PowerUpColor    color.RGBA
	TextColor       color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	ShowColliders bool
	LogFile       string
	TuningFile    string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Dash DashConfig
var Climb ClimbConfig
var ScalePowerUp ScalePowerUpConfig
var Boost BoostConfig
var Destructible DestructibleConfig
var Physics PhysicsConfig
var Platform PlatformConfig
var Enemy EnemyConfig
var Collectible CollectibleConfig
var Simulation SimulationConfig
var Camera CameraConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Brown        = color.RGBA{R: 140, G: 90, B: 40, A: 255}
	Gray         = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Player = PlayerConfig{
		WalkSpeed:     4,
		SprintSpeed:   5,
		JumpHeight:    2,
		Gravity:       -20,
		RotationSpeed: 10,

		StickVelocity:      -2,
		StickThreshold:     0.1,
		ExternalLiftCutoff: 0.1,
		MoveInputDeadzone:  0.1,

		JumpOffCarry: 0.75,

		StartingLives: 3,

		Radius:     0.3,
		Height:     1.8,
		StepOffset: 0.3,
		GroundSnap: 0.05,
	}

	Dash = DashConfig{
		Speed:    20,
		Duration: 0.2,
		Cooldown: 2,
	}

	Climb = ClimbConfig{
		Speed:               3,
		RotationSpeed:       90,
		FallbackOrbitRadius: 0.15,
		MinOrbitRadius:      0.05,
		RadiusInset:         0.01,
		OrbitInputDeadzone:  0.05,
	}

	ScalePowerUp = ScalePowerUpConfig{
		Item:             "ScalePowerup",
		ScaledSize:       mgl64.Vec3{2, 2, 2},
		Duration:         5,
		SlowMotionFactor: 0.5,
		AreaRadius:       1.5,
		DestructibleMask: 1 << LayerDestructible,
	}

	Boost = BoostConfig{
		Multiplier: 2,
		Duration:   2,
	}

	Destructible = DestructibleConfig{
		ExplosionForce:  25,
		ExplosionRadius: 3,
		UpwardsModifier: 0.75,
		TorqueStrength:  40,
		FadeDelay:       1.5,
		FadeDuration:    1.5,
		RootRemoveDelay: 0.1,
		ContainerGrace:  0.5,
		KeepTag:         "caja",
		PieceMass:       1,
	}

	Physics = PhysicsConfig{
		Gravity:        -9.81,
		Restitution:    0.2,
		GroundFriction: 0.8,
		AngularDamping: 0.05,
	}

	Platform = PlatformConfig{
		Min:   -2,
		Max:   2,
		Speed: 2,
	}

	Enemy = EnemyConfig{
		RoamSpeed:       3.5,
		ChaseSpeed:      5,
		DetectionRadius: 10,
		RoamRadius:      20,
		MinRoamWait:     2,
		MaxRoamWait:     5,
		ArriveDistance:  0.1,
		StuckFraction:   0.1,
		Radius:          0.35,
		Height:          0.6,
		StepOffset:      0.2,
	}

	Collectible = CollectibleConfig{
		BobHeight:   0.25,
		BobSpeed:    2,
		SpinSpeed:   45,
		WinItem:     "GoldenCarrot",
		PickupRange: 0.5,
	}

	Simulation = SimulationConfig{
		TickRate:       60,
		PixelsPerMetre: 32,
		CellSize:       16,
	}

	Camera = CameraConfig{
		TurnSpeed:      2.5,
		ViewScale:      24,
		FollowLerp:     0.15,
		VerticalSquash: 4,
	}

	HUD = HUDConfig{
		Margin:          10,
		BarWidth:        130,
		BarHeight:       8,
		PulseScale:      1.4,
		PulseDuration:   0.3,
		SpinDuration:    0.6,
		BackgroundColor: color.RGBA{40, 40, 40, 255},
		BarColor:        color.RGBA{40, 220, 40, 255},
		PowerUpColor:    Orange,
		TextColor:       White,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		LogFile:    "vinehop.log",
		TuningFile: "tuning.yaml",
	}
}
