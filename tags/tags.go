package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Solid        = donburi.NewTag().SetName("Solid")
	Vine         = donburi.NewTag().SetName("Vine")
	Platform     = donburi.NewTag().SetName("Platform")
	DeadZone     = donburi.NewTag().SetName("DeadZone")
	Hazard       = donburi.NewTag().SetName("Hazard")
	Destructible = donburi.NewTag().SetName("Destructible")
	Debris       = donburi.NewTag().SetName("Debris")
	Collectible  = donburi.NewTag().SetName("Collectible")
	Enemy        = donburi.NewTag().SetName("Enemy")
)

// Resolv tags for broadphase queries
const (
	ResolvSolid        = "solid"
	ResolvPlayer       = "player"
	ResolvClimbable    = "climbable"
	ResolvPlatform     = "platform"
	ResolvDeadZone     = "deadzone"
	ResolvHazard       = "hazard"
	ResolvItem         = "item"
	ResolvDestructible = "destructible"
	ResolvDebris       = "debris"
	ResolvEnemy        = "enemy"
)

// Triggers are the tags a body's trigger sweep looks for.
var Triggers = []string{ResolvClimbable, ResolvDeadZone, ResolvHazard, ResolvItem, ResolvEnemy}

// Blocking are the tags a body move collides with.
var Blocking = []string{ResolvSolid, ResolvPlatform, ResolvDestructible}
