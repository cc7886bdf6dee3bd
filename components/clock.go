package components

import "github.com/yohamta/donburi"

// ClockData is the simulation clock. Scale slows or freezes scaled time; unscaled
// time always advances by FixedDelta per tick.
type ClockData struct {
	FixedDelta float64
	Scale      float64
	Scaled     float64
	Unscaled   float64
	Ticks      int
}

var Clock = donburi.NewComponentType[ClockData]()

// Delta is the scaled step for the current tick.
func (c *ClockData) Delta() float64 {
	return c.FixedDelta * c.Scale
}

// UnscaledDelta is the real step for the current tick.
func (c *ClockData) UnscaledDelta() float64 {
	return c.FixedDelta
}
