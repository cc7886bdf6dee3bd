package components

import (
	"github.com/automoto/vinehop/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData wraps the broadphase grid. The grid covers the ground plane: world X
// maps to grid X and world Z to grid Y, scaled by Scale and offset by the origin.
type SpaceData struct {
	*resolv.Space
	OriginX, OriginZ float64
	Scale            float64
}

var Space = donburi.NewComponentType[SpaceData]()

// Footprint converts the ground-plane extent of a box into grid coordinates.
func (s *SpaceData) Footprint(b gamemath.AABB) (x, y, w, h float64) {
	x = (b.Min.X() - s.OriginX) * s.Scale
	y = (b.Min.Z() - s.OriginZ) * s.Scale
	// resolv takes X+W-1 as the last occupied unit, so one unit of padding
	// keeps the cell holding the max edge.
	w = (b.Max.X()-b.Min.X())*s.Scale + 1
	h = (b.Max.Z()-b.Min.Z())*s.Scale + 1
	return x, y, w, h
}
