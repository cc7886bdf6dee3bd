package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/automoto/vinehop/assets"
	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/shared/gamemath"
	"github.com/automoto/vinehop/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view maps world positions onto the screen. The map is drawn north-up from
// above, centred on the camera target; height lifts things up the screen.
type view struct {
	target        mgl64.Vec3
	cx, cy        float64
	scale, squash float64
}

func newView(camera *components.CameraData, screen *ebiten.Image) view {
	return view{
		target: camera.Target,
		cx:     float64(screen.Bounds().Dx()) / 2,
		cy:     float64(screen.Bounds().Dy()) / 2,
		scale:  cfg.Camera.ViewScale,
		squash: cfg.Camera.VerticalSquash,
	}
}

func (v view) point(p mgl64.Vec3) (float32, float32) {
	rel := p.Sub(v.target)
	x := v.cx + rel.X()*v.scale
	y := v.cy - rel.Z()*v.scale - rel.Y()*v.squash
	return float32(x), float32(y)
}

// rect returns the screen rectangle of b's top face.
func (v view) rect(b gamemath.AABB) (x, y, w, h float32) {
	x0, y0 := v.point(mgl64.Vec3{b.Min.X(), b.Max.Y(), b.Max.Z()})
	x1, y1 := v.point(mgl64.Vec3{b.Max.X(), b.Max.Y(), b.Min.Z()})
	return x0, y0, x1 - x0, y1 - y0
}

type drawItem struct {
	top   float64
	draw  func()
	order int
}

// DrawWorld renders the level from above. Things are drawn lowest top first so
// ledges cover what is under them.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	v := newView(components.Camera.Get(cameraEntry), screen)
	w := ecs.World

	var items []drawItem
	add := func(top float64, fn func()) {
		items = append(items, drawItem{top: top, draw: fn, order: len(items)})
	}

	tags.Solid.Each(w, func(e *donburi.Entry) {
		b := components.Collider.Get(e).Bounds
		add(b.Max.Y(), func() { fillBox(screen, v, b, shade(cfg.Gray, b.Max.Y())) })
	})
	tags.Platform.Each(w, func(e *donburi.Entry) {
		b := components.Collider.Get(e).Bounds
		add(b.Max.Y(), func() { fillBox(screen, v, b, shade(cfg.LightBlue, b.Max.Y())) })
	})
	tags.Hazard.Each(w, func(e *donburi.Entry) {
		b := components.Collider.Get(e).Bounds
		add(b.Max.Y(), func() { fillBox(screen, v, b, color.RGBA{160, 30, 60, 255}) })
	})
	components.Visual.Each(w, func(e *donburi.Entry) {
		vis := components.Visual.Get(e)
		tr := components.Transform.Get(e)
		b := gamemath.OrientedBounds(tr.Position, vis.HalfExtents, tr.Rotation)
		c := vis.Color
		c.A = uint8(255 * mgl64.Clamp(vis.Alpha, 0, 1))
		add(b.Max.Y(), func() { fillBox(screen, v, b, premultiply(c)) })
	})
	tags.Vine.Each(w, func(e *donburi.Entry) {
		base := components.Transform.Get(e).Position
		cl := components.Climbable.Get(e)
		r := float32(components.Collider.Get(e).Radius * v.scale)
		add(cl.Top, func() {
			x0, y0 := v.point(mgl64.Vec3{base.X(), cl.Bottom, base.Z()})
			x1, y1 := v.point(mgl64.Vec3{base.X(), cl.Top, base.Z()})
			vector.StrokeLine(screen, x0, y0, x1, y1, r, cfg.Green, true)
		})
	})
	tags.Collectible.Each(w, func(e *donburi.Entry) {
		p := components.Transform.Get(e).Position
		c := components.Collectible.Get(e)
		col := cfg.Orange
		if c.Kind == components.CollectibleSpecial {
			col = cfg.Purple
			if c.Item == cfg.Collectible.WinItem {
				col = cfg.Yellow
			}
		}
		// Spin reads as a pulsing radius from above.
		spin := math.Abs(math.Cos(gamemath.YawOf(components.Transform.Get(e).Rotation)))
		r := float32(v.scale * cfg.Collectible.PickupRange * (0.3 + 0.2*spin))
		add(p.Y(), func() {
			x, y := v.point(p)
			vector.DrawFilledCircle(screen, x, y, r, col, true)
		})
	})
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		tr := components.Transform.Get(e)
		b := components.Body.Get(e).Bounds(tr)
		fwd := tr.Forward()
		col := cfg.Red
		if components.Enemy.Get(e).Chasing {
			col = cfg.Orange
		}
		add(b.Max.Y(), func() {
			fillBox(screen, v, b, col)
			x, y := v.point(b.Center())
			tx, ty := v.point(b.Center().Add(fwd.Mul(b.HalfExtents().X() * 1.5)))
			vector.StrokeLine(screen, x, y, tx, ty, 2, cfg.White, true)
		})
	})
	tags.Player.Each(w, func(e *donburi.Entry) {
		tr := components.Transform.Get(e)
		b := components.Body.Get(e).Bounds(tr)
		fwd := tr.Forward()
		overlay := components.Overlay.Get(e)
		boost := components.Boost.Get(e)
		add(b.Max.Y(), func() { drawPlayer(screen, v, b, fwd, overlay, boost) })
	})

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].top != items[j].top {
			return items[i].top < items[j].top
		}
		return items[i].order < items[j].order
	})
	for _, it := range items {
		it.draw()
	}
}

var shaderOp = &ebiten.DrawRectShaderOptions{}

func drawPlayer(screen *ebiten.Image, v view, b gamemath.AABB, fwd mgl64.Vec3, overlay *components.OverlayData, boost *components.BoostData) {
	tint := cfg.White
	flash := float32(0)
	switch {
	case overlay.ScaledUp:
		tint = cfg.HUD.PowerUpColor
	case boost.Active:
		tint = cfg.Yellow
		flash = float32(0.25 + 0.25*math.Sin(boost.Remaining*20))
	case overlay.Climbing:
		tint = cfg.LightGreen
	}

	x, y, w, h := v.rect(b)
	if assets.TintShader != nil && w >= 1 && h >= 1 {
		shaderOp.GeoM.Reset()
		shaderOp.GeoM.Translate(float64(x), float64(y))
		shaderOp.Uniforms = map[string]any{
			"Tint":  []float32{float32(tint.R) / 255, float32(tint.G) / 255, float32(tint.B) / 255, 1},
			"Flash": flash,
		}
		screen.DrawRectShader(int(w), int(h), assets.TintShader, shaderOp)
	} else {
		vector.DrawFilledRect(screen, x, y, w, h, tint, false)
	}

	// Facing tick
	c := b.Center()
	c[1] = b.Max.Y()
	x0, y0 := v.point(c)
	x1, y1 := v.point(c.Add(fwd.Mul(b.HalfExtents().X() * 2)))
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, cfg.Red, true)
}

func fillBox(screen *ebiten.Image, v view, b gamemath.AABB, c color.Color) {
	x, y, w, h := v.rect(b)
	vector.DrawFilledRect(screen, x, y, w, h, c, false)
}

// shade lightens higher surfaces so height reads from above.
func shade(c color.RGBA, top float64) color.RGBA {
	k := mgl64.Clamp(0.7+top*0.08, 0.4, 1.3)
	scale := func(x uint8) uint8 { return uint8(mgl64.Clamp(float64(x)*k, 0, 255)) }
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), c.A}
}

func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}
