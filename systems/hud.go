package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/fonts"
	"github.com/automoto/vinehop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	livesRadius = 5
	livesGap    = 4
	slotSize    = 28
)

// DrawHUD renders lives, pickups, the dash gauge and power-up timers in the
// top-left corner, and the item slot in the top-right.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	if !fonts.Loaded(fonts.HUD) {
		return
	}
	h := cfg.HUD
	face := fonts.HUD.Get()
	small := fonts.HUDSmall.Get()

	x := float32(h.Margin)
	y := float32(h.Margin)

	drawLives(screen, playerEntry, x, y)
	y += 2*livesRadius + livesGap*2

	inv := components.Inventory.Get(playerEntry)
	text.Draw(screen, fmt.Sprintf("carrots %d/%d", inv.NormalCollected, inv.NormalTotal),
		face, int(x), int(y)+12, h.TextColor)
	y += 18

	// Dash cooldown gauge
	loc := components.Locomotion.Get(playerEntry)
	clock := GetClock(ecs.World)
	drawBar(screen, x, y, loc.DashCooldownFraction(clock.Unscaled, cfg.Dash.Cooldown), h.BarColor)
	text.Draw(screen, "dash", small, int(x+float32(h.BarWidth))+4, int(y+float32(h.BarHeight)), h.TextColor)
	y += float32(h.BarHeight) + 6

	pu := components.ScalePowerUp.Get(playerEntry)
	switch pu.State {
	case components.PowerUpActive:
		drawBar(screen, x, y, pu.Remaining/cfg.ScalePowerUp.Duration, h.PowerUpColor)
		text.Draw(screen, "grow", small, int(x+float32(h.BarWidth))+4, int(y+float32(h.BarHeight)), h.TextColor)
		y += float32(h.BarHeight) + 6
	case components.PowerUpArmed:
		text.Draw(screen, "grow ready", small, int(x), int(y)+10, h.PowerUpColor)
		y += 14
	}

	boost := components.Boost.Get(playerEntry)
	switch {
	case boost.Active:
		drawBar(screen, x, y, boost.Remaining/cfg.Boost.Duration, cfg.Yellow)
		text.Draw(screen, "boost", small, int(x+float32(h.BarWidth))+4, int(y+float32(h.BarHeight)), h.TextColor)
	case inv.AllNormalCollected():
		text.Draw(screen, "boost ready", small, int(x), int(y)+10, cfg.Yellow)
	}

	drawItemSlot(ecs.World, screen, inv)
	drawCompass(ecs.World, screen)
}

func drawLives(screen *ebiten.Image, playerEntry *donburi.Entry, x, y float32) {
	lives := components.Lives.Get(playerEntry)
	for i := 0; i < lives.MaxLives; i++ {
		cx := x + livesRadius + float32(i)*(2*livesRadius+livesGap)
		cy := y + livesRadius
		if i < lives.Lives {
			vector.DrawFilledCircle(screen, cx, cy, livesRadius, cfg.Red, true)
		} else {
			vector.StrokeCircle(screen, cx, cy, livesRadius, 1, cfg.Red, true)
		}
	}
}

func drawBar(screen *ebiten.Image, x, y float32, fraction float64, c color.Color) {
	h := cfg.HUD
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	vector.DrawFilledRect(screen, x, y, float32(h.BarWidth), float32(h.BarHeight), h.BackgroundColor, false)
	vector.DrawFilledRect(screen, x, y, float32(h.BarWidth*fraction), float32(h.BarHeight), c, false)
}

// drawItemSlot shows the grow item count. The slot pulses and spins while a
// slot effect runs.
func drawItemSlot(w donburi.World, screen *ebiten.Image, inv *components.InventoryData) {
	h := cfg.HUD
	cx := float64(screen.Bounds().Dx()) - h.Margin - slotSize/2
	cy := h.Margin + slotSize/2

	scale, angle := 1.0, 0.0
	if e, ok := components.SlotEffect.First(w); ok {
		fx := components.SlotEffect.Get(e)
		scale, angle = fx.Scale, fx.Angle
	}

	half := slotSize / 2 * scale
	var xs, ys [4]float32
	for i := 0; i < 4; i++ {
		a := angle + math.Pi/4 + float64(i)*math.Pi/2
		r := half * math.Sqrt2
		xs[i] = float32(cx + r*math.Cos(a))
		ys[i] = float32(cy + r*math.Sin(a))
	}
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		vector.StrokeLine(screen, xs[i], ys[i], xs[j], ys[j], 2, h.PowerUpColor, true)
	}

	count := inv.Special.Count(cfg.ScalePowerUp.Item)
	text.Draw(screen, fmt.Sprintf("%d", count), fonts.HUD.Get(), int(cx)-4, int(cy)+5, h.TextColor)
}

// drawCompass points along the camera heading, which is "forward" for input.
func drawCompass(w donburi.World, screen *ebiten.Image) {
	e, ok := components.Camera.First(w)
	if !ok {
		return
	}
	yaw := components.Camera.Get(e).Yaw
	h := cfg.HUD
	cx := float32(float64(screen.Bounds().Dx()) - h.Margin - slotSize/2)
	cy := float32(h.Margin + slotSize + 24)
	// Forward is +Z, which is up the screen.
	dx := float32(math.Sin(yaw)) * 10
	dy := -float32(math.Cos(yaw)) * 10
	vector.StrokeCircle(screen, cx, cy, 12, 1, cfg.Gray, true)
	vector.StrokeLine(screen, cx, cy, cx+dx, cy+dy, 2, cfg.White, true)
}
