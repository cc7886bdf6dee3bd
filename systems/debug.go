package systems

import (
	"image/color"

	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the collider overlay.
func UpdateDebug(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs.World)
	if !GetAction(input, cfg.ActionToggleDebug).JustPressed {
		return
	}
	cfg.Debug.ShowColliders = !cfg.Debug.ShowColliders
	if err := SaveSettings(CurrentSettings()); err != nil {
		logging.Named("persistence").Warnw("could not save settings", "error", err)
	}
}

// DrawDebug outlines every collider and body, coloured by what it is.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowColliders {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	v := newView(components.Camera.Get(cameraEntry), screen)

	components.Collider.Each(ecs.World, func(e *donburi.Entry) {
		col := components.Collider.Get(e)
		if !col.Enabled {
			return
		}
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case col.Trigger:
			c = color.RGBA{255, 0, 255, 255}
		case col.Layer == cfg.LayerDestructible:
			c = cfg.Orange
		case col.Layer == cfg.LayerDebris:
			c = cfg.Yellow
		}
		x, y, w, h := v.rect(col.Bounds)
		vector.StrokeRect(screen, x, y, w, h, 1, c, false)
	})

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		x, y, w, h := v.rect(body.Bounds(components.Transform.Get(e)))
		c := cfg.Blue
		if body.Grounded {
			c = cfg.Green
		}
		vector.StrokeRect(screen, x, y, w, h, 1, c, false)
	})
}
