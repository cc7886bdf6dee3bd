package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/automoto/vinehop/assets"
	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/logging"
	"github.com/automoto/vinehop/systems"
	"github.com/automoto/vinehop/systems/factory"
	"github.com/automoto/vinehop/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelName    string
	player       *donburi.Entry
	overlay      *ui.OverlayUI
	once         sync.Once
}

// NewPlatformerScene creates a scene running the named level.
func NewPlatformerScene(sc SceneChanger, levelName string) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levelName: levelName}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.ActionJustPressed(ps.ecs.World, cfg.ActionRestart) {
		ps.restart()
		return
	}

	gs := systems.GetGameState(ps.ecs.World)
	if gs.Ended() && ps.overlay != nil {
		inv := components.Inventory.Get(ps.player)
		ps.overlay.SetResult(gs.Outcome == components.OutcomeWon, inv.NormalCollected, inv.NormalTotal)
		ps.overlay.Update()
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.RGBA{24, 40, 24, 255})

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)

	if ps.overlay != nil && systems.GetGameState(ps.ecs.World).Ended() {
		ps.overlay.UI.Draw(screen)
	}
}

// restart reloads the level from scratch in a new world.
func (ps *PlatformerScene) restart() {
	logging.Named("scene").Infow("restarting level", "level", ps.levelName)
	ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, ps.levelName))
}

func (ps *PlatformerScene) configure() {
	log := logging.Named("scene")

	level, err := assets.LoadLevel(ps.levelName)
	if err != nil {
		log.Errorw("could not load level", "level", ps.levelName, "error", err)
		panic("failed to load level: " + err.Error())
	}

	// Load shaders for player tinting
	if err := assets.LoadShaders(); err != nil {
		log.Warnw("shaders unavailable, drawing flat colours", "error", err)
	}

	overlay, err := ui.NewOverlayUI(ps.restart, func() { os.Exit(0) })
	if err != nil {
		log.Warnw("end-of-run overlay unavailable", "error", err)
	}
	ps.overlay = overlay

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that run on real time
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdatePlayerInput)

	// Fixed-tick simulation
	for _, s := range systems.Simulation() {
		ecs.AddSystem(s)
	}

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ps.ecs = ecs
	systems.SubscribeEventLog(ecs.World)
	ps.player = factory.CreateLevel(ecs, level)
}
