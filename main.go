package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/vinehop/assets"
	"github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/fonts"
	"github.com/automoto/vinehop/logging"
	"github.com/automoto/vinehop/scenes"
	"github.com/automoto/vinehop/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	tuning *config.TuningWatcher
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(levelName string, tuning *config.TuningWatcher) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
		tuning: tuning,
	}
	g.scene = scenes.NewPlatformerScene(g, levelName)
	return g
}

func (g *Game) Update() error {
	g.reloadTuning()
	g.scene.Update()
	return nil
}

// reloadTuning applies tuning file edits between frames, on the game loop, so
// systems never see the configuration change mid-tick.
func (g *Game) reloadTuning() {
	if g.tuning == nil {
		return
	}
	log := logging.Named("tuning")
	for {
		select {
		case path := <-g.tuning.Events:
			if err := config.LoadTuning(path); err != nil {
				log.Warnw("tuning reload rejected", "path", path, "error", err)
				continue
			}
			log.Infow("tuning reloaded", "path", path)
		case err := <-g.tuning.Errors:
			log.Warnw("tuning watcher error", "error", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelName := flag.String("level", assets.DefaultLevel, "level to play")
	tuningPath := flag.String("tuning", "tuning.yaml", "YAML file overriding gameplay tuning; reloaded on change")
	logPath := flag.String("log", "vinehop.log", "log file")
	debug := flag.Bool("debug", false, "debug logging and collider overlay")
	flag.Parse()

	config.Debug.LogFile = *logPath
	config.Debug.TuningFile = *tuningPath
	if *debug {
		config.Debug.ShowColliders = true
	}

	if err := logging.Init(config.Debug.LogFile, *debug); err != nil {
		log.Fatalf("Failed to initialise logging: %v", err)
	}
	defer logging.Sync()

	if err := config.LoadTuning(config.Debug.TuningFile); err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}
	tuning, err := config.WatchTuning(config.Debug.TuningFile)
	if err != nil {
		logging.Named("tuning").Warnw("hot reload disabled", "error", err)
	} else {
		defer tuning.Close()
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("vinehop")
	ebiten.SetTPS(config.Simulation.TickRate)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	if err := ebiten.RunGame(NewGame(*levelName, tuning)); err != nil {
		log.Fatal(err)
	}
}
