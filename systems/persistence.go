package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen        bool    `json:"fullscreen"`
	ResolutionIndex   int     `json:"resolutionIndex"`
	CameraSensitivity float64 `json:"cameraSensitivity"`
	ShowColliders     bool    `json:"showColliders"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// cameraSensitivity scales the camera turn rate; it follows the saved settings.
var cameraSensitivity = cfg.Settings.DefaultSensitivity

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		logging.Named("persistence").Warnw("could not initialize persistence", "error", err)
		return fmt.Errorf("open settings store: %w", err)
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil settings when nothing
// has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		logging.Named("persistence").Warnw("could not load settings", "error", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// CurrentSettings snapshots the settings in effect.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		Fullscreen:        ebiten.IsFullscreen(),
		ResolutionIndex:   cfg.Settings.DefaultResolutionIndex,
		CameraSensitivity: cameraSensitivity,
		ShowColliders:     cfg.Debug.ShowColliders,
	}
}

// ApplySavedSettings applies loaded settings to the window, camera and debug view.
// Used during startup before scenes are created.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}

	if saved.CameraSensitivity > 0 {
		cameraSensitivity = saved.CameraSensitivity
	}
	cfg.Debug.ShowColliders = saved.ShowColliders

	// Apply fullscreen
	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
		res := cfg.Settings.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}
