package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// tuningFile mirrors the sections a tuning YAML may override.
type tuningFile struct {
	Player       *PlayerConfig       `yaml:"player"`
	Dash         *DashConfig         `yaml:"dash"`
	Climb        *ClimbConfig        `yaml:"climb"`
	ScalePowerUp *ScalePowerUpConfig `yaml:"scalePowerUp"`
	Boost        *BoostConfig        `yaml:"boost"`
	Destructible *DestructibleConfig `yaml:"destructible"`
	Physics      *PhysicsConfig      `yaml:"physics"`
	Platform     *PlatformConfig     `yaml:"platform"`
	Enemy        *EnemyConfig        `yaml:"enemy"`
	Collectible  *CollectibleConfig  `yaml:"collectible"`
	Camera       *CameraConfig       `yaml:"camera"`
}

// LoadTuning overlays the YAML file at path onto the live configuration.
// A missing file is not an error.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}
	if err := ApplyTuning(data); err != nil {
		return fmt.Errorf("apply tuning %s: %w", path, err)
	}
	return nil
}

// ApplyTuning overlays YAML onto the live configuration. Keys absent from data
// keep their current values, and nothing changes when data is invalid.
func ApplyTuning(data []byte) error {
	player, dash, climb := Player, Dash, Climb
	scale, boost, destructible := ScalePowerUp, Boost, Destructible
	physics, platform, collectible, camera := Physics, Platform, Collectible, Camera
	enemy := Enemy

	t := tuningFile{
		Player:       &player,
		Dash:         &dash,
		Climb:        &climb,
		ScalePowerUp: &scale,
		Boost:        &boost,
		Destructible: &destructible,
		Physics:      &physics,
		Platform:     &platform,
		Enemy:        &enemy,
		Collectible:  &collectible,
		Camera:       &camera,
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	Player, Dash, Climb = player, dash, climb
	ScalePowerUp, Boost, Destructible = scale, boost, destructible
	Physics, Platform, Collectible, Camera = physics, platform, collectible, camera
	Enemy = enemy
	return nil
}
