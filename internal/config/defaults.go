package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml and is used if the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: PhysicsConfig{
			Gravity:         0.8,
			JumpForce:       -15,
			ScrollSpeed:     6,
			BoostMultiplier: 1.4,
		},
		World: WorldConfig{
			Width:         960,
			Height:        440,
			GroundHeight:  100,
			CeilingHeight: 40,
		},
		Player: PlayerConfig{
			X:    150,
			Size: 40,
		},
		Spawn: SpawnConfig{
			Interval:     90,
			ObstacleSize: 40,
		},
		Entities: EntitiesConfig{
			PickupSize:   20,
			PortalWidth:  30,
			PortalHeight: 60,
			TileSize:     40,
		},
		Score: ScoreConfig{
			FrameDivisor: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
