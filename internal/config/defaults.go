package config

import (
	_ "embed"
)

//go:embed defaults/sarangola.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors the embedded
// defaults/sarangola.yaml and is used if that file fails to parse.
func Default() GameConfig {
	return GameConfig{
		Canvas: CanvasConfig{
			Width:  400,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:      0.3,
			FlapVelocity: -10,
			ScrollSpeed:  3,
		},
		Player: PlayerConfig{
			X:      80,
			Width:  40,
			Height: 40,
		},
		Obstacles: ObstaclesConfig{
			Width:           60,
			Gap:             150,
			SpawnIntervalMS: 2000,
			Margin:          50,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
