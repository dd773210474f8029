// Package config provides YAML-based game configuration loading
// and validation.
package config

import (
	"errors"
	"fmt"
	"time"
)

// GameConfig contains all tunables of the game.
type GameConfig struct {
	Canvas    CanvasConfig    `yaml:"canvas"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
}

// CanvasConfig defines the logical drawing surface.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-frame physics constants.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // Added to velocity every frame
	FlapVelocity float64 `yaml:"flap_velocity"` // Velocity set by a flap (negative = up)
	ScrollSpeed  float64 `yaml:"scroll_speed"`  // Obstacle x decrement per frame
}

// PlayerConfig defines the kite hitbox and its fixed column.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstaclesConfig defines obstacle geometry and spawning.
type ObstaclesConfig struct {
	Width           float64 `yaml:"width"`
	Gap             float64 `yaml:"gap"`               // Height of the opening
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"` // Time between spawns
	Margin          float64 `yaml:"margin"`            // Minimum distance of the gap from either edge
}

// SpawnInterval returns the spawn interval as a duration.
func (o ObstaclesConfig) SpawnInterval() time.Duration {
	return time.Duration(o.SpawnIntervalMS) * time.Millisecond
}

// GapRange returns the half-open range [min, max) the gap top is drawn from.
func (c GameConfig) GapRange() (float64, float64) {
	return c.Obstacles.Margin, c.Canvas.Height - c.Obstacles.Gap - c.Obstacles.Margin
}

// Validate checks that the configuration describes a playable game.
func (c GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Canvas.Width > 0, "canvas.width must be positive, got %v", c.Canvas.Width)
	check(c.Canvas.Height > 0, "canvas.height must be positive, got %v", c.Canvas.Height)
	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.FlapVelocity < 0, "physics.flap_velocity must be negative, got %v", c.Physics.FlapVelocity)
	check(c.Physics.ScrollSpeed > 0, "physics.scroll_speed must be positive, got %v", c.Physics.ScrollSpeed)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	check(c.Player.X >= 0 && c.Player.X+c.Player.Width <= c.Canvas.Width, "player.x %v puts the kite off the canvas", c.Player.X)
	check(c.Player.Height < c.Canvas.Height, "player.height %v must be below canvas height", c.Player.Height)
	check(c.Obstacles.Width > 0, "obstacles.width must be positive, got %v", c.Obstacles.Width)
	check(c.Obstacles.Gap > c.Player.Height, "obstacles.gap %v must exceed player.height %v", c.Obstacles.Gap, c.Player.Height)
	check(c.Obstacles.SpawnIntervalMS > 0, "obstacles.spawn_interval_ms must be positive, got %d", c.Obstacles.SpawnIntervalMS)
	check(c.Obstacles.Margin >= 0, "obstacles.margin must not be negative, got %v", c.Obstacles.Margin)

	if lo, hi := c.GapRange(); hi <= lo {
		errs = append(errs, fmt.Errorf("obstacles.gap %v and margin %v leave no room on a %v high canvas",
			c.Obstacles.Gap, c.Obstacles.Margin, c.Canvas.Height))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
