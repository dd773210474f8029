// Package flappy implements Sarangola Flappy, a Flappy Bird-style game.
// The player keeps a kite airborne through gaps between obstacles.
//
// World and Step hold the pure simulation; Game wraps them with a seeded
// random source, a fixed frame interval and session statistics for the
// platform front-ends.
package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/sarangola/internal/config"
	"github.com/vovakirdan/sarangola/internal/core"
)

// Game implements the game contract used by the front-ends.
type Game struct {
	cfg   config.GameConfig
	world *World
	stats SessionStats
	rng   *rand.Rand
	dt    time.Duration // Fixed frame interval
}

// New creates a game with the given configuration, reset with the
// default runtime config.
func New(cfg config.GameConfig) *Game {
	g := &Game{cfg: cfg}
	g.world = NewWorld(&g.cfg)
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sarangola Flappy"
}

// Config returns the game configuration.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// Reset starts a new run. Session stats are kept.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}
	g.dt = time.Second / time.Duration(rc.TickRate)
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.world.Reset(&g.cfg)
}

// ResetStats clears the session stats.
func (g *Game) ResetStats() {
	g.stats = SessionStats{}
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	out := Step(g.world, &g.cfg, g.rng, g.dt, in)
	if out.Ended {
		g.stats.Record(g.world.Score)
	}
	return core.StepResult{
		State:  g.State(),
		Scored: out.Scored,
		Ended:  out.Ended,
	}
}

// Render draws the current frame.
func (g *Game) Render(dst core.Surface) {
	Render(dst, g.world, &g.cfg)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score,
		Started:  g.world.Started,
		GameOver: g.world.Over,
		Paused:   g.world.Paused,
	}
}

// Stats returns the session stats.
func (g *Game) Stats() SessionStats {
	return g.stats
}

// Cause returns what ended the last run.
func (g *Game) Cause() Cause {
	return g.world.Cause
}

// Frames returns how many frames the current run has been simulated.
func (g *Game) Frames() int {
	return g.world.Frames
}

// Canvas returns the logical canvas size.
func (g *Game) Canvas() (float64, float64) {
	return g.cfg.Canvas.Width, g.cfg.Canvas.Height
}
