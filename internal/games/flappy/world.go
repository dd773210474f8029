package flappy

import (
	"time"

	"github.com/vovakirdan/sarangola/internal/config"
	"github.com/vovakirdan/sarangola/internal/core"
)

// Cause tells what ended a run.
type Cause int

const (
	CauseNone     Cause = iota
	CauseObstacle       // Hit a top or bottom segment
	CauseCeiling        // Flew above the canvas
	CauseGround         // Fell below the canvas
)

// String returns a human-readable name for the cause.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseObstacle:
		return "obstacle"
	case CauseCeiling:
		return "ceiling"
	case CauseGround:
		return "ground"
	default:
		return "unknown"
	}
}

// Player is the kite. X never changes during a run.
type Player struct {
	X, Y float64 // Top-left corner
	W, H float64
	VY   float64 // Vertical velocity, positive is down
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// World is the complete simulation state of one run.
type World struct {
	Player     Player
	Obstacles  []Obstacle // Spawn order, which is also left-to-right order
	Score      int
	Started    bool
	Paused     bool
	Over       bool
	Cause      Cause
	SpawnTimer time.Duration
	Frames     int // Simulated frames since the run started
}

// NewWorld creates a world ready for a new run.
func NewWorld(cfg *config.GameConfig) *World {
	w := &World{Obstacles: make([]Obstacle, 0, 8)}
	w.Reset(cfg)
	return w
}

// Reset puts the kite back at its start position and clears the run.
func (w *World) Reset(cfg *config.GameConfig) {
	w.Player = Player{
		X: cfg.Player.X,
		Y: cfg.Canvas.Height / 2,
		W: cfg.Player.Width,
		H: cfg.Player.Height,
	}
	w.Obstacles = w.Obstacles[:0]
	w.Score = 0
	w.Started = false
	w.Paused = false
	w.Over = false
	w.Cause = CauseNone
	w.SpawnTimer = 0
	w.Frames = 0
}

// Outcome reports what happened during one Step.
type Outcome struct {
	Scored int  // Obstacles cleared this frame
	Ended  bool // The run ended this frame
}

// Step advances the world by one frame. dt is the time since the previous
// frame and only drives the spawn timer; physics constants are per frame.
// Input collected since the previous frame is applied first.
func Step(w *World, cfg *config.GameConfig, rng RandSource, dt time.Duration, in core.InputFrame) Outcome {
	var out Outcome
	if w.Over {
		return out
	}

	if in.Has(core.ActionPause) && w.Started {
		w.Paused = !w.Paused
	}
	if w.Paused {
		return out
	}

	if in.Has(core.ActionClick) {
		w.Started = true
		w.Player.VY = cfg.Physics.FlapVelocity
	}
	if in.Has(core.ActionFlap) {
		w.Player.VY = cfg.Physics.FlapVelocity
	}

	if !w.Started {
		return out
	}
	w.Frames++

	// Gravity
	w.Player.VY += cfg.Physics.Gravity
	w.Player.Y += w.Player.VY

	// Spawn
	w.SpawnTimer += dt
	if w.SpawnTimer > cfg.Obstacles.SpawnInterval() {
		w.Obstacles = append(w.Obstacles, newObstacle(cfg, rng))
		w.SpawnTimer = 0
	}

	// Scroll
	for i := range w.Obstacles {
		w.Obstacles[i].X -= cfg.Physics.ScrollSpeed
	}

	// Only the leftmost obstacle can leave the canvas
	if len(w.Obstacles) > 0 && w.Obstacles[0].OffScreen(cfg) {
		w.Obstacles = append(w.Obstacles[:0], w.Obstacles[1:]...)
		w.Score++
		out.Scored = 1
	}

	// Collisions
	kite := w.Player.Rect()
	switch {
	case Hits(w.Obstacles, cfg, kite):
		w.end(CauseObstacle)
	case kite.Y < 0:
		w.end(CauseCeiling)
	case kite.Bottom() > cfg.Canvas.Height:
		w.end(CauseGround)
	}
	out.Ended = w.Over

	return out
}

func (w *World) end(cause Cause) {
	w.Over = true
	w.Started = false
	w.Cause = cause
}
