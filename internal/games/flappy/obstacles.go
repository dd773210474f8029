package flappy

import (
	"github.com/vovakirdan/sarangola/internal/config"
	"github.com/vovakirdan/sarangola/internal/core"
)

// RandSource supplies uniform values in [0, 1). *rand.Rand satisfies it;
// tests pass fixed sequences.
type RandSource interface {
	Float64() float64
}

// Obstacle is a pair of solid segments with a gap between them.
type Obstacle struct {
	X    float64 // Left edge
	GapY float64 // Top of the gap; the top segment is this tall
}

// TopRect returns the collision rectangle for the top segment.
func (o Obstacle) TopRect(cfg *config.GameConfig) core.Rect {
	return core.NewRect(o.X, 0, cfg.Obstacles.Width, o.GapY)
}

// BottomRect returns the collision rectangle for the bottom segment,
// which fills from the end of the gap to the bottom of the canvas.
func (o Obstacle) BottomRect(cfg *config.GameConfig) core.Rect {
	bottomY := o.GapY + cfg.Obstacles.Gap
	return core.NewRect(o.X, bottomY, cfg.Obstacles.Width, cfg.Canvas.Height-bottomY)
}

// OffScreen reports whether the obstacle has fully left the canvas on the left.
func (o Obstacle) OffScreen(cfg *config.GameConfig) bool {
	return o.X+cfg.Obstacles.Width <= 0
}

// newObstacle creates an obstacle at the right edge with a random gap.
func newObstacle(cfg *config.GameConfig, rng RandSource) Obstacle {
	lo, hi := cfg.GapRange()
	return Obstacle{
		X:    cfg.Canvas.Width,
		GapY: lo + rng.Float64()*(hi-lo),
	}
}

// Hits reports whether r overlaps either solid segment of any obstacle.
func Hits(obstacles []Obstacle, cfg *config.GameConfig, r core.Rect) bool {
	for _, o := range obstacles {
		if r.Intersects(o.TopRect(cfg)) || r.Intersects(o.BottomRect(cfg)) {
			return true
		}
	}
	return false
}
