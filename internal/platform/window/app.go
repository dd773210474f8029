// Package window runs Sarangola Flappy in a desktop window with ebiten.
// The window is exactly one canvas in size; one logical unit is one pixel.
package window

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/sarangola/internal/config"
	"github.com/vovakirdan/sarangola/internal/core"
	"github.com/vovakirdan/sarangola/internal/games/flappy"
	"github.com/vovakirdan/sarangola/internal/storage"
)

const (
	gameOverDelay = 1500 * time.Millisecond
	recentRuns    = 5
)

type screenID int

const (
	screenLanding screenID = iota
	screenPlaying
	screenGameOver
)

// Options configures an App.
type Options struct {
	Game    *flappy.Game    // Defaults to the built-in configuration
	Runs    *storage.RunLog // Optional
	Runtime core.RuntimeConfig
	Logger  *log.Logger // Optional, discards by default
}

// App implements ebiten.Game.
type App struct {
	game    *flappy.Game
	runs    *storage.RunLog
	runtime core.RuntimeConfig
	logger  *log.Logger
	face    *text.GoTextFaceSource

	screen      screenID
	focus       int
	overFrames  int // Updates left before the game-over screen
	runsStarted int
	recent      []storage.Run

	landing  []Button
	gameOver []Button
}

// NewApp creates the window app on the landing page.
func NewApp(opts Options) *App {
	if opts.Game == nil {
		opts.Game = flappy.New(config.Default())
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	a := &App{
		game:    opts.Game,
		runs:    opts.Runs,
		runtime: opts.Runtime,
		logger:  opts.Logger,
	}

	w, _ := a.game.Canvas()
	left := w/2 - 100
	a.landing = []Button{
		{Label: "Play", Rect: core.NewRect(left, 280, 200, 50), OnPress: a.startRun},
		{Label: "New Game", Rect: core.NewRect(left, 350, 200, 50), OnPress: a.newGame},
	}
	a.gameOver = []Button{
		{Label: "Play Again", Rect: core.NewRect(left, 400, 200, 50), OnPress: a.startRun},
		{Label: "Quit", Rect: core.NewRect(left, 470, 200, 50), OnPress: a.toLanding},
	}
	return a
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	return a.update(pollInput())
}

// update advances the app by one tick. Returning ebiten.Termination
// closes the window.
func (a *App) update(in Input) error {
	if in.Quit {
		return ebiten.Termination
	}

	switch a.screen {
	case screenPlaying:
		a.updatePlaying(in)
	case screenGameOver:
		switch {
		case in.Restart:
			a.startRun()
		case in.Back:
			a.toLanding()
		default:
			a.updateMenu(a.gameOver, in)
		}
	default:
		a.updateMenu(a.landing, in)
	}
	return nil
}

func (a *App) updateMenu(buttons []Button, in Input) {
	switch {
	case in.Up:
		a.focus = (a.focus + len(buttons) - 1) % len(buttons)
	case in.Down:
		a.focus = (a.focus + 1) % len(buttons)
	case in.Enter || in.Space:
		buttons[a.focus].OnPress()
	case in.Click:
		if i := buttonAt(buttons, in.X, in.Y); i >= 0 {
			a.focus = i
			buttons[i].OnPress()
		}
	}
}

func (a *App) updatePlaying(in Input) {
	if a.game.State().GameOver {
		a.overFrames--
		if a.overFrames <= 0 || in.Any() {
			a.screen = screenGameOver
			a.focus = 0
		}
		return
	}
	if in.Back {
		a.logger.Debug("run abandoned", "score", a.game.State().Score)
		a.toLanding()
		return
	}

	frame := core.NewInputFrame()
	if in.Space || in.Up {
		frame.Set(core.ActionFlap)
	}
	if in.Click || in.Enter {
		frame.Set(core.ActionClick)
	}
	if in.Pause {
		frame.Set(core.ActionPause)
	}

	res := a.game.Step(frame)
	if res.Ended {
		a.recordRun(res.State.Score)
		a.overFrames = int(gameOverDelay * time.Duration(a.runtime.TickRate) / time.Second)
	}
}

// startRun resets the game and shows the canvas.
func (a *App) startRun() {
	rc := a.runtime
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	} else {
		rc.Seed += int64(a.runsStarted)
	}
	a.runsStarted++

	a.game.Reset(rc)
	a.screen = screenPlaying
	a.focus = 0
	a.logger.Debug("run started", "run", a.runsStarted, "seed", rc.Seed)
}

// newGame clears the session stats and starts a run.
func (a *App) newGame() {
	a.game.ResetStats()
	a.logger.Debug("session stats cleared")
	a.startRun()
}

func (a *App) toLanding() {
	a.screen = screenLanding
	a.focus = 0
}

// recordRun stores the finished run. Failures are logged and ignored.
func (a *App) recordRun(score int) {
	stats := a.game.Stats()
	a.logger.Info("run finished",
		"score", score,
		"cause", a.game.Cause(),
		"frames", a.game.Frames(),
		"high", stats.HighScore,
		"average", flappy.FormatAverage(stats.Average()),
	)

	if a.runs == nil {
		return
	}
	ctx := context.Background()
	_, err := a.runs.Record(ctx, storage.Run{
		Score:  score,
		Frames: a.game.Frames(),
		Cause:  a.game.Cause().String(),
	})
	if err != nil {
		a.logger.Warn("could not record run", "error", err)
		return
	}
	recent, err := a.runs.Recent(ctx, recentRuns)
	if err != nil {
		a.logger.Warn("could not load recent runs", "error", err)
		return
	}
	a.recent = recent
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.draw(imageSurface{img: screen, face: a.face})
}

func (a *App) draw(dst core.Surface) {
	switch a.screen {
	case screenPlaying:
		a.game.Render(dst)
	case screenGameOver:
		drawGameOver(dst, a.game.State().Score, a.game.Stats(), a.recent, a.gameOver, a.focus)
	default:
		drawLanding(dst, a.game.Title(), a.game.Stats(), a.landing, a.focus)
	}
}

// Layout implements ebiten.Game. The canvas size is fixed.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := a.game.Canvas()
	return int(w), int(h)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	app := NewApp(opts)

	face, err := loadFace()
	if err != nil {
		return err
	}
	app.face = face

	w, h := app.game.Canvas()
	ebiten.SetWindowSize(int(w), int(h))
	ebiten.SetWindowTitle(app.game.Title())
	ebiten.SetTPS(app.runtime.TickRate)

	app.logger.Info("opening window", "width", w, "height", h, "tps", app.runtime.TickRate)
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
