package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sarangola/internal/games/flappy"
	"github.com/vovakirdan/sarangola/internal/platform/tui"
	"github.com/vovakirdan/sarangola/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Sarangola Flappy in the terminal.

The 400x600 canvas is scaled to fit the terminal. Logs are discarded
unless --log-file is set, since the game owns the screen.

Controls:
  Space/Up/W     - Flap
  Enter/Click    - Start and flap
  P              - Pause
  Esc/B          - Back to the landing page
  R              - Play again (game-over screen)
  Q/Ctrl+C       - Quit

Examples:
  sarangola play
  sarangola play --seed 42
  sarangola play --config ./my-sarangola.yaml --log-file play.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard, "sarangola")
	if err != nil {
		return err
	}
	defer closeLog()

	rc, err := runtimeConfig()
	if err != nil {
		return err
	}
	cfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	// Size the first frame before Bubble Tea reports it
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	runs, err := storage.OpenRunLog()
	if err != nil {
		logger.Warn("could not open run log", "error", err)
		runs = nil
	} else {
		defer runs.Close()
	}

	game := flappy.New(cfg)
	err = tui.Run(tui.Options{
		Game:    game,
		Runs:    runs,
		Runtime: rc,
		Logger:  logger,
		Width:   width,
		Height:  height,
	})

	tui.LogSummary(context.Background(), logger, game, runs)
	return err
}
