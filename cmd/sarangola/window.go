package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sarangola/internal/games/flappy"
	"github.com/vovakirdan/sarangola/internal/platform/tui"
	"github.com/vovakirdan/sarangola/internal/platform/window"
	"github.com/vovakirdan/sarangola/internal/storage"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Sarangola Flappy in a 400x600 window.

Controls:
  Space/Up/W     - Flap
  Click/Enter    - Start and flap, press buttons
  P              - Pause
  Esc/B          - Back to the landing page
  R              - Play again (game-over screen)
  Q              - Quit

Examples:
  sarangola window
  sarangola window --fps 120 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr, "sarangola")
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

	runs, err := storage.OpenRunLog()
	if err != nil {
		logger.Warn("could not open run log", "error", err)
		runs = nil
	} else {
		defer runs.Close()
	}

	game := flappy.New(cfg)
	err = window.Run(window.Options{
		Game:    game,
		Runs:    runs,
		Runtime: rc,
		Logger:  logger,
	})

	tui.LogSummary(context.Background(), logger, game, runs)
	return err
}
