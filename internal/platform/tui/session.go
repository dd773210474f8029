package tui

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sarangola/internal/config"
	"github.com/vovakirdan/sarangola/internal/games/flappy"
	"github.com/vovakirdan/sarangola/internal/storage"
)

// session is what one SSH connection plays with. It outlives the Bubble
// Tea program, so end only runs once the program has stopped.
type session struct {
	logger *log.Logger
	game   *flappy.Game
	runs   *storage.RunLog
}

// start creates the game and its run log. Without a run log the session
// plays on and only the in-memory stats are kept.
func (ss *session) start(cfg config.GameConfig) {
	ss.game = flappy.New(cfg)

	runs, err := storage.OpenRunLog()
	if err != nil {
		ss.logger.Warn("could not open run log", "error", err)
		return
	}
	ss.runs = runs
}

// end logs the session summary and drops the run log.
func (ss *session) end(ctx context.Context) {
	if ss.game == nil {
		return
	}
	LogSummary(ctx, ss.logger, ss.game, ss.runs)

	if ss.runs == nil {
		return
	}
	if err := ss.runs.Close(); err != nil {
		ss.logger.Warn("could not close run log", "error", err)
	}
}

// LogSummary logs what a finished session played. The run log also counts
// runs from before a New Game cleared the stats, so it wins when present.
// Call it only after the game has stopped.
func LogSummary(ctx context.Context, logger *log.Logger, game *flappy.Game, runs *storage.RunLog) {
	if runs != nil {
		sum, err := runs.Summary(ctx)
		if err == nil {
			logger.Info("session summary",
				"games", sum.Runs,
				"high", sum.Best,
				"average", flappy.FormatAverage(sum.Average()),
			)
			return
		}
		logger.Warn("could not summarize run log", "error", err)
	}

	stats := game.Stats()
	logger.Info("session summary",
		"games", stats.GamesPlayed,
		"high", stats.HighScore,
		"average", flappy.FormatAverage(stats.Average()),
	)
}
