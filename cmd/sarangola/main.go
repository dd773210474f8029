// sarangola is a Flappy Bird-style arcade game: keep the kite in the air
// and fly it through the gaps.
//
// Usage:
//
//	sarangola play      - Play in the terminal
//	sarangola window    - Play in a desktop window
//	sarangola serve     - Start SSH server for remote play
//	sarangola config    - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom game config YAML
//	--log-level <level>   - debug, info, warn, error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sarangola/internal/config"
	"github.com/vovakirdan/sarangola/internal/core"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sarangola",
	Short: "Sarangola Flappy - keep the kite flying",
	Long: `Sarangola Flappy is a Flappy Bird-style arcade game. Flap to keep the
kite in the air and fly it through the gaps between the obstacles.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective game configuration

Examples:
  sarangola play
  sarangola play --seed 42
  sarangola window --fps 120
  sarangola serve --ssh :2222
  sarangola config --config ./my-sarangola.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig() (core.RuntimeConfig, error) {
	if flagFPS <= 0 {
		return core.RuntimeConfig{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}, nil
}

// loadGameConfig loads the game config and logs where it came from.
func loadGameConfig(logger *log.Logger) (config.GameConfig, error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}
	logger.Debug("loaded config", "source", src)
	return cfg, nil
}

// newLogger creates the logger for a command. Logs go to --log-file when
// set, otherwise to fallback. The returned closer releases the file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
