package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sarangola/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the game configuration as YAML, after resolving the search order:

  1. --config <path>
  2. ~/.sarangola/config.yaml
  3. ./configs/sarangola.yaml
  4. built-in defaults

The first line names the source. Save the output to one of the paths
above to customize it.

Examples:
  sarangola config
  sarangola config > ~/.sarangola/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", src)
	_, err = out.Write(data)
	return err
}
