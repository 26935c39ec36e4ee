package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var flagShowDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after applying
--config, --difficulty and --fps, as YAML. Exits with an error if it is invalid.

Config search order:
  1. --config <path>
  2. ~/.tetris/configs/tetris.yaml
  3. ./configs/tetris.yaml
  4. built-in defaults

Examples:
  tetris config
  tetris config --difficulty hard
  tetris config --defaults > ~/.tetris/configs/tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowDefaults, "defaults", false, "Print the commented built-in defaults")
}

func runConfig(cmd *cobra.Command, _ []string) {
	if flagShowDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	// Parse shapes so bad rows are reported here, not at game start.
	if _, err := tetris.BuildCatalog(cfg.Pieces); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)

	cols, rows := cfg.Dimensions()
	fmt.Fprintf(os.Stderr, "# board %dx%d cells, drop every %d ticks\n", cols, rows, cfg.FallTicks(cfg.Timing.TickRate))
}
