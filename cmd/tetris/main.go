// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Play (same as "tetris play")
//	tetris play              - Play in this terminal
//	tetris serve             - Start SSH server for remote play
//	tetris config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal or hard
//	--fps <rate>          - Override the config tick_rate (drop speed follows it)
//	--seed <value>        - Set RNG seed for reproducible piece sequences
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris is a terminal falling-block puzzle. Steer, rotate and flip the
falling piece; every completed row is cleared and scores one point.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  tetris
  tetris play --difficulty hard
  tetris play --seed 42
  tetris serve --ssh :2222
  tetris config --config ./my-tetris.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second); overrides the config tick_rate when set")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration from --config, --difficulty and
// --fps. The fall threshold is derived from the resulting tick rate.
func loadConfig(cmd *cobra.Command) (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("fps") {
		cfg.Timing.TickRate = flagFPS
	}
	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyTetrisPreset(&cfg, preset)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setupGame loads the configuration and installs it as the game rules.
// Returns the tick rate to run at.
func setupGame(cmd *cobra.Command) (int, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return 0, err
	}
	if err := tetris.Configure(cfg); err != nil {
		return 0, err
	}
	return cfg.Timing.TickRate, nil
}
