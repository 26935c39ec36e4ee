package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/logging"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Left/A, Right/D  - Move
  Down/S           - Drop faster
  Up/W             - Rotate
  H / G            - Flip horizontally / vertically
  Enter            - Start / play again
  P                - Pause
  Esc              - Exit (title and game-over screens)
  Q/Ctrl+C         - Quit

Difficulty options (automatic drop speed):
  easy   - one row per second
  normal - two rows per second
  hard   - four rows per second

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --config ./my-tetris.yaml --log-file /tmp/tetris.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	// The alternate screen owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := logging.Open(flagLogFile, "tetris", flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	tetris.SetLogger(logger)

	tickRate, err := setupGame(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}

	game, err := registry.Create(tetris.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting", "size", fmt.Sprintf("%dx%d", width, height), "fps", tickRate, "seed", flagSeed)
	if err := tui.Run(game, cfg); err != nil {
		logger.Error("run failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
