package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-gorillas/internal/core"
	"github.com/vovakirdan/tui-gorillas/internal/games/gorillas"
	"github.com/vovakirdan/tui-gorillas/internal/platform/tui"
	"github.com/vovakirdan/tui-gorillas/internal/registry"
	"github.com/vovakirdan/tui-gorillas/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a hot-seat match",
	Long: `Start a two-player match on this terminal. Players share the keyboard
and take turns.

Controls:
  Left/Right  - Angle -1/+1     (A/D: -5/+5)
  Down/Up     - Velocity -1/+1  (S/W: -5/+5)
  Space/Enter - Throw
  P           - Pause
  R           - Rematch (after the match ends)
  Esc/B       - Leave (while paused or after the match)
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Low skyline, big craters
  normal - Config values as written
  hard   - Tall towers, small craters

Examples:
  gorillas play
  gorillas play --difficulty easy
  gorillas play --seed 1234
  gorillas play --config ./my-gorillas.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "gorillas"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'gorillas list' to see available games", gameID)
	}

	// Bad configs are reported before the terminal is taken over
	if gameID == "gorillas" {
		if _, err := gorillas.LoadConfig(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	var saver tui.MatchSaver
	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		logger.Warn("could not open match database", "error", err)
	} else {
		defer store.Close()
		saver = store
	}

	logger.Info("starting game", "game", gameID, "seed", cfg.Seed, "size", fmt.Sprintf("%dx%d", width, height))
	if err := tui.Run(game, saver, cfg, tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
