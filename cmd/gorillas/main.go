// gorillas is a two-player artillery duel played in the terminal.
//
// Usage:
//
//	gorillas play            - Play a hot-seat match
//	gorillas serve           - Start SSH server for remote play
//	gorillas scores          - Show the match history
//	gorillas list            - List available games
//	gorillas config          - Print or check the game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible skylines
//	--db <path>          - Set database path (default: ~/.gorillas/matches.db)
//	--config <path>      - Custom gorillas.yaml
//	--difficulty <name>  - Skyline preset: easy, normal, hard
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gorillas/internal/config"
	"github.com/vovakirdan/tui-gorillas/internal/games/gorillas"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

var (
	logger  = log.New(io.Discard)
	logSink io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logSink != nil {
		logSink.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gorillas",
	Short: "Skyline Gorillas - lob bananas across the city",
	Long: `Skyline Gorillas is a two-player artillery game for the terminal.

Players take turns setting an angle and a throw velocity, and try to hit
the other gorilla across a destructible skyline. A hit scores a point and
costs the victim a life; the first player out of lives loses.

Available commands:
  play     - Play a hot-seat match
  serve    - Start SSH server for remote play
  scores   - View the match history
  list     - Show all available games
  config   - Print or check the game config

Examples:
  gorillas play
  gorillas play --difficulty hard --seed 42
  gorillas serve --ssh :2222
  gorillas scores`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gorillas/matches.db", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom gorillas.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Skyline preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the TUI owns the terminal)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup wires flags shared by every subcommand into the game package.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("--difficulty: unknown preset %q (want easy, normal or hard)", flagDifficulty)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logSink = f
		logger = log.NewWithOptions(f, log.Options{
			Level:           level,
			ReportTimestamp: true,
			Prefix:          "gorillas",
		})
	} else if cmd.Name() == "serve" {
		// The server has no TUI of its own, so stderr is free
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Level:           level,
			ReportTimestamp: true,
			Prefix:          "gorillas-ssh",
		})
	}

	gorillas.SetLogger(logger)
	gorillas.SetConfigPath(flagConfig)
	gorillas.SetDifficultyPreset(flagDifficulty)
	return nil
}
