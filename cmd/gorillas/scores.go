package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-gorillas/internal/platform/tui"
	"github.com/vovakirdan/tui-gorillas/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the match history",
	Long: `Display recent matches and win totals.

Examples:
  gorillas scores
  gorillas scores --limit 25
  gorillas scores --tui
  gorillas scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of matches to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the history interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the whole history")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening match database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearMatches(); err != nil {
			return err
		}
		fmt.Println("Match history cleared.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	matches, err := store.RecentMatches(flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("Match History - Skyline Gorillas")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Run 'gorillas play' and finish a match to record one!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %s\n", "#", "Winner", "Score", "Rounds", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %s\n", "-", "------", "-----", "------", "----")

	for i, m := range matches {
		fmt.Printf("  %-4d  %-8s  %-5s  %-6d  %s\n",
			i+1,
			fmt.Sprintf("P%d", m.Winner),
			fmt.Sprintf("%d-%d", m.Score1, m.Score2),
			m.Rounds,
			m.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	if st, err := store.GetStats(); err == nil {
		fmt.Println()
		fmt.Printf("Totals: P1 %d  P2 %d  over %d matches (avg %.1f rounds)\n",
			st.Player1Wins, st.Player2Wins, st.Matches, st.AvgRounds())
	}
	return nil
}
