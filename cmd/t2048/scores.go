package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/bestscore"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best games and statistics",
	Long: `Display the best finished games and overall statistics.

Examples:
  t2048 scores
  t2048 scores --limit 25
  t2048 scores --tui`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to list")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	return printScores(cmd.OutOrStdout(), store, flagScoresLimit)
}

// printScores writes the score table and statistics as plain text.
func printScores(w io.Writer, store *storage.Store, limit int) error {
	games, err := store.TopGames(limit)
	if err != nil {
		return err
	}

	best := bestscore.New(store, appLogger).Load()

	fmt.Fprintln(w, "High Scores - 2048")
	fmt.Fprintln(w)

	if len(games) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 't2048 play' to set the first high score!")
		if best > 0 {
			fmt.Fprintf(w, "\nBest: %d\n", best)
		}
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %-3s  %s\n", "Rank", "Score", "Max", "Moves", "Won", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %-3s  %s\n", "----", "-----", "---", "-----", "---", "----")

	for i, g := range games {
		won := ""
		if g.Won {
			won = "yes"
		}
		fmt.Fprintf(w, "  %-4d  %-8d  %-6d  %-6d  %-3s  %s\n",
			i+1, g.Score, g.MaxTile, g.Moves, won, g.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats()
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", best)
	fmt.Fprintf(w, "Games: %d  Wins: %d  Best tile: %d  Average: %.0f  Moves: %d\n",
		stats.GamesCount, stats.Wins, stats.BestTile, stats.AvgScore, stats.TotalMoves)
	return nil
}
