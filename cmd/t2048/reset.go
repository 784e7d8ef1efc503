package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/bestscore"
)

var flagResetHistory bool

var resetBestCmd = &cobra.Command{
	Use:   "reset-best",
	Short: "Reset the stored best score",
	Long: `Set the stored best score back to 0.

With --history the finished-game history is deleted as well.

Examples:
  t2048 reset-best
  t2048 reset-best --history`,
	Args: cobra.NoArgs,
	RunE: runResetBest,
}

func init() {
	resetBestCmd.Flags().BoolVar(&flagResetHistory, "history", false, "Also delete the finished-game history")
}

func runResetBest(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	tracker := bestscore.New(store, appLogger)
	old := tracker.Load()
	if err := tracker.Reset(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Best score reset (was %d).\n", old)

	if flagResetHistory {
		if err := store.ClearGames(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Game history deleted.")
	}
	return nil
}
