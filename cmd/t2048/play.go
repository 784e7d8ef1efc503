package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048.

Controls:
  Arrows/WASD/HJKL - Slide the tiles
  N/R              - New game
  ?                - Toggle help
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --config ./easy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed

	logger, closeLog, err := gameLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	tracker, store, closeStore := openTracker(logger)
	defer closeStore()

	opts := tui.ModelOptions{
		Settings: appConfig.Settings(cfg.Seed),
		Tracker:  tracker,
		Logger:   logger,
		Width:    cfg.ScreenW,
		Height:   cfg.ScreenH,
	}
	if store != nil {
		opts.Recorder = store
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
