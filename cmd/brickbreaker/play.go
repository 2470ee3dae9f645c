package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
	"github.com/vovakirdan/brickbreaker/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Brick Breaker.

Controls:
  Left/Right, a/d  - Move paddle (hold to keep moving)
  Space/Enter/click - Start
  R                - Play again (after the game ends)
  B/Esc            - Leave
  Q/Ctrl+C         - Quit

Examples:
  brickbreaker play
  brickbreaker play --fps 30
  brickbreaker play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("brickbreaker", true)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(breakout.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStoreOrWarn(logger)
	if store != nil {
		defer store.Close()
	}
	cfg := terminalConfig()
	logger.Info("starting game", "game", game.ID(), "fps", cfg.TickRate, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	if err := tui.RunGame(game, store, logger, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
