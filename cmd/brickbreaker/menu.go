package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the launcher",
	Long: `Start the interactive launcher: Play, Notes, High Scores, Quit.

Leaving a game, the notes or the scoreboard returns to the launcher.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Q            - Quit

Examples:
  brickbreaker menu
  brickbreaker menu --fps 30
  brickbreaker menu --db ./brickbreaker.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("brickbreaker", true)
	if err != nil {
		return err
	}
	defer closeLog()

	notesCfg := loadNotesConfig(logger)
	store := openStoreOrWarn(logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.SessionOptions{
		GameID:     breakout.GameID,
		Store:      store,
		NotesKey:   notesCfg.StorageKey,
		NotesLimit: notesCfg.ListLimit,
		Logger:     logger,
	}
	return tui.RunSession(opts, terminalConfig())
}

// loadNotesConfig loads notes.yaml, falling back to defaults with a warning.
func loadNotesConfig(logger *log.Logger) config.NotesConfig {
	cfg, err := config.LoadNotes("")
	if err != nil {
		logger.Warn("using default notes config", "error", err)
		return config.DefaultNotesConfig()
	}
	return cfg
}
