// brickbreaker is a paddle-and-ball brick breaker for the terminal, with a
// small notes pad kept next to the scores.
//
// Usage:
//
//	brickbreaker play              - Play a game
//	brickbreaker menu              - Launcher: play, notes, high scores
//	brickbreaker serve             - Start SSH server for remote play
//	brickbreaker notes add <text>  - Save a note
//	brickbreaker notes list        - Show saved notes, newest first
//	brickbreaker notes clear       - Delete every note
//	brickbreaker scores            - Show high scores
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.brickbreaker/brickbreaker.db)
//	--config <path>       - Custom game config YAML
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick Breaker - clear the wall in your terminal",
	Long: `Brick Breaker is a paddle-and-ball game for the terminal.

Move the paddle with the arrow keys (or a/d), start with Space, Enter or a
click, and clear all bricks without letting the ball pass the paddle.

Available commands:
  play     - Play a game directly
  menu     - Launcher with notes and high scores
  serve    - Start SSH server for remote play
  notes    - Add or list game notes
  scores   - View high scores

Examples:
  brickbreaker play
  brickbreaker menu --fps 30
  brickbreaker serve --ssh :2222
  brickbreaker notes add "aim for the left column"
  brickbreaker scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if err := checkConfig(flagConfig); err != nil {
			return err
		}
		breakout.SetConfigPath(flagConfig)
		return nil
	},
}

// checkConfig fails when an explicit --config cannot be loaded. Without a
// path the usual search order applies and missing files are fine.
func checkConfig(path string) error {
	if path == "" {
		return nil
	}
	if _, err := config.LoadBreakout(path); err != nil {
		return fmt.Errorf("--config %s: %w", path, err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickbreaker/brickbreaker.db", "Path to the scores and notes database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file (full-screen commands log nowhere otherwise)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(scoresCmd)
}
