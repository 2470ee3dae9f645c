package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
	"github.com/vovakirdan/brickbreaker/internal/registry"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 finished runs.

Examples:
  brickbreaker scores
  brickbreaker scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	game, err := registry.Create(breakout.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(game.ID()); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(game.ID(), 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'brickbreaker play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %s\n", "Rank", "Score", "Result", "Ticks", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "------", "-----", "----")

	for i, e := range scores {
		fmt.Printf("  %-4d  %-6d  %-6s  %-8d  %s\n", i+1, e.Score, e.Outcome, e.Ticks, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.GameStats(game.ID())
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Won: %d  Best: %d  Average: %.1f\n", stats.GamesCount, stats.Wins, stats.HighScore, stats.AvgScore)
	}
	return nil
}
