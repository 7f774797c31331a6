package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/johannesE/2048/internal/storage"
	"github.com/johannesE/2048/internal/tui"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the top 10 recorded games, plus aggregate stats.

Pass --tui for an interactive, scrollable table.

Examples:
  2048 scores
  2048 scores --tui`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	results, err := store.TopResults(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - 2048")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play '2048 play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-6s  %-6s  %s\n", "Rank", "Player", "Score", "Tile", "Moves", "Result", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-6s  %-6s  %s\n", "----", "------", "-----", "----", "-----", "------", "----")

	for i, r := range results {
		player := r.Player
		if player == "" {
			player = "local"
		}
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-8d  %-6d  %-6d  %-6s  %s\n", i+1, player, r.Score, r.MaxTile, r.Moves, r.Outcome, dateStr)
	}

	stats, err := store.GetStats()
	if err != nil {
		return
	}

	fmt.Println()
	fmt.Printf("Games: %d  Wins: %d  Best: %d  Best tile: %d  Avg score: %.0f\n",
		stats.Games, stats.Wins, stats.HighScore, stats.BestTile, stats.AvgScore)
}
