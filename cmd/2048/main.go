// 2048 is a terminal 2048 game with an optional AI move advisor.
//
// Usage:
//
//	2048 play               - Play in the current terminal
//	2048 scores             - Show the high-score table
//	2048 serve              - Start SSH server for remote play
//	2048 set-key <key>      - Store the advisor API key
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.2048/scores.db)
//	--config <path> - Set config file path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `2048 is a terminal version of the sliding tile puzzle: merge equal
tiles until you build the goal tile, with an optional AI advisor that
suggests your next move.

Available commands:
  play     - Play in the current terminal
  scores   - View high scores and statistics
  serve    - Start SSH server for remote play
  set-key  - Store the advisor API key

Examples:
  2048 play
  2048 play --seed 42
  2048 scores
  2048 serve --ssh :2222
  2048 set-key sk-...`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.2048/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(setKeyCmd)
}
