package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/johannesE/2048/internal/config"
	"github.com/johannesE/2048/internal/storage"
	"github.com/johannesE/2048/internal/tui"
)

var flagAPIKey string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Slide tiles
  ?            - Ask the AI advisor for a move
  R            - Restart (after the game ends)
  Q/Ctrl+C     - Quit

The advisor needs an API key: pass --api-key, set OPENAI_API_KEY, or
store one with '2048 set-key'.

Examples:
  2048 play
  2048 play --seed 42
  2048 play --config ./my-2048.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagAPIKey, "api-key", "", "Advisor API key (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagAPIKey != "" {
		cfg.Advisor.APIKey = flagAPIKey
	}

	// Get terminal size early; the model also tracks resizes.
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cfg, store, flagSeed, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
