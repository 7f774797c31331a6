package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/johannesE/2048/internal/config"
)

var setKeyCmd = &cobra.Command{
	Use:   "set-key <api-key>",
	Short: "Store the AI advisor API key",
	Long: `Store the API key used by the in-game move advisor.

The key is written to ~/.2048/config.yaml with owner-only permissions.
The OPENAI_API_KEY environment variable, when set, takes precedence
over the stored key.

Examples:
  2048 set-key sk-...`,
	Args: cobra.ExactArgs(1),
	Run:  runSetKey,
}

func runSetKey(_ *cobra.Command, args []string) {
	path, err := config.SaveAPIKey(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving API key: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("API key saved to %s\n", path)
}
