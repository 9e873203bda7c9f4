package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Pick a difficulty, play, and come back to the menu when the round ends.

Controls:
  Up/Down/j/k      - Navigate menu
  Left/Right       - Change difficulty
  Enter/Space      - Select
  Tab              - High scores
  Q                - Quit

Examples:
  brickbreak menu
  brickbreak menu --fps 30
  brickbreak menu --db ./leaderboard.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	a, err := openApp(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.RunSession(a.env, config.DefaultDifficulty)
	a.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
