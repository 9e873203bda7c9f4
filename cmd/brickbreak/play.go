package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round at the chosen difficulty.

Controls:
  Left/Right, A/D  - Move paddle
  Mouse            - Paddle follows the pointer
  M                - Toggle sound
  R                - Restart (after the round ends)
  Esc              - Back
  Q/Ctrl+C         - Quit

Difficulty options:
  easy    - Ball speed 2, paddle width 200
  medium  - Ball speed 3, paddle width 150 (default)
  hard    - Ball speed 5, paddle width 100

Examples:
  brickbreak play
  brickbreak play --difficulty hard
  brickbreak play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	name, err := config.ParseDifficultyName(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a, err := openApp(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	diff, err := a.env.Config.Difficulty(name)
	if err != nil {
		a.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.RunGame(a.env, diff)
	a.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
