package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreak/internal/config"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List difficulty presets",
	Long:  `Shows the difficulty presets from the active game config.`,
	Run:   runDifficulties,
}

func runDifficulties(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()
	fmt.Printf("  %-8s  %-10s  %s\n", "Name", "Ball speed", "Paddle width")
	fmt.Printf("  %-8s  %-10s  %s\n", "----", "----------", "------------")

	for _, name := range config.DifficultyNames() {
		d, err := cfg.Difficulty(name)
		if err != nil {
			continue
		}
		marker := ""
		if name == config.DefaultDifficulty {
			marker = " (default)"
		}
		fmt.Printf("  %-8s  %-10g  %g%s\n", d.Name, d.BallSpeed, d.PaddleWidth, marker)
	}

	fmt.Println()
	fmt.Printf("Playfield %gx%g, %d bricks, %d points to win.\n",
		cfg.Playfield.Width, cfg.Playfield.Height,
		cfg.Bricks.Columns*cfg.Bricks.Rows, cfg.MaxScore())
	fmt.Println("Run 'brickbreak play --difficulty <name>' to play.")
}
