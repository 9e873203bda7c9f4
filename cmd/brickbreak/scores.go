package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreak/internal/leaderboard"
	"github.com/vovakirdan/brickbreak/internal/platform/tui"
)

var (
	flagLimit       int
	flagInteractive bool
	flagReset       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best recorded scores.

Examples:
  brickbreak scores
  brickbreak scores --limit 20
  brickbreak scores --interactive
  brickbreak scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show (0 = all)")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the leaderboard in a scrollable table")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete every recorded score")
}

func runScores(_ *cobra.Command, _ []string) {
	a, err := openApp(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	if flagReset {
		if a.store == nil {
			fmt.Fprintln(os.Stderr, "Error: no leaderboard database to reset")
			return
		}
		if err := a.store.Delete(leaderboard.Key); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Println("Leaderboard cleared.")
		return
	}

	if flagInteractive {
		if err := tui.RunScoreboard(a.env.Board, a.env.Runtime.ScreenW, a.env.Runtime.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	entries := a.env.Board.Top(flagLimit)

	fmt.Println("High Scores")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'brickbreak play' to set the first high score!")
		return
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, e := range entries {
		maxNameLen = max(maxNameLen, len([]rune(e.Name)))
	}

	fmt.Printf("  %-4s  %-*s  %s\n", "Rank", maxNameLen, "Name", "Score")
	fmt.Printf("  %-4s  %-*s  %s\n", "----", maxNameLen, "----", "-----")

	for i, e := range entries {
		fmt.Printf("  %-4d  %-*s  %d\n", i+1, maxNameLen, e.Name, e.Score)
	}

	fmt.Println()
	fmt.Printf("Best: %d (max %d)\n", entries[0].Score, a.env.Config.MaxScore())
	a.printUpdated()
}

// printUpdated shows when the leaderboard was last written.
func (a *app) printUpdated() {
	if a.store == nil {
		return
	}
	records, err := a.store.Records()
	if err != nil {
		a.env.Logger.Warn("cannot list records", "err", err)
		return
	}
	for _, r := range records {
		if r.Key == leaderboard.Key && !r.UpdatedAt.IsZero() {
			fmt.Printf("Last updated: %s\n", r.UpdatedAt.Format("2006-01-02 15:04"))
		}
	}
}
