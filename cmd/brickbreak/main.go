// brickbreak is a single-screen brick breaker for the terminal.
//
// Usage:
//
//	brickbreak                  - Start the menu
//	brickbreak play             - Play a round directly
//	brickbreak menu             - Start the menu
//	brickbreak scores           - Show the leaderboard
//	brickbreak difficulties     - List difficulty presets
//	brickbreak serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for effects
//	--db <path>         - Set database path (default: ~/.brickbreak/leaderboard.db)
//	--config <path>     - Use a custom game config YAML
//	--log-level <level> - debug, info, warn or error
//	--mute              - Start with sound off
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagMute     bool
	flagVolume   float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreak",
	Short: "Brickbreak - break every brick before the ball gets past you",
	Long: `Brickbreak is a single-screen brick breaker for your terminal.

Steer the paddle with the arrow keys or the mouse, keep the ball in play
and clear all 35 bricks to win.

Available commands:
  play          - Play a round directly
  menu          - Interactive menu (default)
  scores        - View the leaderboard
  difficulties  - List difficulty presets
  serve         - Start SSH server for remote play

Examples:
  brickbreak
  brickbreak play --difficulty hard
  brickbreak scores --limit 5
  brickbreak serve --ssh :2222`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for effects (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickbreak/leaderboard.db", "Path to leaderboard database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume from 0 to 1")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(difficultiesCmd)
	rootCmd.AddCommand(serveCmd)
}
