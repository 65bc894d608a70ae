// brickfall is a terminal brick-breaking game.
//
// Usage:
//
//	brickfall play            - Play the game
//	brickfall scores          - Show high scores
//	brickfall list            - List available games
//
// Global flags:
//
//	--db <path>       - Set database path (default: from config)
//	--config <path>   - Path to custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vkazmin/brickfall/internal/games/breakout"
)

var (
	// Global flags
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
	Use:   "brickfall",
	Short: "Brickfall - A brick-breaking game in your terminal",
	Long: `Brickfall is a terminal-based brick-breaking game. Keep the ball
in play with the paddle, clear the wall of bricks, and chase the
high score.

Available commands:
  play     - Play the game
  scores   - View high scores
  list     - Show all available games

Examples:
  brickfall play
  brickfall play --fps 30
  brickfall scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
}
