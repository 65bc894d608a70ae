package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vkazmin/brickfall/internal/config"
	"github.com/vkazmin/brickfall/internal/core"
	"github.com/vkazmin/brickfall/internal/platform/tui"
	"github.com/vkazmin/brickfall/internal/registry"
	"github.com/vkazmin/brickfall/internal/storage"
)

var (
	flagFPS     int
	flagNoColor bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. Defaults to breakout when no game is given.

Controls:
  A/Left     - Move paddle left
  D/Right    - Move paddle right
  Mouse      - Move paddle to cursor
  Space      - Launch the ball (click also works)
  Q/Ctrl+C   - Quit

Examples:
  brickfall play
  brickfall play --fps 30
  brickfall play --no-color`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Render frame rate (0 = use config)")
	playCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickfall",
	})

	gameID := "breakout"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'brickfall list' to see available games.")
		os.Exit(1)
	}

	appCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags override config
	fps := appCfg.Display.FPS
	if flagFPS > 0 {
		fps = flagFPS
	}
	if fps <= 0 {
		fps = 60
	}
	color := appCfg.Display.Color && !flagNoColor

	dbPath := appCfg.Storage.DBPath
	if flagDBPath != "" {
		dbPath = flagDBPath
	}

	// Get terminal size for the initial screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		FPS:      fps,
		TickRate: 60,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, color)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
