package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLeft       string
	flagRight      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a match. The left paddle is Player 1, the right paddle Player 2.

Controls:
  W/S        - Move left paddle
  Up/Down    - Move right paddle (two players) or left paddle (solo)
  P/Space    - Pause
  R          - Restart (after game over)
  B/Esc      - Leave (while paused or after game over)
  Ctrl+S     - Save a screenshot to ~/.pong/screenshots
  Q/Ctrl+C   - Quit

Difficulty options (tune the CPU):
  easy   - Slow serve, CPU starts weak and sharpens as points are played
  normal - CPU starts at 30% difficulty and sharpens
  hard   - Fast serve, CPU starts at 70% difficulty
  fixed  - No progression, CPU keeps the configured skill

Examples:
  pong play
  pong play --right human
  pong play --difficulty hard
  pong play --left cpu --right cpu --seed 7
  pong play --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom match config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLeft, "left", pong.DefaultLeftDriver, "Driver for the left paddle")
	playCmd.Flags().StringVar(&flagRight, "right", pong.DefaultRightDriver, "Driver for the right paddle")
}

// loadMatchConfig loads the config file and applies --difficulty.
func loadMatchConfig() (config.PongConfig, error) {
	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPongPreset(&cfg, preset)
	}
	return cfg, cfg.Validate()
}

func runPlay(cmd *cobra.Command, args []string) {
	for _, id := range []string{flagLeft, flagRight} {
		if !registry.Exists(id) {
			fmt.Fprintf(os.Stderr, "Error: unknown driver %q\n", id)
			fmt.Fprintln(os.Stderr, "Run 'pong drivers' to see available drivers.")
			os.Exit(1)
		}
	}

	matchCfg, err := loadMatchConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := newFileLogger("pong")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := pong.New(matchCfg,
		pong.WithDrivers(flagLeft, flagRight),
		pong.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating match: %v\n", err)
		os.Exit(1)
	}

	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		logger.Warn("playing without history", "err", err)
		// Continue without storage - the match still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logFile.Close()
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", runErr)
		os.Exit(1)
	}
}
