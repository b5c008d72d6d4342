package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cavedash/internal/audio"
	"github.com/vovakirdan/cavedash/internal/core"
	"github.com/vovakirdan/cavedash/internal/games/cave"
	"github.com/vovakirdan/cavedash/internal/platform/tui"
	"github.com/vovakirdan/cavedash/internal/registry"
	"github.com/vovakirdan/cavedash/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagCaveFile   string
	flagNoSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  WASD/Arrows - Move and dig
  P           - Pause
  R           - Restart (after game over)
  M           - Mute
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Bigger time budget, fewer boulders
  normal - Config defaults
  hard   - Tight timer, dense boulders

Examples:
  cavedash play cave
  cavedash play cave_sprint
  cavedash play cave --difficulty hard
  cavedash play cave --config ./my-cave.yaml
  cavedash play cave --cave ./level1.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom cave config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagCaveFile, "cave", "", "Path to a text cave layout (disables generation)")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable audio")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'cavedash list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	cave.SetConfigPath(flagConfig)
	cave.SetDifficultyPreset(flagDifficulty)

	if flagCaveFile != "" {
		rows, layoutErr := loadCaveFile(flagCaveFile)
		if layoutErr != nil {
			fmt.Fprintf(os.Stderr, "Error loading cave layout: %v\n", layoutErr)
			os.Exit(1)
		}
		cave.SetLayout(rows)
	}

	// Wire up the speaker unless disabled; play degrades silently if the
	// audio device is unavailable
	if !flagNoSound {
		engine := audio.NewEngine()
		if audioErr := engine.Init(); audioErr == nil {
			cfg.Audio = engine
			defer engine.Close()
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running mode: %v\n", runErr)
		os.Exit(1)
	}
}

// loadCaveFile reads and validates a text cave layout file.
func loadCaveFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	rows := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if _, _, _, parseErr := cave.ParseLayout(rows); parseErr != nil {
		return nil, parseErr
	}
	return rows, nil
}
