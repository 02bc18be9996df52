package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/riipai/internal/core"
	"github.com/vovakirdan/riipai/internal/history"
	"github.com/vovakirdan/riipai/internal/platform/tui"
	"github.com/vovakirdan/riipai/internal/storage"
)

var (
	flagHandSize int
	flagInput    string
	flagSeed     int64
	flagNoMouse  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Sort a freshly dealt hand",
	Long: `Deal a hand and sort it. Group each suit together in ascending rank;
suits may come in any order.

Controls:
  Left/Right, h/l  - Move the cursor
  Space            - Select a tile (tap) or pick it up (drag)
  Enter            - Confirm the destination
  Esc              - Cancel the current selection or drag
  Mouse            - Click two tiles (tap) or drag a tile (drag)
  ?                - Hint
  N                - New hand
  S                - History (after a hand)
  Q                - Abandon the hand / exit
  Ctrl+C           - Quit

Input modes:
  auto  - drag when the mouse is enabled, tap otherwise
  drag  - pick a tile up and drop it at its new place
  tap   - select a tile, then its destination

Examples:
  riipai play
  riipai play --input tap
  riipai play --hand-size 8 --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHandSize, "hand-size", 0, "Tiles per hand (default from config, 13)")
	playCmd.Flags().StringVar(&flagInput, "input", "", "Input mode: auto, drag, tap")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().BoolVar(&flagNoMouse, "no-mouse", false, "Disable mouse input")
}

func runPlay(cmd *cobra.Command, _ []string) {
	flags := cmd.Flags()
	if flags.Changed("hand-size") {
		cfg.Game.HandSize = flagHandSize
	}
	if flags.Changed("input") {
		cfg.Input.Modality = flagInput
	}
	if flags.Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	if flagNoMouse {
		cfg.Input.Mouse = false
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := fileLogger()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := runtimeConfig(width, height)

	// Open result storage
	var kv history.KV
	db, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("results database unavailable, history will not persist", "error", err)
		// Continue without persistence - the puzzle still works
		kv = history.NewMemoryKV()
	} else {
		kv = db
	}

	store := history.New(kv, history.Options{
		Key:        cfg.History.Key,
		MaxResults: cfg.History.MaxResults,
		Logger:     logger,
	})

	runErr := tui.Run(tui.Options{
		Config: runtime,
		Store:  store,
		Logger: logger,
	})

	// Close store before potential exit
	if db != nil {
		db.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the per-session settings from the loaded config.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: cfg.TickInterval(),
		HandSize:     cfg.Game.HandSize,
		Seed:         cfg.Game.Seed,
		Input:        cfg.Input.Modality,
		Mouse:        cfg.Input.Mouse,
	}
}

// openHistory opens the results database and the history stored in it.
func openHistory() (*history.Store, *storage.Store, error) {
	db, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return nil, nil, err
	}
	store := history.New(db, history.Options{
		Key:        cfg.History.Key,
		MaxResults: cfg.History.MaxResults,
		Logger:     newLogger(os.Stderr),
	})
	return store, db, nil
}
