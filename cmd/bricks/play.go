package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bricks/internal/bricks"
	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/logging"
	"github.com/vovakirdan/bricks/internal/platform/tui"
	"github.com/vovakirdan/bricks/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/A, Right/D  - Move the paddle
  Space/Enter      - Start, continue to the next level, play again
  Esc              - Reset to the start screen
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower ball, wider paddle
  normal - Default tuning
  hard   - Faster ball, narrower paddle, faster progression

Examples:
  bricks play
  bricks play --difficulty easy
  bricks play --levels ./my-pack.yaml
  bricks play --config ./my-bricks.yaml --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}
	catalog, pack, err := loadCatalog()
	if err != nil {
		fail("%v", err)
	}

	// The game owns the terminal, so logs go to a file.
	logger, closer, err := logging.New(logging.Options{Level: flagLogLevel, File: flagLogFile})
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	_, arenaW, arenaH := tui.ArenaFor(cfg.Arena, width, height)
	session := bricks.NewSession(catalog, bricks.SettingsFromConfig(cfg, arenaW, arenaH))
	logger.Info("starting", "pack", pack, "levels", catalog.Len(), "arena_w", arenaW, "arena_h", arenaH, "fps", flagFPS)

	// Open run history
	var recorder tui.RunRecorder
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		logger.Warn("history disabled", "err", err)
		// Continue without storage - game still works
		store = nil
	} else {
		recorder = store
	}

	runErr := tui.Run(session, recorder, logger, tui.Options{
		Runtime:      runtime,
		Arena:        cfg.Arena,
		ReleaseAfter: time.Duration(cfg.Input.ReleaseAfterMS) * time.Millisecond,
		Pack:         pack,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closer.Close()
		fail("running game: %v", runErr)
	}
}
