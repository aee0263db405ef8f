package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ntris/internal/core"
	"github.com/vovakirdan/ntris/internal/games/tetris"
	"github.com/vovakirdan/ntris/internal/platform/tui"
	"github.com/vovakirdan/ntris/internal/registry"
	"github.com/vovakirdan/ntris/internal/storage"
)

// storagePath keeps scores in memory: they last for the session, matching
// the in-game session high score.
const storagePath = ":memory:"

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ntris",
	})

	cfg := core.DefaultConfig()
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}

	tetris.SetStartLevel(flagLevel)

	game, err := registry.Create("tetris")
	if err != nil {
		logger.Error("could not create game", "error", err)
		os.Exit(1)
	}

	store, err := storage.Open(storagePath)
	if err != nil {
		logger.Warn("could not open score store; scores will not be recorded", "error", err)
		store = nil
	}

	loopErr := playLoop(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if loopErr != nil {
		logger.Error("could not run game", "error", loopErr)
		os.Exit(1)
	}
}

// playLoop alternates the game and the session scoreboard until the
// player declines another run.
func playLoop(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	for {
		if err := tui.Run(game, store, cfg); err != nil {
			return fmt.Errorf("game: %w", err)
		}

		// The terminal may have been resized during play
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			cfg.ScreenW, cfg.ScreenH = w, h
		}

		again, err := tui.RunScoreboard(store, game.ID(), game.Title(), cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			return fmt.Errorf("scoreboard: %w", err)
		}
		if !again {
			return nil
		}
	}
}
