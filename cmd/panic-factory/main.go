// cmd/panic-factory/main.go
//
// Entry point for the factory floor. Wires up the settings, session log,
// order catalog, audio journal, and random source, then hands them to the
// TUI, which owns the terminal and the clock.

package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jcljest/holiday-panic-factory/internal/audio"
	"github.com/jcljest/holiday-panic-factory/internal/catalog"
	"github.com/jcljest/holiday-panic-factory/internal/config"
	"github.com/jcljest/holiday-panic-factory/internal/game"
	"github.com/jcljest/holiday-panic-factory/internal/logging"
	"github.com/jcljest/holiday-panic-factory/internal/tui"
)

func main() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.NewConfig(homeDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(homeDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session log: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	cat, err := catalog.Builtin()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading order catalog: %v\n", err)
		os.Exit(1)
	}
	// Extra packs are best-effort: a broken pack is logged and skipped so
	// the built-in orders always remain playable.
	for _, path := range cfg.OrderPacks() {
		pack, err := catalog.LoadPack(path)
		if err != nil {
			logger.Printf("skipping order pack: %v", err)
			continue
		}
		cat.Merge(pack)
		logger.Printf("merged order pack %s (%d orders)", path, pack.Len())
	}

	seed := cfg.Settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Printf("session start · seed %d · tick rate %d/s", seed, cfg.Settings.TickRate)

	sink := audio.NewJournal(logger)
	sink.SetMuted(cfg.Settings.Muted)

	round := game.New(cat, rng,
		game.WithAudio(sink),
		game.WithLogger(logger),
	)

	p := tea.NewProgram(
		tui.NewApp(cfg, round, sink),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
