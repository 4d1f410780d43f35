package tui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jcljest/holiday-panic-factory/internal/audio"
	"github.com/jcljest/holiday-panic-factory/internal/catalog"
	"github.com/jcljest/holiday-panic-factory/internal/config"
	"github.com/jcljest/holiday-panic-factory/internal/game"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg, err := config.NewConfig(t.TempDir())
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cat, err := catalog.Builtin()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	sink := audio.NewJournal(nil)
	round := game.New(cat, rand.New(rand.NewSource(1)), game.WithAudio(sink))
	return NewApp(cfg, round, sink)
}

// tick feeds n synthetic ticks, each one tick interval apart.
func tick(t *testing.T, a *App, n int) *App {
	t.Helper()
	now := a.lastTick
	if now.IsZero() {
		now = time.Now()
	}
	for i := 0; i < n; i++ {
		now = now.Add(a.tickEvery)
		model, _ := a.Update(tickMsg(now))
		var ok bool
		a, ok = model.(*App)
		if !ok {
			t.Fatalf("update returned unexpected model type")
		}
	}
	return a
}

func TestMenuSelectionStartsRound(t *testing.T) {
	a := newTestApp(t)
	if a.round.Phase() != game.PhaseMenu {
		t.Fatalf("expected menu phase at start")
	}

	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = model.(*App)
	if !a.confirmQueued {
		t.Fatalf("selecting start must queue a confirm for the next tick")
	}

	a = tick(t, a, 1)
	if a.round.Phase() != game.PhaseBriefing {
		t.Fatalf("expected briefing after the queued confirm, got %s", a.round.Phase())
	}
	if a.confirmQueued {
		t.Fatalf("queued confirm must be consumed by one tick")
	}
}

func TestTicksCarryRoundThroughBriefing(t *testing.T) {
	a := newTestApp(t)
	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = model.(*App)
	a = tick(t, a, 1)

	// Briefing lasts 4 simulated seconds.
	ticksPerSecond := int(time.Second / a.tickEvery)
	a = tick(t, a, 5*ticksPerSecond)
	if a.round.Phase() != game.PhasePlaying {
		t.Fatalf("expected playing after briefing countdown, got %s", a.round.Phase())
	}
}

func TestKeyEventsReachTheRound(t *testing.T) {
	a := newTestApp(t)
	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = model.(*App)
	a = tick(t, a, 1)
	ticksPerSecond := int(time.Second / a.tickEvery)
	a = tick(t, a, 5*ticksPerSecond)

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeySpace})
	a = model.(*App)
	a = tick(t, a, 1)
	if !a.round.Wrapper().HasPressed() {
		t.Fatalf("a space press must latch the wrapper")
	}
}

func TestViewRendersEveryPhase(t *testing.T) {
	a := newTestApp(t)
	if view := a.View(); !strings.Contains(view, "HOLIDAY PANIC FACTORY") {
		t.Fatalf("menu view missing title:\n%s", view)
	}

	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = model.(*App)
	a = tick(t, a, 1)
	if view := a.View(); !strings.Contains(view, "ROUND 1") {
		t.Fatalf("briefing view missing round header:\n%s", view)
	}

	ticksPerSecond := int(time.Second / a.tickEvery)
	a = tick(t, a, 5*ticksPerSecond)
	view := a.View()
	for _, station := range []string{"BUILDER", "WRAPPER", "DECORATOR", "FOREMAN"} {
		if !strings.Contains(view, station) {
			t.Fatalf("playing view missing %s quadrant:\n%s", station, view)
		}
	}

	// Run the clock out with nobody playing; the reveal shows the verdict.
	a = tick(t, a, 25*ticksPerSecond)
	if a.round.Phase() != game.PhaseReveal {
		t.Fatalf("expected reveal, got %s", a.round.Phase())
	}
	if view := a.View(); !strings.Contains(view, "QUALITY CONTROL") {
		t.Fatalf("reveal view missing header:\n%s", view)
	}
}

func TestMuteToggleFlipsJournalAndSettings(t *testing.T) {
	a := newTestApp(t)
	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	a = model.(*App)
	if !a.sink.Muted() {
		t.Fatalf("expected sink muted after toggle")
	}
	if !a.cfg.Settings.Muted {
		t.Fatalf("expected mute persisted into settings")
	}
}
