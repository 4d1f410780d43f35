// internal/tui/app.go
//
// The terminal front-end for the factory floor. It follows The Elm
// Architecture the same way the rest of the charm stack does:
//
// 1. Model: the App struct below
// 2. Update: advances the round orchestrator one tick per tickMsg
// 3. View: renders the current phase to a string
//
// The TUI owns the clock: every tickMsg computes the dt since the last
// tick, snapshots the key tracker into an input frame, and hands both to
// the orchestrator. The core never sees key codes or wall-clock time.

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jcljest/holiday-panic-factory/internal/audio"
	"github.com/jcljest/holiday-panic-factory/internal/config"
	"github.com/jcljest/holiday-panic-factory/internal/game"
)

// tickMsg carries the wall-clock time of one simulation tick.
type tickMsg time.Time

// maxTickDelta caps dt so a suspended terminal does not fast-forward a
// whole round when it wakes.
const maxTickDelta = 0.25

// menuItem implements list.Item for the main menu entries.
type menuItem struct {
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

const (
	menuStart = "Start Shift"
	menuMute  = "Toggle Mute"
	menuQuit  = "Quit"
)

// App is the main application model.
type App struct {
	cfg   *config.Config
	round *game.Orchestrator
	sink  *audio.Journal
	keys  *keyTracker

	mainMenu   list.Model
	qualityBar progress.Model
	timerBar   progress.Model

	tickEvery     time.Duration
	lastTick      time.Time
	confirmQueued bool

	width  int
	height int
}

// NewApp wires the TUI around an orchestrator. The audio sink may be nil
// when cues are journaled elsewhere or not at all.
func NewApp(cfg *config.Config, round *game.Orchestrator, sink *audio.Journal) *App {
	items := []list.Item{
		menuItem{title: menuStart, desc: "Clock in and take the first order"},
		menuItem{title: menuMute, desc: "Silence every cue"},
		menuItem{title: menuQuit, desc: "Walk off the factory floor"},
	}
	mainMenu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "🎁 THE FACTORY FLOOR"
	mainMenu.SetShowStatusBar(false)
	mainMenu.SetFilteringEnabled(false)

	tickRate := config.DefaultTickRate
	if cfg != nil && cfg.Settings.TickRate > 0 {
		tickRate = cfg.Settings.TickRate
	}

	return &App{
		cfg:   cfg,
		round: round,
		sink:  sink,
		keys:  newKeyTracker(defaultHoldWindow),

		mainMenu: mainMenu,
		qualityBar: progress.New(
			progress.WithGradient("#CC3333", "#33CC33"),
			progress.WithoutPercentage(),
		),
		timerBar: progress.New(
			progress.WithGradient("#CC3333", "#D9A521"),
			progress.WithoutPercentage(),
		),

		tickEvery: time.Second / time.Duration(tickRate),
	}
}

// Init starts the simulation clock.
func (a *App) Init() tea.Cmd {
	return a.tickCmd()
}

func (a *App) tickCmd() tea.Cmd {
	return tea.Tick(a.tickEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update is called for every message: window resizes, key events, and the
// simulation tick.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.mainMenu.SetSize(max(20, msg.Width-6), max(8, msg.Height-14))
		barWidth := max(10, msg.Width/2-16)
		a.qualityBar.Width = barWidth
		a.timerBar.Width = max(10, msg.Width-24)
		return a, nil

	case tickMsg:
		return a.handleTick(time.Time(msg))

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := a.tickEvery.Seconds()
	if !a.lastTick.IsZero() {
		dt = now.Sub(a.lastTick).Seconds()
		if dt < 0 {
			dt = 0
		}
		if dt > maxTickDelta {
			dt = maxTickDelta
		}
	}
	a.lastTick = now

	frame := a.keys.Snapshot(now)
	if a.confirmQueued {
		frame.Confirm = true
		a.confirmQueued = false
	}
	a.round.Advance(dt, frame)
	return a, a.tickCmd()
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if a.round.Phase() == game.PhaseMenu {
		switch key {
		case "q", "esc":
			return a, tea.Quit
		case "m":
			a.toggleMute()
			return a, nil
		case "enter":
			return a.handleMenuSelect()
		}
		var cmd tea.Cmd
		a.mainMenu, cmd = a.mainMenu.Update(msg)
		return a, cmd
	}

	if key == "m" {
		a.toggleMute()
		return a, nil
	}

	a.keys.Press(key, time.Now())
	return a, nil
}

func (a *App) handleMenuSelect() (tea.Model, tea.Cmd) {
	item, ok := a.mainMenu.SelectedItem().(menuItem)
	if !ok {
		return a, nil
	}
	switch item.title {
	case menuStart:
		// The confirm rides the next tick's frame so phase advancement
		// stays inside the orchestrator.
		a.confirmQueued = true
	case menuMute:
		a.toggleMute()
	case menuQuit:
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) toggleMute() {
	if a.sink == nil {
		return
	}
	a.sink.SetMuted(!a.sink.Muted())
	if a.cfg != nil {
		// Persist best-effort; a read-only home dir should not stop play.
		_ = a.cfg.SetMuted(a.sink.Muted())
	}
}

// View renders the current phase.
func (a *App) View() string {
	switch a.round.Phase() {
	case game.PhaseMenu:
		return a.renderMenu()
	case game.PhaseBriefing:
		return a.renderBriefing()
	case game.PhasePlaying:
		return a.renderPlaying()
	case game.PhaseReveal:
		return a.renderReveal()
	default:
		return ""
	}
}
