// internal/game/round.go
//
// The round orchestrator is the game's top-level state machine. It owns the
// four mechanics, drives their per-tick updates during the Playing phase,
// counts every timer down by accumulated simulation time, and assembles the
// gift reveal when a round ends. Collaborators (input, audio, rendering)
// stay outside: input arrives as a per-tick frame, audio leaves as
// fire-and-forget cues, and rendering reads the accessors.

package game

import (
	"github.com/jcljest/holiday-panic-factory/internal/catalog"
)

// Phase is the orchestrator's top-level state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseBriefing
	PhasePlaying
	PhaseReveal
)

// String returns the phase's music/display key.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseBriefing:
		return "briefing"
	case PhasePlaying:
		return "playing"
	case PhaseReveal:
		return "reveal"
	default:
		return "unknown"
	}
}

// Phase timing constants, in seconds.
const (
	BriefingDuration = 4.0
	RevealDuration   = 5.0

	// countdownThreshold is the remaining play time at which the ticking
	// countdown loop starts.
	countdownThreshold = 5.0
)

// RoundResult is the immutable outcome snapshot built when Playing ends.
type RoundResult struct {
	OrderName string
	// Successes holds the four outcomes in fixed evaluation order:
	// Builder, Wrapper, Decorator, Foreman.
	Successes [4]bool
	Score     int

	// Gift layers resolved from the catalog variants.
	Toy  string
	Wrap string
	Bow  string

	// Commentary is the elf's verdict, keyed by score.
	Commentary string
}

func commentaryFor(score int) string {
	switch {
	case score == 4:
		return "PERFECT! This kid is gonna love it!"
	case score == 3:
		return "Not bad, but we can do better!"
	case score == 2:
		return "Yikes... this might cause some tears."
	default:
		return "You RUINED CHRISTMAS!"
	}
}

// Logger receives orchestrator progress lines. *logging.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

// Orchestrator sequences Menu, Briefing, Playing, and Reveal, and is the
// only writer of round state. It never blocks; one Advance call consumes
// one tick.
type Orchestrator struct {
	catalog *catalog.Catalog
	audio   AudioSink
	rng     Rand
	log     Logger

	phase Phase
	timer float64
	round int
	score int

	tier  catalog.Tier
	order catalog.OrderDefinition

	builder   *Builder
	wrapper   *Wrapper
	decorator *Decorator
	foreman   *Foreman
	mechanics [4]Mechanic

	result *RoundResult

	countdownOn bool
}

// Option customizes Orchestrator construction.
type Option func(*Orchestrator)

// WithAudio wires an audio collaborator. Without it, cues are discarded.
func WithAudio(sink AudioSink) Option {
	return func(o *Orchestrator) {
		if sink != nil {
			o.audio = sink
		}
	}
}

// WithLogger wires a progress logger.
func WithLogger(log Logger) Option {
	return func(o *Orchestrator) {
		if log != nil {
			o.log = log
		}
	}
}

// New builds an orchestrator in the Menu phase. The random source feeds
// order selection, Decorator sequences, and Foreman drift.
func New(cat *catalog.Catalog, rng Rand, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		catalog: cat,
		audio:   NopAudio{},
		rng:     rng,
		phase:   PhaseMenu,
	}
	o.builder = NewBuilder()
	o.wrapper = NewWrapper()
	o.decorator = NewDecorator(rng)
	o.foreman = NewForeman(rng)
	o.mechanics = [4]Mechanic{o.builder, o.wrapper, o.decorator, o.foreman}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	o.audio.PlayStateMusic(MusicMenu)
	return o
}

// Advance consumes one tick: dt seconds of simulation time plus the input
// frame collected for that tick.
func (o *Orchestrator) Advance(dt float64, frame InputFrame) {
	switch o.phase {
	case PhaseMenu:
		if frame.Confirm {
			o.audio.PlaySound(CueButtonPress)
			o.startRound()
		}

	case PhaseBriefing:
		o.timer -= dt
		if o.timer <= 0 {
			o.startPlaying()
		}

	case PhasePlaying:
		o.timer -= dt

		if !o.countdownOn && o.timer <= countdownThreshold && o.timer > 0 {
			o.audio.StartLoop(CueCountdown)
			o.countdownOn = true
		}

		for _, m := range o.mechanics {
			m.Update(dt, frame)
		}

		if o.timer <= 0 {
			o.endPlaying()
		}

	case PhaseReveal:
		o.timer -= dt
		// Confirm is ignored until the reveal has been shown for its full
		// duration.
		if o.timer <= 0 && frame.Confirm {
			o.audio.PlaySound(CueButtonPress)
			o.startRound()
		}
	}
}

// startRound picks the next order and enters Briefing.
func (o *Orchestrator) startRound() {
	o.round++
	o.tier = catalog.TierForRound(o.round)

	orders := o.catalog.Orders(o.tier)
	o.order = orders[o.rng.Intn(len(orders))]
	o.result = nil

	o.phase = PhaseBriefing
	o.timer = BriefingDuration

	o.audio.PlayStateMusic(MusicBriefing)
	if o.tier == catalog.TierNightmare {
		o.audio.PlaySound(CueSiren)
	}
	o.logf("round %d: briefing %s order %q (%.0fs limit)",
		o.round, o.tier, o.order.Name, o.order.TimeLimit)
}

// startPlaying resets and configures every mechanic, then opens the clock.
func (o *Orchestrator) startPlaying() {
	o.phase = PhasePlaying
	o.timer = o.order.TimeLimit
	o.countdownOn = false

	diff := difficultyFor(o.order, o.tier)
	for _, m := range o.mechanics {
		m.Reset()
		m.Configure(diff)
	}

	o.audio.PlayStateMusic(MusicPlaying)
	o.audio.PlaySound(CueWhoosh)
}

// endPlaying scores the round in fixed order and enters Reveal.
func (o *Orchestrator) endPlaying() {
	o.phase = PhaseReveal
	o.timer = RevealDuration

	builderOK := o.builder.CheckSuccess()
	wrapperOK := o.wrapper.CheckSuccess()
	decoratorOK := o.decorator.CheckSuccess()
	foremanOK := o.foreman.CheckSuccess()

	result := &RoundResult{
		OrderName: o.order.Name,
		Successes: [4]bool{builderOK, wrapperOK, decoratorOK, foremanOK},
		Toy:       o.order.Toy.Pick(builderOK),
		Wrap:      catalog.WrapVariant.Pick(wrapperOK),
		Bow:       catalog.BowVariant.Pick(decoratorOK),
	}
	for _, ok := range result.Successes {
		if ok {
			result.Score++
		}
	}
	result.Commentary = commentaryFor(result.Score)
	o.result = result
	o.score += result.Score

	o.audio.StopLoop(CueCountdown)
	o.countdownOn = false
	o.audio.PlayStateMusic(MusicReveal)
	switch {
	case result.Score == 4:
		o.audio.PlaySound(CuePerfect)
	case result.Score >= 2:
		o.audio.PlaySound(CueSuccess)
	default:
		o.audio.PlaySound(CueFail)
	}
	o.logf("round %d: %q scored %d/4 (total %d)",
		o.round, o.order.Name, result.Score, o.score)
}

func (o *Orchestrator) logf(format string, args ...any) {
	if o.log != nil {
		o.log.Printf(format, args...)
	}
}

// Phase returns the current phase.
func (o *Orchestrator) Phase() Phase { return o.phase }

// Timer returns the seconds remaining in the current phase.
func (o *Orchestrator) Timer() float64 { return o.timer }

// Round returns the 1-based round number; zero before the first round.
func (o *Orchestrator) Round() int { return o.round }

// Score returns the cumulative score across all completed rounds.
func (o *Orchestrator) Score() int { return o.score }

// Tier returns the active round's difficulty tier.
func (o *Orchestrator) Tier() catalog.Tier { return o.tier }

// Order returns the active round's order definition.
func (o *Orchestrator) Order() catalog.OrderDefinition { return o.order }

// Result returns the latest round's outcome, or nil outside Reveal.
func (o *Orchestrator) Result() *RoundResult { return o.result }

// Builder exposes player 1's mechanic for rendering.
func (o *Orchestrator) Builder() *Builder { return o.builder }

// Wrapper exposes player 2's mechanic for rendering.
func (o *Orchestrator) Wrapper() *Wrapper { return o.wrapper }

// Decorator exposes player 3's mechanic for rendering.
func (o *Orchestrator) Decorator() *Decorator { return o.decorator }

// Foreman exposes player 4's mechanic for rendering.
func (o *Orchestrator) Foreman() *Foreman { return o.foreman }
