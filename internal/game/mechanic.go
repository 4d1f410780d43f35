// internal/game/mechanic.go
//
// Every player runs one mechanic. The four variants share a lifecycle
// (reset at round start, configure from the selected order, update each
// tick while playing, evaluated once when time runs out) but keep fully
// independent internal state, so they implement a small capability
// interface rather than sharing any behavior.

package game

import "github.com/jcljest/holiday-panic-factory/internal/catalog"

// Difficulty carries the per-round scaling parameters drawn from the
// selected order. Each mechanic reads only its own field.
type Difficulty struct {
	// DecayRate drains the Builder's quality bar, in bar units per second.
	DecayRate float64
	// ZoneSize is the width of the Wrapper's target zone, in track units.
	ZoneSize float64
	// ArrowCount is the length of the Decorator's sequence.
	ArrowCount int
	// DriftMultiplier scales the Foreman's base drift speed.
	DriftMultiplier float64
}

// difficultyFor assembles a Difficulty from an order and its tier.
func difficultyFor(order catalog.OrderDefinition, tier catalog.Tier) Difficulty {
	return Difficulty{
		DecayRate:       order.DecayRate,
		ZoneSize:        order.ZoneSize,
		ArrowCount:      order.ArrowCount,
		DriftMultiplier: driftMultiplier(tier),
	}
}

func driftMultiplier(tier catalog.Tier) float64 {
	switch tier {
	case catalog.TierNightmare:
		return nightmareDriftMultiplier
	case catalog.TierStandard:
		return standardDriftMultiplier
	default:
		return easyDriftMultiplier
	}
}

// Mechanic is the capability surface the orchestrator drives. Reset and
// Configure run before each Playing phase, Update runs once per tick while
// playing, and CheckSuccess is called exactly once when the phase ends.
type Mechanic interface {
	Name() string
	Reset()
	Configure(d Difficulty)
	Update(dt float64, frame InputFrame)
	CheckSuccess() bool
}

// Rand is the injectable random source used for order selection, Decorator
// sequences, and Foreman drift. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
