package game

import "math"

const (
	// foremanBaseDrift is the unscaled drift speed in track units/second.
	foremanBaseDrift = 0.3
	// foremanControlSpeed is how fast a held control pushes the needle.
	foremanControlSpeed = 0.6
	// foremanWindow is the distance from center that still counts as
	// balanced when the round is scored.
	foremanWindow = 0.3

	easyDriftMultiplier      = 1.0
	standardDriftMultiplier  = 1.5
	nightmareDriftMultiplier = 2.5
)

// Foreman is player 4: hold a drifting needle near the center of a gauge.
// The needle wanders randomly every tick and is only judged at the instant
// the round ends.
type Foreman struct {
	rng       Rand
	needle    float64
	driftMult float64
	success   bool
}

// NewForeman returns a Foreman drawing its drift noise from rng.
func NewForeman(rng Rand) *Foreman {
	return &Foreman{rng: rng, driftMult: easyDriftMultiplier}
}

func (f *Foreman) Name() string { return "Foreman" }

// Reset centers the needle.
func (f *Foreman) Reset() {
	f.needle = 0.5
	f.success = false
}

// Configure sets the tier drift multiplier for the coming round.
func (f *Foreman) Configure(d Difficulty) {
	f.driftMult = d.DriftMultiplier
}

// Update applies a uniform [-1,1] perturbation scaled by the drift speed,
// then the player's correction, then clamps to the gauge.
func (f *Foreman) Update(dt float64, frame InputFrame) {
	drift := (f.rng.Float64()*2 - 1) * foremanBaseDrift * f.driftMult * dt
	f.needle += drift

	if frame.ForemanLeft {
		f.needle -= foremanControlSpeed * dt
	}
	if frame.ForemanRight {
		f.needle += foremanControlSpeed * dt
	}
	f.needle = clamp01(f.needle)
}

// CheckSuccess records whether the needle ended inside the balance window.
func (f *Foreman) CheckSuccess() bool {
	f.success = math.Abs(f.needle-0.5) < foremanWindow
	return f.success
}

// Needle exposes the needle position for rendering.
func (f *Foreman) Needle() float64 { return f.needle }
