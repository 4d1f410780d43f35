package game

const (
	// builderFillRate is fixed; only the decay rate scales with difficulty.
	builderFillRate = 0.15
	// builderQualityLine is the minimum final bar level that still counts
	// as a well-built toy.
	builderQualityLine = 0.5
)

// Builder is player 1: keep the quality bar above the line by hammering
// either build control. The bar drains constantly and refills while any
// control is down.
type Builder struct {
	quality   float64
	decayRate float64
	success   bool
}

// NewBuilder returns an unconfigured Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Name() string { return "Builder" }

// Reset starts the bar at the midpoint, not empty, so the player has a
// fighting chance before the first press lands.
func (b *Builder) Reset() {
	b.quality = 0.5
	b.success = false
}

// Configure sets the decay rate for the coming round.
func (b *Builder) Configure(d Difficulty) {
	b.decayRate = d.DecayRate
}

// Update drains the bar and refills it on any held build control. Holding
// counts every tick; the rapid alternation is a physical challenge, not a
// simulated one.
func (b *Builder) Update(dt float64, frame InputFrame) {
	b.quality -= b.decayRate * dt
	if frame.builderActive() {
		b.quality += builderFillRate * dt
	}
	b.quality = clamp01(b.quality)
}

// CheckSuccess records whether the bar ended at or above the quality line.
func (b *Builder) CheckSuccess() bool {
	b.success = b.quality >= builderQualityLine
	return b.success
}

// Quality exposes the bar level for rendering.
func (b *Builder) Quality() float64 { return b.quality }
