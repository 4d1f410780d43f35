package game

const (
	// wrapperCursorSpeed is the triangle-wave sweep speed in track units
	// per second.
	wrapperCursorSpeed = 0.8
	// wrapperZoneCenter is where the target zone sits on the track.
	wrapperZoneCenter = 0.5
)

// Wrapper is player 2: a cursor sweeps back and forth across a track and
// the player gets one press to stop it inside the target zone. Zone width
// is the only difficulty lever.
type Wrapper struct {
	cursor     float64
	direction  float64
	zoneSize   float64
	hasPressed bool
	pressPos   float64
	success    bool
}

// NewWrapper returns an unconfigured Wrapper.
func NewWrapper() *Wrapper {
	return &Wrapper{direction: 1}
}

func (w *Wrapper) Name() string { return "Wrapper" }

// Reset rewinds the cursor to the left edge and clears the latch.
func (w *Wrapper) Reset() {
	w.cursor = 0
	w.direction = 1
	w.hasPressed = false
	w.pressPos = 0
	w.success = false
}

// Configure sets the target zone width for the coming round.
func (w *Wrapper) Configure(d Difficulty) {
	w.zoneSize = d.ZoneSize
}

// Update sweeps the cursor, reflecting at both edges, until the action
// press latches the current position. Nothing moves after the latch.
func (w *Wrapper) Update(dt float64, frame InputFrame) {
	if w.hasPressed {
		return
	}
	w.cursor += wrapperCursorSpeed * w.direction * dt
	if w.cursor >= 1 {
		w.cursor = 1
		w.direction = -1
	} else if w.cursor <= 0 {
		w.cursor = 0
		w.direction = 1
	}
	if frame.WrapperAction {
		w.hasPressed = true
		w.pressPos = w.cursor
	}
}

// CheckSuccess records whether the latched position fell inside the zone.
// Never pressing fails the round.
func (w *Wrapper) CheckSuccess() bool {
	if !w.hasPressed {
		w.success = false
		return false
	}
	start := wrapperZoneCenter - w.zoneSize/2
	end := wrapperZoneCenter + w.zoneSize/2
	w.success = w.pressPos >= start && w.pressPos <= end
	return w.success
}

// Cursor exposes the live cursor position for rendering.
func (w *Wrapper) Cursor() float64 { return w.cursor }

// ZoneSize exposes the configured zone width for rendering.
func (w *Wrapper) ZoneSize() float64 { return w.zoneSize }

// HasPressed reports whether the latch has fired.
func (w *Wrapper) HasPressed() bool { return w.hasPressed }

// PressPosition returns the latched cursor position; only meaningful once
// HasPressed reports true.
func (w *Wrapper) PressPosition() float64 { return w.pressPos }
