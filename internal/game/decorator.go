package game

// Decorator is player 3: reproduce a random arrow sequence in order. Any
// wrong press restarts the sequence from the beginning; finishing it
// succeeds immediately without waiting for the round timer.
type Decorator struct {
	rng       Rand
	sequence  []Direction
	index     int
	completed bool
	success   bool
}

// NewDecorator returns a Decorator drawing its sequences from rng.
func NewDecorator(rng Rand) *Decorator {
	return &Decorator{rng: rng}
}

func (d *Decorator) Name() string { return "Decorator" }

// Reset rewinds progress on the current sequence.
func (d *Decorator) Reset() {
	d.index = 0
	d.completed = false
	d.success = false
	d.markIfEmpty()
}

// Configure draws a fresh sequence of the requested length, with
// replacement, so the same direction may repeat. Progress flags restart
// with the new sequence; whatever the previous round left behind must not
// leak into this one.
func (d *Decorator) Configure(diff Difficulty) {
	d.sequence = make([]Direction, diff.ArrowCount)
	for i := range d.sequence {
		d.sequence[i] = directions[d.rng.Intn(len(directions))]
	}
	d.index = 0
	d.completed = false
	d.success = false
	d.markIfEmpty()
}

// markIfEmpty treats a zero-length sequence as already finished so a
// malformed order can never stall the round.
func (d *Decorator) markIfEmpty() {
	if len(d.sequence) == 0 {
		d.completed = true
		d.success = true
	}
}

// Update consumes this tick's pressed set. The expected direction being
// present counts as correct even if extra directions were pressed alongside
// it; a press set without the expected direction restarts the sequence.
func (d *Decorator) Update(dt float64, frame InputFrame) {
	if d.completed {
		return
	}
	if d.index >= len(d.sequence) {
		d.completed = true
		d.success = true
		return
	}
	expected := d.sequence[d.index]
	if frame.decoratorPressed(expected) {
		d.index++
		if d.index >= len(d.sequence) {
			d.completed = true
			d.success = true
		}
	} else if len(frame.DecoratorPressed) > 0 {
		d.index = 0
	}
}

// CheckSuccess reports whether the sequence finished before time ran out.
func (d *Decorator) CheckSuccess() bool {
	return d.success
}

// Sequence exposes the full arrow list for rendering.
func (d *Decorator) Sequence() []Direction { return d.sequence }

// Index exposes the progress pointer for rendering.
func (d *Decorator) Index() int { return d.index }

// Completed reports whether the sequence has been finished.
func (d *Decorator) Completed() bool { return d.completed }
