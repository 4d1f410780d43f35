package game

// Direction is one of the four Decorator sequence symbols.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// directions lists every symbol a sequence may draw from.
var directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the direction's display name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "UP"
	case DirDown:
		return "DOWN"
	case DirLeft:
		return "LEFT"
	case DirRight:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// Glyph returns the arrow rune drawn on the Decorator quadrant.
func (d Direction) Glyph() string {
	switch d {
	case DirUp:
		return "↑"
	case DirDown:
		return "↓"
	case DirLeft:
		return "←"
	case DirRight:
		return "→"
	default:
		return "?"
	}
}

// InputFrame is one tick's worth of player input. The input collaborator
// fills it once per tick: held fields reflect keys currently down, the rest
// are edge-triggered events delivered exactly once for the tick in which
// the underlying press occurred.
type InputFrame struct {
	// Builder holds either of two controls to fill the quality bar.
	BuilderLeft  bool
	BuilderRight bool

	// Wrapper has a single one-shot action press.
	WrapperAction bool

	// Decorator may press several directions in the same tick.
	DecoratorPressed []Direction

	// Foreman holds either control to push the needle.
	ForemanLeft  bool
	ForemanRight bool

	// Confirm advances the menu and reveal phases.
	Confirm bool
}

// builderActive reports whether the Builder showed any activity this tick.
func (f InputFrame) builderActive() bool {
	return f.BuilderLeft || f.BuilderRight
}

// decoratorPressed reports whether a direction is in this tick's press set.
func (f InputFrame) decoratorPressed(d Direction) bool {
	for _, p := range f.DecoratorPressed {
		if p == d {
			return true
		}
	}
	return false
}
