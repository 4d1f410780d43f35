// internal/tui/keys.go
//
// Terminals report key presses but never releases, so the tracker rebuilds
// the held/pressed split the game needs: a key counts as held while its
// most recent press is inside the hold window (keyboard auto-repeat keeps
// refreshing it), and "pressed this tick" is the set of keys whose press
// arrived since the previous snapshot, drained exactly once.

package tui

import (
	"time"

	"github.com/jcljest/holiday-panic-factory/internal/game"
)

// defaultHoldWindow covers the gap before keyboard auto-repeat kicks in.
const defaultHoldWindow = 260 * time.Millisecond

// Player key bindings, mirroring the menu legend.
const (
	keyBuilderLeft  = "a"
	keyBuilderRight = "d"
	keyWrapper      = "space"
	keyForemanLeft  = "["
	keyForemanRight = "]"
	keyConfirm      = "enter"
)

type keyTracker struct {
	holdWindow time.Duration
	lastPress  map[string]time.Time
	pressed    map[string]bool
}

func newKeyTracker(holdWindow time.Duration) *keyTracker {
	if holdWindow <= 0 {
		holdWindow = defaultHoldWindow
	}
	return &keyTracker{
		holdWindow: holdWindow,
		lastPress:  map[string]time.Time{},
		pressed:    map[string]bool{},
	}
}

// Press records one key event.
func (t *keyTracker) Press(key string, now time.Time) {
	if key == " " {
		key = keyWrapper
	}
	t.lastPress[key] = now
	t.pressed[key] = true
}

// held reports whether a key's latest press is still inside the hold window.
func (t *keyTracker) held(key string, now time.Time) bool {
	last, ok := t.lastPress[key]
	if !ok {
		return false
	}
	return now.Sub(last) <= t.holdWindow
}

// Snapshot assembles this tick's input frame and drains the pressed set,
// so each press is delivered exactly once.
func (t *keyTracker) Snapshot(now time.Time) game.InputFrame {
	frame := game.InputFrame{
		BuilderLeft:   t.held(keyBuilderLeft, now),
		BuilderRight:  t.held(keyBuilderRight, now),
		WrapperAction: t.pressed[keyWrapper],
		ForemanLeft:   t.held(keyForemanLeft, now),
		ForemanRight:  t.held(keyForemanRight, now),
		Confirm:       t.pressed[keyConfirm],
	}
	for key, dir := range map[string]game.Direction{
		"up":    game.DirUp,
		"down":  game.DirDown,
		"left":  game.DirLeft,
		"right": game.DirRight,
	} {
		if t.pressed[key] {
			frame.DecoratorPressed = append(frame.DecoratorPressed, dir)
		}
	}
	t.pressed = map[string]bool{}
	return frame
}
