// internal/audio/journal.go
//
// Audio playback hardware is outside this program's scope; the game's
// audio collaborator is a journal that records every cue through the
// session logger. The loop bookkeeping still matters: the orchestrator
// relies on looping cues not double-layering and on mute suppressing
// everything without disturbing game state.

package audio

// Logger receives formatted journal lines. *logging.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

// Journal implements game.AudioSink by recording cues instead of playing
// them. Safe to use with a nil logger.
type Journal struct {
	log   Logger
	muted bool
	loops map[string]bool
}

// NewJournal creates a journal writing through log.
func NewJournal(log Logger) *Journal {
	return &Journal{
		log:   log,
		loops: map[string]bool{},
	}
}

// SetMuted toggles cue suppression. Muting stops nothing retroactively;
// it only silences new requests, matching a hardware mute switch.
func (j *Journal) SetMuted(muted bool) {
	j.muted = muted
}

// Muted reports the current mute state.
func (j *Journal) Muted() bool {
	return j.muted
}

// PlaySound records a one-shot effect.
func (j *Journal) PlaySound(name string) {
	if j.muted {
		return
	}
	j.printf("sfx %s", name)
}

// StartLoop records a looping effect starting. Starting an already-running
// loop is a no-op.
func (j *Journal) StartLoop(name string) {
	if j.muted {
		return
	}
	if j.loops[name] {
		return
	}
	j.loops[name] = true
	j.printf("loop start %s", name)
}

// StopLoop records a looping effect stopping, if it was running.
func (j *Journal) StopLoop(name string) {
	if !j.loops[name] {
		return
	}
	delete(j.loops, name)
	j.printf("loop stop %s", name)
}

// PlayStateMusic records a background track switch.
func (j *Journal) PlayStateMusic(key string) {
	if j.muted {
		return
	}
	j.printf("music %s", key)
}

// Looping reports whether a named loop is currently running.
func (j *Journal) Looping(name string) bool {
	return j.loops[name]
}

func (j *Journal) printf(format string, args ...any) {
	if j.log == nil {
		return
	}
	j.log.Printf("audio: "+format, args...)
}
