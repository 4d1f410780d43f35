package game

// Sound effect cue names the orchestrator emits. The audio collaborator maps
// them to actual playback; unknown names must degrade to silence.
const (
	CueButtonPress = "button_press"
	CueSiren       = "siren"
	CueWhoosh      = "whoosh"
	CueCountdown   = "countdown"
	CuePerfect     = "perfect"
	CueSuccess     = "success"
	CueFail        = "fail"
)

// Music keys, one per phase.
const (
	MusicMenu     = "menu"
	MusicBriefing = "briefing"
	MusicPlaying  = "playing"
	MusicReveal   = "reveal"
)

// AudioSink receives fire-and-forget audio requests from the orchestrator.
// Implementations must never block and must tolerate missing content.
type AudioSink interface {
	// PlaySound plays a one-shot effect.
	PlaySound(name string)
	// StartLoop starts a named looping effect. Starting a loop that is
	// already running must not layer a second copy.
	StartLoop(name string)
	// StopLoop stops a named looping effect if it is running.
	StopLoop(name string)
	// PlayStateMusic switches the background track for a phase key.
	PlayStateMusic(key string)
}

// NopAudio discards every cue. Used when no audio collaborator is wired.
type NopAudio struct{}

func (NopAudio) PlaySound(string)      {}
func (NopAudio) StartLoop(string)      {}
func (NopAudio) StopLoop(string)       {}
func (NopAudio) PlayStateMusic(string) {}
