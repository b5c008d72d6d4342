package core

// Cue identifies a sound effect the simulation asks the audio layer to play.
// Games trigger cues as fire-and-forget side effects; whether anything is
// audible is entirely the audio layer's concern.
type Cue int

const (
	CueDig        Cue = iota // player consumed a dirt tile
	CueCollect               // diamond collected
	CuePush                  // boulder pushed sideways
	CueLand                  // boulder landed on something solid
	CueReveal                // exit revealed
	CueVictory               // player reached the exit
	CueDeath                 // player crushed or timed out
	CueTimeWarning           // looping low-time warning
)

// String returns the cue name used for logging and tests.
func (c Cue) String() string {
	switch c {
	case CueDig:
		return "dig"
	case CueCollect:
		return "collect"
	case CuePush:
		return "push"
	case CueLand:
		return "land"
	case CueReveal:
		return "reveal"
	case CueVictory:
		return "victory"
	case CueDeath:
		return "death"
	case CueTimeWarning:
		return "time_warning"
	default:
		return "unknown"
	}
}

// AudioSink is the collaborator games use to trigger sound effects.
// Implementations must never block and must swallow their own failures:
// the simulation does not inspect any audio state.
type AudioSink interface {
	// Play starts a cue. Looping cues keep playing until stopped.
	Play(c Cue)

	// Stop silences a cue. Stopping a cue that is not playing is a no-op.
	Stop(c Cue)

	// ToggleMute flips the mute state and returns the new state.
	ToggleMute() bool
}

// NopAudio is an AudioSink that does nothing. Used when no audio backend is
// available (tests, SSH sessions) so games never need nil checks.
type NopAudio struct{}

func (NopAudio) Play(Cue)        {}
func (NopAudio) Stop(Cue)        {}
func (NopAudio) ToggleMute() bool { return true }
