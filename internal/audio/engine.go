package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/cavedash/internal/core"
)

const engineSampleRate = beep.SampleRate(48000)

// Engine plays game cues through a single speaker mixer. It implements
// core.AudioSink. An uninitialized or failed engine degrades silently:
// every method stays safe to call and the simulation never notices.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	warning     *beep.Ctrl
	initialized bool
	muted       bool
}

// NewEngine creates an engine; call Init before use.
func NewEngine() *Engine {
	return &Engine{
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and attaches the mixer. Safe to call twice.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}
	if err := speaker.Init(engineSampleRate, engineSampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Close silences everything. beep has no speaker close; clearing the mixer
// is enough to stop all output.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	if e.warning != nil {
		e.warning.Paused = true
		e.warning = nil
	}
	e.mixer.Clear()
	speaker.Unlock()
	e.initialized = false
}

// Play starts the streamer for a cue. One-shot cues are fire-and-forget;
// the time warning is a loop that keeps sounding until stopped.
func (e *Engine) Play(c core.Cue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized || e.muted {
		return
	}

	if c == core.CueTimeWarning {
		if e.warning != nil && !e.warning.Paused {
			return
		}
		ctrl := &beep.Ctrl{Streamer: newWarningBeeper(engineSampleRate)}
		e.warning = ctrl
		speaker.Lock()
		e.mixer.Add(ctrl)
		speaker.Unlock()
		return
	}

	if s := cueStreamer(c); s != nil {
		speaker.Lock()
		e.mixer.Add(s)
		speaker.Unlock()
	}
}

// Stop halts a looping cue. One-shot cues run to completion on their own.
func (e *Engine) Stop(c core.Cue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if c == core.CueTimeWarning && e.warning != nil {
		speaker.Lock()
		e.warning.Paused = true
		speaker.Unlock()
		e.warning = nil
	}
}

// ToggleMute flips the mute state and returns the new state. Muting also
// silences an active warning loop.
func (e *Engine) ToggleMute() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.muted = !e.muted
	if e.muted && e.warning != nil {
		speaker.Lock()
		e.warning.Paused = true
		speaker.Unlock()
		e.warning = nil
	}
	return e.muted
}

// cueStreamer maps a one-shot cue to its synthesizer.
func cueStreamer(c core.Cue) beep.Streamer {
	switch c {
	case core.CueDig:
		return digSound(engineSampleRate)
	case core.CueCollect:
		return collectSound(engineSampleRate)
	case core.CuePush:
		return pushSound(engineSampleRate)
	case core.CueLand:
		return landSound(engineSampleRate)
	case core.CueReveal:
		return revealSound(engineSampleRate)
	case core.CueVictory:
		return victorySound(engineSampleRate)
	case core.CueDeath:
		return deathSound(engineSampleRate)
	default:
		return nil
	}
}
