package cave

import "github.com/vovakirdan/cavedash/internal/core"

// TimerPhase is the countdown state machine:
// Running → Warning → Expired, with Frozen absorbing any phase once the
// session ends for an external reason (win, or a loss the timer didn't cause).
type TimerPhase uint8

const (
	TimerRunning TimerPhase = iota
	TimerWarning
	TimerExpired
	TimerFrozen
)

// String returns the phase name used in snapshots.
func (p TimerPhase) String() string {
	switch p {
	case TimerRunning:
		return "running"
	case TimerWarning:
		return "warning"
	case TimerExpired:
		return "expired"
	case TimerFrozen:
		return "frozen"
	default:
		return "unknown"
	}
}

// Timer counts down the session budget in whole seconds. Decrements are
// driven by its own last-tick timestamp, at most one per elapsed 1000ms,
// so the countdown is independent of the render frame rate.
type Timer struct {
	Remaining int
	phase     TimerPhase

	warnThreshold int
	lastTickMS    float64

	audio core.AudioSink
}

// NewTimer creates a running timer with the given budget.
func NewTimer(limitSeconds, warnThresholdSeconds int, nowMS float64, audio core.AudioSink) Timer {
	return Timer{
		Remaining:     limitSeconds,
		phase:         TimerRunning,
		warnThreshold: warnThresholdSeconds,
		lastTickMS:    nowMS,
		audio:         audio,
	}
}

// Phase returns the current phase.
func (t *Timer) Phase() TimerPhase {
	return t.phase
}

// Update advances the countdown to nowMS. It returns true exactly once,
// on the tick the timer expires; the caller owns the game-over side effects
// beyond stopping the warning cue.
func (t *Timer) Update(nowMS float64) bool {
	if t.phase == TimerFrozen || t.phase == TimerExpired {
		return false
	}

	if nowMS-t.lastTickMS >= 1000 {
		t.lastTickMS = nowMS
		t.Remaining--
	}

	if t.Remaining <= 0 {
		t.phase = TimerExpired
		t.audio.Stop(core.CueTimeWarning)
		return true
	}

	if t.phase == TimerRunning && t.Remaining <= t.warnThreshold {
		t.phase = TimerWarning
		t.audio.Play(core.CueTimeWarning)
	}

	return false
}

// Freeze absorbs the timer when the session ends externally. The warning
// cue is stopped exactly once; repeated freezes are no-ops. An expired
// timer stays expired: expiry is its own terminal state.
func (t *Timer) Freeze() {
	if t.phase == TimerFrozen || t.phase == TimerExpired {
		return
	}
	if t.phase == TimerWarning {
		t.audio.Stop(core.CueTimeWarning)
	}
	t.phase = TimerFrozen
}
