// Package audio synthesizes the game's sound cues with beep. Every cue is
// generated from oscillators at startup cost zero: no sample assets, no
// decoding, just short procedural streamers mixed into one speaker.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed duration.
type oscillator struct {
	freq     float64
	endFreq  float64 // equal to freq for a flat tone; differs for a sweep
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// newOscillator creates a fixed-frequency oscillator streamer.
func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

// newSweep creates an oscillator whose frequency glides linearly from
// startFreq to endFreq over the duration.
func newSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     startFreq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// newEnvelope wraps a streamer in a simple attack/sustain/release shape.
func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a streamer. math.Log2(0) is -Inf, so zero volume is
// expressed through the Silent flag instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Cue synthesizers.

// digSound is a short muffled noise burst for breaking dirt.
func digSound(rate beep.SampleRate) beep.Streamer {
	noise := newOscillator(0, 50*time.Millisecond, WaveNoise, rate)
	shaped := newEnvelope(noise, 50*time.Millisecond, 2*time.Millisecond, 40*time.Millisecond, rate)
	return newVolume(shaped, 0.25)
}

// collectSound is a bell: a fundamental with a quieter octave overtone.
func collectSound(rate beep.SampleRate) beep.Streamer {
	fund := newOscillator(880.0, 180*time.Millisecond, WaveSine, rate)
	fundShaped := newEnvelope(fund, 180*time.Millisecond, 2*time.Millisecond, 150*time.Millisecond, rate)

	over := newOscillator(1760.0, 180*time.Millisecond, WaveSine, rate)
	overShaped := newEnvelope(over, 180*time.Millisecond, 2*time.Millisecond, 100*time.Millisecond, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, 0.5)
}

// pushSound is a low scrape for shoving a boulder.
func pushSound(rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(120.0, 90*time.Millisecond, WaveSaw, rate)
	shaped := newEnvelope(osc, 90*time.Millisecond, 10*time.Millisecond, 60*time.Millisecond, rate)
	return newVolume(shaped, 0.35)
}

// landSound is a dull thump for a boulder coming to rest.
func landSound(rate beep.SampleRate) beep.Streamer {
	osc := newSweep(140.0, 60.0, 120*time.Millisecond, WaveSine, rate)
	shaped := newEnvelope(osc, 120*time.Millisecond, 1*time.Millisecond, 100*time.Millisecond, rate)
	return newVolume(shaped, 0.5)
}

// revealSound is a rising two-note chime for the exit opening.
func revealSound(rate beep.SampleRate) beep.Streamer {
	n1 := newOscillator(659.26, 110*time.Millisecond, WaveSquare, rate)
	n1Shaped := newEnvelope(n1, 110*time.Millisecond, 2*time.Millisecond, 40*time.Millisecond, rate)

	n2 := newOscillator(987.77, 160*time.Millisecond, WaveSquare, rate)
	n2Shaped := newEnvelope(n2, 160*time.Millisecond, 2*time.Millisecond, 90*time.Millisecond, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.4)
}

// victorySound is a three-note ascending arpeggio.
func victorySound(rate beep.SampleRate) beep.Streamer {
	notes := []float64{523.25, 659.26, 783.99} // C5 E5 G5
	streamers := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := newOscillator(f, 140*time.Millisecond, WaveSquare, rate)
		streamers = append(streamers, newEnvelope(osc, 140*time.Millisecond, 2*time.Millisecond, 50*time.Millisecond, rate))
	}
	return newVolume(beep.Seq(streamers...), 0.4)
}

// deathSound is a falling saw sweep under a noise burst.
func deathSound(rate beep.SampleRate) beep.Streamer {
	sweep := newSweep(400.0, 50.0, 500*time.Millisecond, WaveSaw, rate)
	sweepShaped := newEnvelope(sweep, 500*time.Millisecond, 5*time.Millisecond, 300*time.Millisecond, rate)

	noise := newOscillator(0, 250*time.Millisecond, WaveNoise, rate)
	noiseShaped := newEnvelope(noise, 250*time.Millisecond, 1*time.Millisecond, 200*time.Millisecond, rate)

	mixed := beep.Mix(
		newVolume(sweepShaped, 0.6),
		newVolume(noiseShaped, 0.4),
	)
	return newVolume(mixed, 0.6)
}

// warningBeeper is the looping low-time alarm: a short high beep followed by
// silence, repeating until its Ctrl is paused.
type warningBeeper struct {
	position int
	phase    float64
	beepLen  int
	cycleLen int
	rate     beep.SampleRate
}

// newWarningBeeper creates the infinite warning loop.
func newWarningBeeper(rate beep.SampleRate) beep.Streamer {
	return &warningBeeper{
		beepLen:  rate.N(90 * time.Millisecond),
		cycleLen: rate.N(600 * time.Millisecond),
		rate:     rate,
	}
}

func (w *warningBeeper) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		var val float64
		if w.position < w.beepLen {
			val = 0.3 * math.Sin(2*math.Pi*w.phase)
			w.phase += 880.0 / float64(w.rate)
			w.phase = w.phase - math.Floor(w.phase)
		}

		samples[i][0] = val
		samples[i][1] = val
		w.position++
		if w.position >= w.cycleLen {
			w.position = 0
			w.phase = 0
		}
	}
	return len(samples), true
}

func (w *warningBeeper) Err() error { return nil }
