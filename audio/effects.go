package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/vi-recall/constants"
	"github.com/lixenwraith/vi-recall/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
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

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
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

// newVolume wraps s in a linear volume factor
// math.Log2(0) is -Inf, so 0 volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateErrorSound generates a short harsh buzz for a wrong selection
func CreateErrorSound(cfg Config) beep.Streamer {
	rate := cfg.Rate()

	osc := NewOscillator(100.0, constants.ErrorSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.ErrorSoundDuration, constants.ErrorSoundAttack, constants.ErrorSoundRelease, rate)

	return newVolume(shaped, 0.6*cfg.Volume())
}

// CreateBellSound generates a short ding for a correct selection
func CreateBellSound(cfg Config) beep.Streamer {
	rate := cfg.Rate()

	// Fundamental (A5)
	fund := NewOscillator(880.0, constants.BellSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constants.BellSoundDuration, constants.BellSoundAttack, constants.BellSoundFundamentalRelease, rate)

	// Harmonic (octave up)
	over := NewOscillator(1760.0, constants.BellSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.BellSoundDuration, constants.BellSoundAttack, constants.BellSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	return newVolume(mixed, 0.5*cfg.Volume())
}

// CreateCoinSound generates a two-note chime for a completed level
func CreateCoinSound(cfg Config) beep.Streamer {
	rate := cfg.Rate()

	// First note (B5)
	n1 := NewOscillator(987.77, constants.CoinSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.CoinSoundNote1Duration, constants.CoinSoundAttack, constants.CoinSoundNote1Release, rate)

	// Second note (E6)
	n2 := NewOscillator(1318.51, constants.CoinSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.CoinSoundNote2Duration, constants.CoinSoundAttack, constants.CoinSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.4*cfg.Volume())
}

// CreateBlipSound generates one countdown tick at freq
func CreateBlipSound(cfg Config, freq float64) beep.Streamer {
	rate := cfg.Rate()

	osc := NewOscillator(freq, constants.BlipSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.BlipSoundDuration, constants.BlipSoundAttack, constants.BlipSoundRelease, rate)

	return newVolume(shaped, 0.5*cfg.Volume())
}

// CreateStartSound generates the rising double blip that ends the countdown
func CreateStartSound(cfg Config) beep.Streamer {
	return beep.Seq(CreateBlipSound(cfg, 880.0), CreateBlipSound(cfg, 1318.51))
}

// ToneFrequency returns the pitch assigned to target, or 0 for an undeclared target
func ToneFrequency(target core.Target) float64 {
	switch target {
	case core.TargetTopLeft:
		return constants.ToneTopLeft
	case core.TargetTopRight:
		return constants.ToneTopRight
	case core.TargetBottomLeft:
		return constants.ToneBottomLeft
	case core.TargetBottomRight:
		return constants.ToneBottomRight
	default:
		return 0
	}
}

// CreateTone generates the pitch of target for duration, played while it is highlighted
func CreateTone(cfg Config, target core.Target, duration time.Duration) beep.Streamer {
	freq := ToneFrequency(target)
	if freq == 0 || duration <= 0 {
		return nil
	}
	rate := cfg.Rate()

	osc := NewOscillator(freq, duration, WaveSquare, rate)
	shaped := NewEnvelope(osc, duration, constants.ToneAttack, constants.ToneRelease, rate)

	return newVolume(shaped, 0.35*cfg.Volume())
}

// CueEffect returns the sound effect streamer for cue, or nil for an unknown cue
func CueEffect(cue core.Cue, cfg Config) beep.Streamer {
	switch cue {
	case core.CueCorrectSelection:
		return CreateBellSound(cfg)
	case core.CueWrongSelection:
		return CreateErrorSound(cfg)
	case core.CueLevelCompleted:
		return CreateCoinSound(cfg)
	case core.CueCountdown:
		return CreateBlipSound(cfg, 880.0)
	case core.CueRoundStarted:
		return CreateStartSound(cfg)
	default:
		return nil
	}
}
