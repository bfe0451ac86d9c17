package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/dice-roller/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a wave streamer lasting duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
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
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream and ends it after duration
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with attack/release ramps inside duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so 0 volume is expressed as Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// RollSound is a short noise whoosh played when the die leaves the hand
func RollSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.RollSoundDuration

	noise := NewOscillator(0, d, WaveNoise, rate)
	shaped := NewEnvelope(noise, d, d/3, d/2, rate)
	return newVolume(shaped, cfg.Volume*0.35)
}

// BounceSound is a low thud whose pitch and loudness follow the impact speed
// Returns nil for impacts too soft to hear
func BounceSound(cfg Config, impactSpeed float64) beep.Streamer {
	if impactSpeed < parameter.BounceSilentSpeed {
		return nil
	}
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.BounceSoundDuration

	freq := parameter.BounceBaseFreq + parameter.BounceFreqGain*impactSpeed
	thud := NewOscillator(freq, d, WaveSquare, rate)
	shaped := NewEnvelope(thud, d, 2*time.Millisecond, d*3/4, rate)

	loudness := math.Min(1, impactSpeed*4)
	return newVolume(shaped, cfg.Volume*loudness)
}

// SettleSound is a two-note chime; a six rings an octave of brightness above a one
func SettleSound(cfg Config, face int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.SettleSoundDuration

	t := float64(face-1) / 5
	freq := parameter.SettleFreqLow + (parameter.SettleFreqHigh-parameter.SettleFreqLow)*t

	first, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil
	}
	second, err := generators.SineTone(rate, freq*1.5)
	if err != nil {
		return nil
	}

	n1 := NewEnvelope(first, d/3, 5*time.Millisecond, d/6, rate)
	n2 := NewEnvelope(second, d*2/3, 5*time.Millisecond, d/2, rate)
	return newVolume(beep.Seq(n1, n2), cfg.Volume*0.6)
}
