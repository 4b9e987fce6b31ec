package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/snaking/constant"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite streamer of the given wave shape
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
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fade ramps the tail of a finite stream down to silence
type fade struct {
	streamer beep.Streamer
	position int
	total    int
	release  int
}

func newFade(s beep.Streamer, duration, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{streamer: s, total: rate.N(duration), release: rate.N(release)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	start := f.total - f.release
	for i := 0; i < n; i++ {
		if f.position >= start && f.release > 0 {
			vol := float64(f.total-f.position) / float64(f.release)
			if vol < 0 {
				vol = 0
			}
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// newVolume applies a linear gain; 0 or less silences the stream
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// EatCue is a short two-step rising chirp
func EatCue(rate beep.SampleRate) beep.Streamer {
	half := constant.EatToneDuration / 2
	low, err := generators.SineTone(rate, constant.EatToneFreq)
	if err != nil {
		low = NewOscillator(constant.EatToneFreq, half, WaveSine, rate)
	}
	high := NewOscillator(constant.EatToneFreq*1.5, half, WaveSine, rate)
	chirp := beep.Seq(
		beep.Take(rate.N(half), low),
		newFade(high, half, half/2, rate),
	)
	return newVolume(chirp, constant.SoundVolume)
}

// DeathCue is a low square buzz with a long release
func DeathCue(rate beep.SampleRate) beep.Streamer {
	d := constant.DeathToneDuration
	buzz := beep.Mix(
		newVolume(NewOscillator(constant.DeathToneFreq, d, WaveSquare, rate), 0.6),
		newVolume(NewOscillator(constant.DeathToneFreq*2, d, WaveSaw, rate), 0.3),
	)
	return newVolume(newFade(buzz, d, d/2, rate), constant.SoundVolume)
}
