package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/snaking/constant"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			peak = math.Max(peak, math.Abs(buf[j][0]))
			if math.IsNaN(buf[j][0]) || buf[j][0] != buf[j][1] {
				t.Fatalf("Expected finite mono sample, got %v", buf[j])
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Expected stream to end")
	return 0, 0
}

// TestOscillatorLength verifies each wave shape stops after its duration
func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	want := rate.N(100 * time.Millisecond)

	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw} {
		n, peak := drain(t, NewOscillator(440, 100*time.Millisecond, wave, rate))
		if n != want {
			t.Errorf("Wave %d: expected %d samples, got %d", wave, want, n)
		}
		if peak > 1.0 {
			t.Errorf("Wave %d: expected samples within [-1, 1], peak %f", wave, peak)
		}
	}
}

func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(250, 8*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 8)
	n, _ := osc.Stream(samples)
	if n != 8 {
		t.Fatalf("Expected 8 samples, got %d", n)
	}
	want := []float64{1, 1, -1, -1, 1, 1, -1, -1}
	for i, w := range want {
		if samples[i][0] != w {
			t.Errorf("Sample %d: expected %v, got %v", i, w, samples[i][0])
		}
	}
}

func TestCues(t *testing.T) {
	rate := beep.SampleRate(constant.SoundSampleRate)

	tests := []struct {
		name string
		cue  beep.Streamer
		dur  time.Duration
	}{
		{"eat", EatCue(rate), constant.EatToneDuration},
		{"death", DeathCue(rate), constant.DeathToneDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, peak := drain(t, tt.cue)
			if n != rate.N(tt.dur) {
				t.Errorf("Expected %d samples, got %d", rate.N(tt.dur), n)
			}
			if peak == 0 {
				t.Error("Expected audible samples, got silence")
			}
			if peak > constant.SoundVolume+1e-9 {
				t.Errorf("Expected peak at most %v, got %v", constant.SoundVolume, peak)
			}
		})
	}
}

func TestNewVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(1000)
	_, peak := drain(t, newVolume(NewOscillator(100, 10*time.Millisecond, WaveSquare, rate), 0))
	if peak != 0 {
		t.Errorf("Expected silence, got peak %v", peak)
	}
}
