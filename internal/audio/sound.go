// Package audio plays short synthesized cues for simulation events.
// Sounds are built as beep streamers, rendered once to PCM and piped to a
// system playback tool. When no tool is available the player runs silent.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the output sample rate.
const SampleRate = beep.SampleRate(44100)

// Sound identifies a cue.
type Sound int

const (
	SoundBrick Sound = iota
	SoundPaddle
	SoundVictory
	SoundGameOver
	soundCount
)

func (s Sound) String() string {
	switch s {
	case SoundBrick:
		return "brick"
	case SoundPaddle:
		return "paddle"
	case SoundVictory:
		return "victory"
	case SoundGameOver:
		return "game_over"
	}
	return "unknown"
}

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// tone is a fixed-length oscillator.
type tone struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     Wave
}

func newTone(freq float64, d time.Duration, wave Wave) beep.Streamer {
	return &tone{freq: freq, length: SampleRate.N(d), wave: wave}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (t.phase - 0.5)
		}
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(SampleRate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// fade applies a linear attack and release to a streamer of known length.
type fade struct {
	s        beep.Streamer
	position int
	total    int
	attack   int
	release  int
}

func newFade(s beep.Streamer, total, attack, release time.Duration) beep.Streamer {
	return &fade{
		s:       s,
		total:   SampleRate.N(total),
		attack:  SampleRate.N(attack),
		release: SampleRate.N(release),
	}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	for i := range n {
		gain := 1.0
		if f.attack > 0 && f.position < f.attack {
			gain = float64(f.position) / float64(f.attack)
		}
		if left := f.total - f.position; f.release > 0 && left < f.release {
			gain = math.Max(float64(left), 0) / float64(f.release)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

// note is a shaped tone.
func note(freq float64, d time.Duration, wave Wave) beep.Streamer {
	return newFade(newTone(freq, d, wave), d, 5*time.Millisecond, d/2)
}

// withVolume scales a streamer linearly; 0 silences it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Streamer builds a fresh streamer for a cue at the given volume.
func Streamer(s Sound, vol float64) beep.Streamer {
	var out beep.Streamer
	switch s {
	case SoundBrick:
		out = note(660, 60*time.Millisecond, WaveSquare)
	case SoundPaddle:
		out = beep.Mix(
			withVolume(note(330, 80*time.Millisecond, WaveSine), 0.7),
			withVolume(note(660, 80*time.Millisecond, WaveSine), 0.3),
		)
	case SoundVictory:
		out = beep.Seq(
			note(523.25, 120*time.Millisecond, WaveSquare),
			note(659.25, 120*time.Millisecond, WaveSquare),
			note(783.99, 120*time.Millisecond, WaveSquare),
			note(1046.5, 300*time.Millisecond, WaveSquare),
		)
	case SoundGameOver:
		out = beep.Seq(
			note(392, 200*time.Millisecond, WaveSaw),
			note(311.13, 200*time.Millisecond, WaveSaw),
			note(196, 450*time.Millisecond, WaveSaw),
		)
	default:
		return nil
	}
	return withVolume(out, vol)
}

// maxCueLength bounds rendering of streamers that never drain.
const maxCueLength = 2 * time.Second

// render drains a streamer into mono samples.
func render(s beep.Streamer) []float64 {
	if s == nil {
		return nil
	}
	limit := SampleRate.N(maxCueLength)
	var out []float64
	buf := make([][2]float64, 512)
	for len(out) < limit {
		n, ok := s.Stream(buf)
		for i := range n {
			out = append(out, (buf[i][0]+buf[i][1])/2)
		}
		if !ok {
			return out
		}
	}
	return out[:limit]
}
