package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreak/internal/breakout"
)

const (
	bufferDuration = 20 * time.Millisecond
	bytesPerFrame  = 4 // stereo int16
)

// Player mixes queued cues and writes them to an output stream.
// It is safe to call Play and React from any goroutine.
type Player struct {
	volume float64
	logger *log.Logger

	cues  [soundCount][]float64
	queue chan Sound

	out  io.Writer
	cmd  *exec.Cmd
	pipe io.WriteCloser

	muted   atomic.Bool
	silent  atomic.Bool
	running atomic.Bool
	stop    chan struct{}
	wg      sync.WaitGroup
}

// NewPlayer creates a stopped player. Volume is 0..1.
// A nil logger discards output.
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{
		volume: min(max(volume, 0), 1),
		logger: logger,
		queue:  make(chan Sound, 32),
		stop:   make(chan struct{}),
	}
	for s := range soundCount {
		p.cues[s] = render(Streamer(s, p.volume))
	}
	return p
}

// Start launches the system playback tool. Missing tools are not an
// error: the player switches to silent mode and drops every cue.
func (p *Player) Start() error {
	backend, err := DetectBackend()
	if err != nil {
		p.logger.Info("audio disabled", "reason", err)
		p.silent.Store(true)
		return nil
	}

	cmd := exec.Command(backend.Path, backend.Args...)
	pipe, err := cmd.StdinPipe()
	if err != nil {
		p.silent.Store(true)
		return fmt.Errorf("audio: cannot open %s: %w", backend.Name, err)
	}
	if err := cmd.Start(); err != nil {
		pipe.Close()
		p.silent.Store(true)
		return fmt.Errorf("audio: cannot start %s: %w", backend.Name, err)
	}

	p.cmd = cmd
	p.pipe = pipe
	p.logger.Debug("audio started", "backend", backend.Name)
	return p.StartWriter(pipe)
}

// StartWriter runs the mixer against w instead of a playback tool.
func (p *Player) StartWriter(w io.Writer) error {
	if !p.running.CompareAndSwap(false, true) {
		return fmt.Errorf("audio: player already running")
	}
	p.out = w
	p.wg.Add(1)
	go p.loop()
	return nil
}

// Close stops the mixer and the playback tool.
func (p *Player) Close() error {
	if !p.running.CompareAndSwap(true, false) {
		return nil
	}
	close(p.stop)
	p.wg.Wait()

	if p.pipe != nil {
		p.pipe.Close()
	}
	if p.cmd != nil && p.cmd.Process != nil {
		p.cmd.Process.Kill() //nolint:errcheck
		p.cmd.Wait()         //nolint:errcheck
	}
	return nil
}

// SetMuted toggles output without stopping the mixer.
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// Muted reports the mute state.
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Play queues a cue. Returns false when the cue was dropped.
func (p *Player) Play(s Sound) bool {
	if !p.running.Load() || p.muted.Load() || p.silent.Load() {
		return false
	}
	select {
	case p.queue <- s:
		return true
	default:
		return false
	}
}

// React plays the cue for a simulation event.
func (p *Player) React(ev breakout.Event) error {
	switch ev.Kind {
	case breakout.EventBrickHit:
		p.Play(SoundBrick)
	case breakout.EventPaddleHit:
		p.Play(SoundPaddle)
	case breakout.EventVictory:
		p.Play(SoundVictory)
	case breakout.EventGameOver:
		p.Play(SoundGameOver)
	}
	return nil
}

type voice struct {
	samples []float64
	pos     int
}

// loop mixes active voices into fixed-size buffers and writes them out.
// Silence is written while idle so the playback tool keeps its stream open.
func (p *Player) loop() {
	defer p.wg.Done()

	ticker := time.NewTicker(bufferDuration)
	defer ticker.Stop()

	frames := SampleRate.N(bufferDuration)
	mix := make([]float64, frames)
	out := make([]byte, frames*bytesPerFrame)
	var active []voice

	for {
		select {
		case <-p.stop:
			return

		case s := <-p.queue:
			active = append(active, voice{samples: p.cues[s]})

		case <-ticker.C:
			clear(mix)
			active = mixVoices(active, mix)
			encode(mix, out)

			if _, err := p.out.Write(out); err != nil {
				p.logger.Warn("audio output closed, going silent", "err", err)
				p.silent.Store(true)
				return
			}
		}
	}
}

// mixVoices adds each voice into buf and returns the voices still playing.
func mixVoices(active []voice, buf []float64) []voice {
	remaining := active[:0]
	for _, v := range active {
		for i := 0; i < len(buf) && v.pos < len(v.samples); i++ {
			buf[i] += v.samples[v.pos]
			v.pos++
		}
		if v.pos < len(v.samples) {
			remaining = append(remaining, v)
		}
	}
	return remaining
}

// encode converts mono float samples to interleaved stereo int16 LE,
// clipping to [-1, 1].
func encode(in []float64, out []byte) {
	for i, v := range in {
		v = min(max(v, -1), 1)
		s := uint16(int16(v * 32767)) //#nosec G115 -- clipped above
		binary.LittleEndian.PutUint16(out[i*4:], s)
		binary.LittleEndian.PutUint16(out[i*4+2:], s)
	}
}
