package breakout

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreak/internal/config"
)

// Ticker is anything driven by the frame clock.
// The driver schedules the next tick only while Active returns true.
type Ticker interface {
	Advance() []Event
	Active() bool
}

// Reactor consumes simulation events. Audio, confetti, toasts and the
// leaderboard prompt are all reactors.
type Reactor interface {
	React(ev Event) error
}

// ReactorFunc adapts a function to Reactor.
type ReactorFunc func(ev Event) error

// React calls f(ev).
func (f ReactorFunc) React(ev Event) error {
	return f(ev)
}

// Round owns one playthrough: the state, the input controller and the
// reactors that observe it.
type Round struct {
	state    State
	input    *Controller
	reactors []Reactor
	logger   *log.Logger
}

// NewRound creates a Ready round. A nil logger discards output.
func NewRound(cfg config.BreakoutConfig, diff config.Difficulty, logger *log.Logger, reactors ...Reactor) *Round {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Round{
		state:    NewState(cfg, diff),
		input:    NewController(),
		reactors: reactors,
		logger:   logger,
	}
}

// Input returns the controller fed by the platform.
func (r *Round) Input() *Controller {
	return r.input
}

// AddReactor registers another event consumer.
func (r *Round) AddReactor(rc Reactor) {
	r.reactors = append(r.reactors, rc)
}

// Start begins play.
func (r *Round) Start() {
	r.state = Start(r.state)
	r.logger.Debug("round started", "difficulty", r.state.Difficulty.Name)
}

// Active reports whether the round is still being played.
func (r *Round) Active() bool {
	return r.state.Round == Playing
}

// Advance runs one simulation tick and dispatches its events.
func (r *Round) Advance() []Event {
	next, events := Step(r.state, r.input.Frame())
	r.state = next

	for _, ev := range events {
		if ev.Terminal() {
			r.logger.Info("round over", "result", r.state.Round, "score", ev.Score, "tick", ev.Tick)
		}
		r.dispatch(ev)
	}
	return events
}

// State returns a copy of the current state.
func (r *Round) State() State {
	return r.state.Clone()
}

// Snapshot returns the renderable view of the current state.
func (r *Round) Snapshot() Snapshot {
	return r.state.Snapshot()
}

func (r *Round) dispatch(ev Event) {
	for _, rc := range r.reactors {
		r.react(rc, ev)
	}
}

// react isolates a reactor so one failing consumer cannot stop the round.
func (r *Round) react(rc Reactor, ev Event) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("reactor panicked", "event", ev.Kind, "panic", p)
		}
	}()
	if err := rc.React(ev); err != nil {
		r.logger.Warn("reactor failed", "event", ev.Kind, "err", err)
	}
}

// RunUntilDone advances t until it goes inactive or maxTicks is reached.
// Returns the number of ticks run.
func RunUntilDone(t Ticker, maxTicks int) int {
	n := 0
	for n < maxTicks && t.Active() {
		t.Advance()
		n++
	}
	return n
}
