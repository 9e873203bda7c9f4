package breakout

import (
	"errors"
	"testing"

	"github.com/vovakirdan/brickbreak/internal/config"
)

func newTestRound(t *testing.T, reactors ...Reactor) *Round {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	diff, err := cfg.Difficulty(config.DifficultyMedium)
	if err != nil {
		t.Fatal(err)
	}
	return NewRound(cfg, diff, nil, reactors...)
}

type recorder struct {
	events []Event
}

func (r *recorder) React(ev Event) error {
	r.events = append(r.events, ev)
	return nil
}

func TestRoundLifecycle(t *testing.T) {
	r := newTestRound(t)

	if r.Active() {
		t.Error("new round should not be active before Start")
	}
	if events := r.Advance(); len(events) != 0 || r.State().Tick != 0 {
		t.Error("Advance before Start should do nothing")
	}

	r.Start()
	if !r.Active() {
		t.Fatal("round should be active after Start")
	}
	r.Advance()
	if r.Snapshot().Tick != 1 {
		t.Errorf("tick = %d, expected 1", r.Snapshot().Tick)
	}
}

func TestRoundDispatchesToReactors(t *testing.T) {
	rec := &recorder{}
	r := newTestRound(t, rec)
	r.Start()
	r.state.Ball = Ball{X: 50, Y: 60, DX: 3, DY: -3, Radius: 15}

	r.Advance()

	if len(rec.events) != 1 || rec.events[0].Kind != EventBrickHit {
		t.Errorf("reactor saw %v, expected one brick hit", rec.events)
	}
}

func TestRoundSurvivesFailingReactors(t *testing.T) {
	failing := ReactorFunc(func(Event) error { return errors.New("speaker unplugged") })
	panicking := ReactorFunc(func(Event) error { panic("confetti jammed") })
	rec := &recorder{}

	r := newTestRound(t, failing, panicking, rec)
	r.Start()
	r.state.Ball = Ball{X: 50, Y: 60, DX: 3, DY: -3, Radius: 15}

	r.Advance()

	if len(rec.events) != 1 {
		t.Errorf("later reactor saw %d events, expected 1", len(rec.events))
	}
	if r.Snapshot().Score != 10 {
		t.Errorf("score = %d, expected 10", r.Snapshot().Score)
	}
	if !r.Active() {
		t.Error("reactor failures must not end the round")
	}
}

func TestRunUntilDoneStopsOnTerminalState(t *testing.T) {
	rec := &recorder{}
	r := newTestRound(t, rec)
	r.Start()
	r.state.Paddle.X = 600
	r.state.Ball = Ball{X: 50, Y: 577, DX: 3, DY: 3, Radius: 15}

	ticks := RunUntilDone(r, 1000)

	if r.Active() {
		t.Fatal("round should have ended")
	}
	if r.State().Round != Lost {
		t.Errorf("Round = %s, expected lost", r.State().Round)
	}
	if ticks != 3 {
		t.Errorf("ran %d ticks, expected 3", ticks)
	}
	if countKind(rec.events, EventGameOver) != 1 {
		t.Errorf("events = %v, expected one game over", rec.events)
	}
}

func TestRunUntilDoneRespectsLimit(t *testing.T) {
	r := newTestRound(t)
	r.Start()

	if ticks := RunUntilDone(r, 5); ticks != 5 {
		t.Errorf("ran %d ticks, expected 5", ticks)
	}
	if !r.Active() {
		t.Error("round should still be active")
	}
}
