package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/brickbreak/internal/config"
)

func newPlayingState(t *testing.T, name config.DifficultyName) State {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	diff, err := cfg.Difficulty(name)
	if err != nil {
		t.Fatalf("Difficulty(%s): %v", name, err)
	}
	return Start(NewState(cfg, diff))
}

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func TestNewStateStartPositions(t *testing.T) {
	s := NewState(config.DefaultBreakoutConfig(), config.Difficulty{Name: config.DifficultyMedium, BallSpeed: 3, PaddleWidth: 150})

	if s.Round != Ready {
		t.Errorf("Round = %s, expected ready", s.Round)
	}
	if s.Ball.X != 400 || s.Ball.Y != 570 {
		t.Errorf("ball at (%v,%v), expected (400,570)", s.Ball.X, s.Ball.Y)
	}
	if s.Ball.DX != 3 || s.Ball.DY != -3 {
		t.Errorf("ball velocity (%v,%v), expected (3,-3)", s.Ball.DX, s.Ball.DY)
	}
	if s.Paddle.X != 325 || s.Paddle.Width != 150 {
		t.Errorf("paddle x=%v width=%v, expected 325/150", s.Paddle.X, s.Paddle.Width)
	}
	if s.Rules.MaxScore != 350 {
		t.Errorf("MaxScore = %d, expected 350", s.Rules.MaxScore)
	}
}

func TestStepIgnoredUnlessPlaying(t *testing.T) {
	s := NewState(config.DefaultBreakoutConfig(), config.Difficulty{Name: config.DifficultyEasy, BallSpeed: 2, PaddleWidth: 200})

	next, events := Step(s, Input{Right: true})

	if next.Tick != 0 || next.Ball != s.Ball || next.Paddle != s.Paddle || len(events) != 0 {
		t.Error("Step on a Ready state should change nothing")
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	s := newPlayingState(t, config.DifficultyMedium)
	s.Ball = Ball{X: 50, Y: 60, DX: 3, DY: -3, Radius: 15} // inside brick (0,0)

	next, _ := Step(s, Input{})

	if !s.Grid.Brick(0, 0).Alive() {
		t.Error("Step destroyed a brick in the caller's grid")
	}
	if s.Score != 0 || s.Tick != 0 {
		t.Error("Step changed the caller's state")
	}
	if next.Grid.Brick(0, 0).Alive() || next.Score != 10 {
		t.Error("Step did not apply the brick hit to the new state")
	}
}

func TestStepLeftWallBounce(t *testing.T) {
	s := newPlayingState(t, config.DifficultyMedium)
	s.Ball.X = s.Ball.Radius
	s.Ball.Y = 300
	s.Ball.DX = -3
	s.Ball.DY = -3

	next, _ := Step(s, Input{})

	if next.Ball.DX != 3 {
		t.Errorf("dx = %v, expected 3 after the left wall", next.Ball.DX)
	}
	if next.Ball.DY != -3 {
		t.Errorf("dy = %v, expected unchanged -3", next.Ball.DY)
	}
	if next.Ball.X != 18 || next.Ball.Y != 297 {
		t.Errorf("ball at (%v,%v), expected (18,297)", next.Ball.X, next.Ball.Y)
	}
}

func TestStepPaddleLeftEdge(t *testing.T) {
	s := newPlayingState(t, config.DifficultyMedium)
	s.Paddle.X = 100
	s.Ball = Ball{X: 100.001, Y: 583, DX: 3, DY: 3, Radius: 15}
	speed := s.Ball.Speed()

	next, events := Step(s, Input{})

	if countKind(events, EventPaddleHit) != 1 {
		t.Fatalf("events = %v, expected one paddle hit", events)
	}
	if math.Abs(next.Ball.DX) > 1e-3 {
		t.Errorf("dx = %v, expected about 0", next.Ball.DX)
	}
	if math.Abs(next.Ball.DY+speed) > 1e-3 {
		t.Errorf("dy = %v, expected about %v", next.Ball.DY, -speed)
	}
	if next.Round != Playing {
		t.Errorf("Round = %s, expected playing", next.Round)
	}
}

func TestStepFloorMissLoses(t *testing.T) {
	s := newPlayingState(t, config.DifficultyMedium)
	s.Paddle.X = 100
	s.Ball = Ball{X: 50, Y: 583, DX: 3, DY: 3, Radius: 15}

	next, events := Step(s, Input{Right: true})

	if next.Round != Lost {
		t.Fatalf("Round = %s, expected lost", next.Round)
	}
	if countKind(events, EventGameOver) != 1 {
		t.Errorf("events = %v, expected one game over", events)
	}
	if next.Ball.X != 50 || next.Ball.Y != 583 {
		t.Errorf("ball moved to (%v,%v) after the miss", next.Ball.X, next.Ball.Y)
	}
	if next.Paddle.X != 100 {
		t.Errorf("paddle moved to %v after the miss", next.Paddle.X)
	}

	after, more := Step(next, Input{Left: true})
	if after.Tick != next.Tick || len(more) != 0 {
		t.Error("Step after Lost should be a no-op")
	}
}

func TestStepLastBrickWins(t *testing.T) {
	s := newPlayingState(t, config.DifficultyMedium)
	for c := range s.Grid.Columns() {
		for r := range s.Grid.Rows() {
			if c == 6 && r == 4 {
				continue
			}
			s.Grid.Destroy(c, r)
			s.Score += s.Rules.PointsPerBrick
		}
	}
	if s.Score != 340 {
		t.Fatalf("setup score = %d, expected 340", s.Score)
	}
	s.Ball = Ball{X: 700, Y: 205, DX: 3, DY: -3, Radius: 15}

	next, events := Step(s, Input{})

	if next.Round != Won {
		t.Fatalf("Round = %s, expected won", next.Round)
	}
	if next.Score != 350 || !next.Grid.AllDestroyed() {
		t.Errorf("score = %d, all destroyed = %v", next.Score, next.Grid.AllDestroyed())
	}
	if countKind(events, EventVictory) != 1 || countKind(events, EventBrickHit) != 1 {
		t.Errorf("events = %v, expected one brick hit and one victory", events)
	}

	victories := 0
	cur := next
	for range 10 {
		var evs []Event
		cur, evs = Step(cur, Input{})
		victories += countKind(evs, EventVictory)
	}
	if victories != 0 {
		t.Errorf("victory emitted %d more times after the round ended", victories)
	}
}

func TestStepInvariantsOverLongRun(t *testing.T) {
	for _, name := range config.DifficultyNames() {
		t.Run(string(name), func(t *testing.T) {
			s := newPlayingState(t, name)
			destroyed := make(map[[2]int]bool)

			for i := range 20000 {
				if s.Round != Playing {
					break
				}
				in := Input{Left: i%90 < 40, Right: i%90 >= 50}
				if i%333 == 0 {
					target := s.Ball.X
					in.Target = &target
				}

				speed := s.Ball.Speed()
				next, events := Step(s, in)

				if next.Paddle.X < 0 || next.Paddle.X > next.Field.Width-next.Paddle.Width {
					t.Fatalf("tick %d: paddle x=%v out of bounds", next.Tick, next.Paddle.X)
				}
				if math.Abs(next.Ball.Speed()-speed) > 1e-9 {
					t.Fatalf("tick %d: speed changed %v -> %v", next.Tick, speed, next.Ball.Speed())
				}
				for _, ev := range events {
					if ev.Kind != EventBrickHit {
						continue
					}
					key := [2]int{ev.Col, ev.Row}
					if destroyed[key] {
						t.Fatalf("brick %v destroyed twice", key)
					}
					destroyed[key] = true
				}
				if next.Grid.AllDestroyed() != (next.Score == next.Rules.MaxScore) {
					t.Fatalf("tick %d: AllDestroyed=%v with score %d", next.Tick, next.Grid.AllDestroyed(), next.Score)
				}
				if next.Score != (35-next.Grid.Alive())*next.Rules.PointsPerBrick {
					t.Fatalf("tick %d: score %d does not match %d alive bricks", next.Tick, next.Score, next.Grid.Alive())
				}

				s = next
			}
		})
	}
}

func TestStepDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := newPlayingState(t, config.DifficultyHard)
		for i := range 3000 {
			s, _ = Step(s, Input{Left: i%60 < 20, Right: i%60 > 40})
		}
		return s.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
}

func TestRoundStateTerminal(t *testing.T) {
	tests := []struct {
		state    RoundState
		terminal bool
	}{
		{Ready, false},
		{Playing, false},
		{Won, true},
		{Lost, true},
	}

	for _, tc := range tests {
		if tc.state.Terminal() != tc.terminal {
			t.Errorf("%s.Terminal() = %v, expected %v", tc.state, !tc.terminal, tc.terminal)
		}
	}
}
