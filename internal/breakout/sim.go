package breakout

import (
	"github.com/vovakirdan/brickbreak/internal/config"
)

// RoundState is the round lifecycle.
type RoundState int

const (
	Ready RoundState = iota
	Playing
	Won
	Lost
)

func (s RoundState) String() string {
	switch s {
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Terminal reports whether the round has ended.
func (s RoundState) Terminal() bool {
	return s == Won || s == Lost
}

// Rules are the per-round constants derived from config.
type Rules struct {
	PointsPerBrick int
	MaxScore       int
	KeySpeed       float64
	HitPolicy      HitPolicy
}

// State is the full simulation state of one round.
type State struct {
	Tick       uint64
	Round      RoundState
	Ball       Ball
	Paddle     Paddle
	Grid       *Grid
	Score      int
	Field      config.Playfield
	Difficulty config.Difficulty
	Rules      Rules
}

// NewState builds a Ready state with a full grid and the ball and paddle
// in their start positions for the given difficulty.
func NewState(cfg config.BreakoutConfig, diff config.Difficulty) State {
	policy := HitEveryBrick
	if cfg.Collision.SingleHitPerTick {
		policy = HitFirstBrick
	}

	s := State{
		Round:      Ready,
		Grid:       NewGrid(LayoutFromConfig(cfg.Bricks)),
		Field:      cfg.Playfield,
		Difficulty: diff,
		Rules: Rules{
			PointsPerBrick: cfg.Bricks.Points,
			MaxScore:       cfg.MaxScore(),
			KeySpeed:       cfg.Paddle.KeySpeed,
			HitPolicy:      policy,
		},
		Paddle: Paddle{
			X:      (cfg.Playfield.Width - diff.PaddleWidth) / 2,
			Width:  diff.PaddleWidth,
			Height: cfg.Paddle.Height,
		},
		Ball: Ball{
			X:      cfg.Playfield.Width / 2,
			Y:      cfg.Playfield.Height - cfg.Ball.StartOffset,
			DX:     diff.BallSpeed,
			DY:     -diff.BallSpeed,
			Radius: cfg.Ball.Radius,
		},
	}
	return s
}

// Start moves a Ready state to Playing. Other states are returned unchanged.
func Start(s State) State {
	if s.Round == Ready {
		s.Round = Playing
	}
	return s
}

// Clone returns a copy that shares no mutable data with s.
func (s State) Clone() State {
	if s.Grid != nil {
		s.Grid = s.Grid.Clone()
	}
	return s
}

// Step advances the simulation by one tick. It does not modify s.
//
// Order per tick: brick collisions, win check, wall and ceiling reflection,
// floor resolution against the paddle, ball integration, paddle input.
// Once the round is Won or Lost nothing further happens in that tick and
// later calls return the state unchanged.
func Step(s State, in Input) (State, []Event) {
	if s.Round != Playing {
		return s, nil
	}

	next := s.Clone()
	next.Tick++

	var events []Event

	for _, hit := range CollideBricks(&next.Ball, next.Grid, next.Rules.HitPolicy) {
		next.Score += next.Rules.PointsPerBrick
		events = append(events, Event{
			Kind:  EventBrickHit,
			Tick:  next.Tick,
			Col:   hit.Col,
			Row:   hit.Row,
			Score: next.Score,
		})
	}

	if next.Score == next.Rules.MaxScore {
		next.Round = Won
		events = append(events, Event{Kind: EventVictory, Tick: next.Tick, Score: next.Score})
		return next, events
	}

	_, vert := CheckWalls(&next.Ball, next.Field)

	if vert == CollisionBottom {
		hitPoint, ok := PaddleBounce(&next.Ball, next.Paddle)
		if !ok {
			next.Round = Lost
			events = append(events, Event{Kind: EventGameOver, Tick: next.Tick, Score: next.Score})
			return next, events
		}
		events = append(events, Event{Kind: EventPaddleHit, Tick: next.Tick, Score: next.Score, HitPoint: hitPoint})
	}

	next.Ball.Move()
	next.Paddle = ApplyInput(next.Paddle, in, next.Field.Width, next.Rules.KeySpeed)

	return next, events
}
