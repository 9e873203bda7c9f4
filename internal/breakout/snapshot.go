package breakout

import (
	"math"

	"github.com/vovakirdan/brickbreak/internal/config"
)

// Snapshot is a read-only copy of the state for renderers and tests.
type Snapshot struct {
	Tick       uint64
	Round      RoundState
	Difficulty config.DifficultyName
	Field      config.Playfield

	BallX, BallY   float64
	BallDX, BallDY float64
	BallRadius     float64

	PaddleX      float64
	PaddleWidth  float64
	PaddleHeight float64

	Score    int
	MaxScore int

	// Bricks in scan order (column-major). Includes destroyed bricks.
	Bricks      []Brick
	BrickWidth  float64
	BrickHeight float64
	BricksAlive int
}

// Snapshot returns the current state as a Snapshot.
func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         s.Tick,
		Round:        s.Round,
		Difficulty:   s.Difficulty.Name,
		Field:        s.Field,
		BallX:        s.Ball.X,
		BallY:        s.Ball.Y,
		BallDX:       s.Ball.DX,
		BallDY:       s.Ball.DY,
		BallRadius:   s.Ball.Radius,
		PaddleX:      s.Paddle.X,
		PaddleWidth:  s.Paddle.Width,
		PaddleHeight: s.Paddle.Height,
		Score:        s.Score,
		MaxScore:     s.Rules.MaxScore,
	}

	if s.Grid != nil {
		layout := s.Grid.Layout()
		snap.BrickWidth = layout.BrickWidth
		snap.BrickHeight = layout.BrickHeight
		snap.BricksAlive = s.Grid.Alive()
		snap.Bricks = make([]Brick, 0, layout.Columns*layout.Rows)
		s.Grid.Each(func(b Brick) {
			snap.Bricks = append(snap.Bricks, b)
		})
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Round) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallDX)
	h = h*31 + math.Float64bits(snap.BallDY)
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation

	for _, b := range snap.Bricks {
		h = h*31 + uint64(b.Status) //#nosec G115 -- hash computation
	}

	return h
}
