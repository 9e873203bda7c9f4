package breakout

// EventKind classifies a simulation event.
type EventKind int

const (
	EventBrickHit EventKind = iota
	EventPaddleHit
	EventVictory
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventBrickHit:
		return "brick_hit"
	case EventPaddleHit:
		return "paddle_hit"
	case EventVictory:
		return "victory"
	case EventGameOver:
		return "game_over"
	}
	return "unknown"
}

// Event is emitted by Step. Presentation layers react to events instead of
// polling state.
type Event struct {
	Kind     EventKind
	Tick     uint64
	Col, Row int     // Brick hits only
	Score    int     // Score after the event
	HitPoint float64 // Paddle hits only, 0 = left edge, 1 = right edge
}

// Terminal reports whether the event ends the round.
func (e Event) Terminal() bool {
	return e.Kind == EventVictory || e.Kind == EventGameOver
}
