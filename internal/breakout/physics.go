package breakout

import (
	"math"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
)

// Ball is the ball state. Position is the centre.
type Ball struct {
	X, Y   float64
	DX, DY float64 // Velocity per tick
	Radius float64
}

// Speed returns the velocity magnitude.
func (b Ball) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}

// Move advances the ball by its velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// Paddle is the player's paddle. It sits on the bottom edge of the playfield.
type Paddle struct {
	X      float64 // Left edge
	Width  float64
	Height float64
}

// Right returns the right edge.
func (p Paddle) Right() float64 {
	return p.X + p.Width
}

// MaxX returns the largest legal left edge for a playfield of the given width.
func (p Paddle) MaxX(fieldW float64) float64 {
	return fieldW - p.Width
}

// Clamp keeps the paddle inside [0, fieldW-Width].
func (p *Paddle) Clamp(fieldW float64) {
	p.X = core.ClampF(p.X, 0, p.MaxX(fieldW))
}

// CollisionSide indicates which boundary was hit.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionBottom
	CollisionLeft
	CollisionRight
)

// HitPolicy decides how many bricks may register in one tick.
type HitPolicy int

const (
	// HitEveryBrick lets every overlapping brick register, each flipping dy.
	HitEveryBrick HitPolicy = iota
	// HitFirstBrick stops the scan after the first hit.
	HitFirstBrick
)

// BrickHit identifies a brick destroyed by the ball.
type BrickHit struct {
	Col, Row int
}

// CollideBricks tests the ball centre against every alive brick in scan order.
// Each hit reverses dy and destroys the brick.
func CollideBricks(ball *Ball, grid *Grid, policy HitPolicy) []BrickHit {
	var hits []BrickHit
	for c := range grid.Columns() {
		for r := range grid.Rows() {
			if !grid.Brick(c, r).Alive() {
				continue
			}
			if !grid.Box(c, r).ContainsOpen(ball.X, ball.Y) {
				continue
			}

			ball.BounceY()
			grid.Destroy(c, r)
			hits = append(hits, BrickHit{Col: c, Row: r})

			if policy == HitFirstBrick {
				return hits
			}
		}
	}
	return hits
}

// CheckWalls reflects the ball off the side walls and the ceiling, based on
// where the ball would be after its next move.
// vert is CollisionBottom when the next move reaches the paddle plane; the
// caller decides between a paddle bounce and a miss.
func CheckWalls(ball *Ball, field config.Playfield) (horiz, vert CollisionSide) {
	nextX := ball.X + ball.DX
	switch {
	case nextX > field.Width-ball.Radius:
		ball.BounceX()
		horiz = CollisionRight
	case nextX < ball.Radius:
		ball.BounceX()
		horiz = CollisionLeft
	}

	nextY := ball.Y + ball.DY
	switch {
	case nextY < ball.Radius:
		ball.BounceY()
		vert = CollisionTop
	case nextY > field.Height-ball.Radius:
		vert = CollisionBottom
	}

	return horiz, vert
}

// PaddleBounce redirects the ball off the paddle when the ball centre is
// strictly within the paddle span. With angle = hitPoint*pi - pi/2 the new
// velocity is (speed*cos(angle), speed*sin(angle)) with the vertical part
// always pointing up, so the ball never leaves the paddle towards the floor.
// Speed magnitude is preserved. Returns the normalized hit point in [0, 1].
func PaddleBounce(ball *Ball, paddle Paddle) (hitPoint float64, ok bool) {
	if !core.InOpenInterval(ball.X, paddle.X, paddle.Right()) {
		return 0, false
	}

	hitPoint = (ball.X - paddle.X) / paddle.Width
	angle := hitPoint*math.Pi - math.Pi/2

	speed := ball.Speed()
	ball.DX = speed * math.Cos(angle)
	ball.DY = -math.Abs(speed * math.Sin(angle))

	return hitPoint, true
}
