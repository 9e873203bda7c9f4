package breakout

import "github.com/vovakirdan/brickbreak/internal/core"

// Direction is a keyboard paddle direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// Input is the per-tick paddle input sampled from the controller.
type Input struct {
	Left   bool
	Right  bool
	Target *float64 // Pointer x in playfield units, nil when the pointer did not move
}

// Controller accumulates raw device events between ticks.
// Key state is level-triggered; pointer moves are consumed by Frame.
type Controller struct {
	left   bool
	right  bool
	target *float64
}

// NewController creates a controller with nothing held.
func NewController() *Controller {
	return &Controller{}
}

// KeyDown marks a direction as held.
func (c *Controller) KeyDown(dir Direction) {
	switch dir {
	case DirLeft:
		c.left = true
	case DirRight:
		c.right = true
	}
}

// KeyUp releases a direction.
func (c *Controller) KeyUp(dir Direction) {
	switch dir {
	case DirLeft:
		c.left = false
	case DirRight:
		c.right = false
	}
}

// Held reports whether a direction is currently held.
func (c *Controller) Held(dir Direction) bool {
	if dir == DirLeft {
		return c.left
	}
	return c.right
}

// PointerMove records the latest pointer x in playfield units.
func (c *Controller) PointerMove(x float64) {
	c.target = &x
}

// TouchMove is the touch equivalent of PointerMove.
func (c *Controller) TouchMove(x float64) {
	c.PointerMove(x)
}

// Release drops every held key and any pending pointer target.
func (c *Controller) Release() {
	c.left = false
	c.right = false
	c.target = nil
}

// Frame samples the input for one tick. The pointer target is consumed.
func (c *Controller) Frame() Input {
	in := Input{Left: c.left, Right: c.right, Target: c.target}
	c.target = nil
	return in
}

// ApplyInput moves the paddle for one tick.
// The pointer sets the paddle centre; then a held key nudges it by keySpeed,
// right taking priority when it can still move. The result is always clamped.
func ApplyInput(p Paddle, in Input, fieldW, keySpeed float64) Paddle {
	maxX := p.MaxX(fieldW)

	if in.Target != nil {
		p.X = core.ClampF(*in.Target-p.Width/2, 0, maxX)
	}

	if in.Right && p.X < maxX {
		p.X += keySpeed
	} else if in.Left && p.X > 0 {
		p.X -= keySpeed
	}

	p.Clamp(fieldW)
	return p
}
