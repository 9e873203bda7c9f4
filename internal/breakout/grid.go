// Package breakout implements the brick breaker simulation: the brick grid,
// ball/paddle collision resolution and the per-tick step function.
// It never draws to a terminal; the platform reads snapshots and feeds input.
package breakout

import (
	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
)

// BrickStatus is the lifecycle state of a brick.
type BrickStatus int

const (
	BrickAlive     BrickStatus = iota // Present and collidable
	BrickDestroyed                    // Hit once; never comes back within a round
)

// Brick is a single grid cell.
type Brick struct {
	Col, Row int
	X, Y     float64 // Top-left corner in playfield units
	Status   BrickStatus
}

// Alive reports whether the brick is still present.
func (b Brick) Alive() bool {
	return b.Status == BrickAlive
}

// Layout holds the grid layout constants.
type Layout struct {
	Columns     int
	Rows        int
	BrickWidth  float64
	BrickHeight float64
	Padding     float64
	OffsetTop   float64
	OffsetLeft  float64
}

// LayoutFromConfig builds a Layout from the brick section of the config.
func LayoutFromConfig(c config.BrickConfig) Layout {
	return Layout{
		Columns:     c.Columns,
		Rows:        c.Rows,
		BrickWidth:  c.Width,
		BrickHeight: c.Height,
		Padding:     c.Padding,
		OffsetTop:   c.OffsetTop,
		OffsetLeft:  c.OffsetLeft,
	}
}

// Position returns the top-left corner of brick (col, row).
func (l Layout) Position(col, row int) (x, y float64) {
	x = float64(col)*(l.BrickWidth+l.Padding) + l.OffsetLeft
	y = float64(row)*(l.BrickHeight+l.Padding) + l.OffsetTop
	return x, y
}

// Grid is a fixed Columns x Rows matrix of bricks, stored column-major
// so that iteration order matches the collision scan order.
type Grid struct {
	layout Layout
	bricks [][]Brick // [col][row]
	alive  int
}

// NewGrid creates a grid with every brick alive.
func NewGrid(layout Layout) *Grid {
	g := &Grid{
		layout: layout,
		bricks: make([][]Brick, layout.Columns),
		alive:  layout.Columns * layout.Rows,
	}
	for c := range layout.Columns {
		g.bricks[c] = make([]Brick, layout.Rows)
		for r := range layout.Rows {
			x, y := layout.Position(c, r)
			g.bricks[c][r] = Brick{Col: c, Row: r, X: x, Y: y, Status: BrickAlive}
		}
	}
	return g
}

// Layout returns the layout the grid was built with.
func (g *Grid) Layout() Layout {
	return g.layout
}

// Columns returns the number of brick columns.
func (g *Grid) Columns() int {
	return g.layout.Columns
}

// Rows returns the number of brick rows.
func (g *Grid) Rows() int {
	return g.layout.Rows
}

// Brick returns a copy of brick (col, row).
func (g *Grid) Brick(col, row int) Brick {
	return g.bricks[col][row]
}

// Box returns the rectangle covered by brick (col, row).
func (g *Grid) Box(col, row int) core.Box {
	b := g.bricks[col][row]
	return core.NewBox(b.X, b.Y, g.layout.BrickWidth, g.layout.BrickHeight)
}

// Destroy marks brick (col, row) as destroyed.
// Returns true only for the call that made the transition.
func (g *Grid) Destroy(col, row int) bool {
	b := &g.bricks[col][row]
	if b.Status == BrickDestroyed {
		return false
	}
	b.Status = BrickDestroyed
	g.alive--
	return true
}

// Alive returns the number of bricks still standing.
func (g *Grid) Alive() int {
	return g.alive
}

// AllDestroyed reports whether no brick is left.
func (g *Grid) AllDestroyed() bool {
	return g.alive == 0
}

// Each calls fn for every brick in scan order (column-major, row-minor).
func (g *Grid) Each(fn func(b Brick)) {
	for c := range g.bricks {
		for r := range g.bricks[c] {
			fn(g.bricks[c][r])
		}
	}
}

// Clone creates a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		layout: g.layout,
		bricks: make([][]Brick, len(g.bricks)),
		alive:  g.alive,
	}
	for c, col := range g.bricks {
		clone.bricks[c] = make([]Brick, len(col))
		copy(clone.bricks[c], col)
	}
	return clone
}
