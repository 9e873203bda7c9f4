package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
)

// Visual characters for rendering
const (
	BallChar       = '●'
	PaddleChar     = '▀'
	BrickChar      = '█'
	BackgroundChar = '╱'
)

// RowColors is the brick color by row, cycling when there are more rows.
var RowColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorGreen,
}

// Viewport maps playfield units onto a rectangle of screen cells.
type Viewport struct {
	Cells core.Rect
	Field config.Playfield
}

// ToCell converts a playfield point to a screen cell.
func (v Viewport) ToCell(x, y float64) (int, int) {
	cx := v.Cells.X + int(math.Floor(x*float64(v.Cells.W)/v.Field.Width))
	cy := v.Cells.Y + int(math.Floor(y*float64(v.Cells.H)/v.Field.Height))
	return cx, cy
}

// ToFieldX converts a screen column to the playfield x at the cell centre.
func (v Viewport) ToFieldX(cellX int) float64 {
	return (float64(cellX-v.Cells.X) + 0.5) * v.Field.Width / float64(v.Cells.W)
}

// Contains reports whether a screen cell lies inside the viewport.
func (v Viewport) Contains(cx, cy int) bool {
	return cx >= v.Cells.X && cx < v.Cells.Right() && cy >= v.Cells.Y && cy < v.Cells.Bottom()
}

// boxCells converts a playfield box to a cell rectangle at least one cell in size.
func (v Viewport) boxCells(b core.Box) core.Rect {
	x0, y0 := v.ToCell(b.X, b.Y)
	x1, y1 := v.ToCell(b.Right(), b.Bottom())
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Render draws a snapshot into the viewport of dst.
func Render(dst *core.Screen, snap Snapshot, view Viewport) {
	dst.DrawRect(view.Cells, BackgroundChar, core.ColorBackground)

	renderBricks(dst, snap, view)
	renderPaddle(dst, snap, view)
	renderBall(dst, snap, view)
	renderHUD(dst, snap, view)
}

func renderBricks(dst *core.Screen, snap Snapshot, view Viewport) {
	for _, b := range snap.Bricks {
		if !b.Alive() {
			continue
		}
		color := RowColors[b.Row%len(RowColors)]
		r := view.boxCells(core.NewBox(b.X, b.Y, snap.BrickWidth, snap.BrickHeight))
		// Leave a gap column so neighbours stay distinguishable at low resolution
		if r.W > 1 {
			r.W--
		}
		dst.DrawRect(r, BrickChar, color)
	}
}

func renderPaddle(dst *core.Screen, snap Snapshot, view Viewport) {
	top := snap.Field.Height - snap.PaddleHeight
	r := view.boxCells(core.NewBox(snap.PaddleX, top, snap.PaddleWidth, snap.PaddleHeight))
	// The paddle always occupies the bottom row of the viewport
	r.Y = view.Cells.Bottom() - 1
	r.H = 1
	dst.DrawRect(r, PaddleChar, core.ColorOrange)
}

func renderBall(dst *core.Screen, snap Snapshot, view Viewport) {
	cx, cy := view.ToCell(snap.BallX, snap.BallY)
	if view.Contains(cx, cy) {
		dst.SetColored(cx, cy, BallChar, core.ColorWhite)
	}
}

func renderHUD(dst *core.Screen, snap Snapshot, view Viewport) {
	dst.DrawTextColored(view.Cells.X+1, view.Cells.Y, fmt.Sprintf("Score: %d", snap.Score), core.ColorWhite)

	label := string(snap.Difficulty)
	if label != "" {
		dst.DrawTextColored(view.Cells.Right()-len(label)-1, view.Cells.Y, label, core.ColorGray)
	}
}
