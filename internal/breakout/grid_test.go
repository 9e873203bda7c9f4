package breakout

import (
	"testing"

	"github.com/vovakirdan/brickbreak/internal/config"
)

func defaultLayout() Layout {
	return LayoutFromConfig(config.DefaultBreakoutConfig().Bricks)
}

func TestGridPositions(t *testing.T) {
	g := NewGrid(defaultLayout())

	tests := []struct {
		col, row int
		x, y     float64
	}{
		{0, 0, 25, 50},
		{1, 0, 130, 50},
		{0, 1, 25, 85},
		{6, 4, 655, 190},
	}

	for _, tc := range tests {
		b := g.Brick(tc.col, tc.row)
		if b.X != tc.x || b.Y != tc.y {
			t.Errorf("brick (%d,%d) at (%v,%v), expected (%v,%v)", tc.col, tc.row, b.X, b.Y, tc.x, tc.y)
		}
		if !b.Alive() {
			t.Errorf("brick (%d,%d) should start alive", tc.col, tc.row)
		}
	}

	if g.Alive() != 35 {
		t.Errorf("Alive() = %d, expected 35", g.Alive())
	}
}

func TestGridDestroyIsIdempotent(t *testing.T) {
	g := NewGrid(defaultLayout())

	if !g.Destroy(2, 3) {
		t.Fatal("first Destroy should report the transition")
	}
	if g.Destroy(2, 3) {
		t.Error("second Destroy should be a no-op")
	}
	if g.Alive() != 34 {
		t.Errorf("Alive() = %d, expected 34", g.Alive())
	}
	if g.Brick(2, 3).Alive() {
		t.Error("destroyed brick reports alive")
	}
}

func TestGridAllDestroyed(t *testing.T) {
	g := NewGrid(defaultLayout())
	for c := range g.Columns() {
		for r := range g.Rows() {
			if g.AllDestroyed() {
				t.Fatalf("AllDestroyed() true with brick (%d,%d) still alive", c, r)
			}
			g.Destroy(c, r)
		}
	}
	if !g.AllDestroyed() {
		t.Error("AllDestroyed() should be true after destroying every brick")
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(defaultLayout())
	clone := g.Clone()

	clone.Destroy(0, 0)

	if !g.Brick(0, 0).Alive() {
		t.Error("destroying a brick in the clone changed the original")
	}
	if g.Alive() != 35 || clone.Alive() != 34 {
		t.Errorf("alive counts: original=%d clone=%d", g.Alive(), clone.Alive())
	}
}

func TestGridScanOrder(t *testing.T) {
	g := NewGrid(Layout{Columns: 2, Rows: 2, BrickWidth: 10, BrickHeight: 5})

	var order [][2]int
	g.Each(func(b Brick) {
		order = append(order, [2]int{b.Col, b.Row})
	})

	expected := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for i := range expected {
		if order[i] != expected[i] {
			t.Fatalf("scan order = %v, expected column-major %v", order, expected)
		}
	}
}
