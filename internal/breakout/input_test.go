package breakout

import "testing"

func ptr(v float64) *float64 {
	return &v
}

func TestApplyInput(t *testing.T) {
	const fieldW = 800
	const keySpeed = 7

	tests := []struct {
		name  string
		x     float64
		in    Input
		wantX float64
	}{
		{"idle", 325, Input{}, 325},
		{"right", 325, Input{Right: true}, 332},
		{"left", 325, Input{Left: true}, 318},
		{"both held prefers right", 325, Input{Left: true, Right: true}, 332},
		{"right at limit falls back to left", 650, Input{Left: true, Right: true}, 643},
		{"right clamps to edge", 647, Input{Right: true}, 650},
		{"left clamps to zero", 3, Input{Left: true}, 0},
		{"left at zero stays", 0, Input{Left: true}, 0},
		{"pointer centres paddle", 325, Input{Target: ptr(200)}, 125},
		{"pointer clamps left", 325, Input{Target: ptr(10)}, 0},
		{"pointer clamps right", 325, Input{Target: ptr(795)}, 650},
		{"pointer then key", 325, Input{Target: ptr(200), Right: true}, 132},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Paddle{X: tc.x, Width: 150, Height: 15}
			got := ApplyInput(p, tc.in, fieldW, keySpeed)
			if got.X != tc.wantX {
				t.Errorf("paddle x = %v, expected %v", got.X, tc.wantX)
			}
		})
	}
}

func TestControllerFrame(t *testing.T) {
	c := NewController()

	c.KeyDown(DirLeft)
	in := c.Frame()
	if !in.Left || in.Right || in.Target != nil {
		t.Errorf("Frame() = %+v, expected only left", in)
	}

	// Held keys persist across frames until released
	if !c.Frame().Left {
		t.Error("left should still be held")
	}
	c.KeyUp(DirLeft)
	if c.Frame().Left {
		t.Error("left should be released")
	}

	c.PointerMove(120)
	in = c.Frame()
	if in.Target == nil || *in.Target != 120 {
		t.Fatalf("Frame() target = %v, expected 120", in.Target)
	}
	if c.Frame().Target != nil {
		t.Error("pointer target should be consumed by Frame")
	}

	c.TouchMove(300)
	c.KeyDown(DirRight)
	c.Release()
	in = c.Frame()
	if in.Left || in.Right || in.Target != nil {
		t.Errorf("Frame() after Release = %+v, expected empty", in)
	}
}

func TestControllerHeld(t *testing.T) {
	c := NewController()
	c.KeyDown(DirRight)
	if !c.Held(DirRight) || c.Held(DirLeft) {
		t.Error("Held() does not reflect key state")
	}
}
