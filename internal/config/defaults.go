package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Playfield: Playfield{
			Width:  800,
			Height: 600,
		},
		Ball: BallConfig{
			Radius:      15,
			StartOffset: 30,
		},
		Paddle: PaddleConfig{
			Height:   15,
			KeySpeed: 7,
		},
		Bricks: BrickConfig{
			Columns:    7,
			Rows:       5,
			Width:      100,
			Height:     30,
			Padding:    5,
			OffsetTop:  50,
			OffsetLeft: 25,
			Points:     10,
		},
		Collision: Collision{
			SingleHitPerTick: false,
		},
		Difficulties: Presets{
			Easy:   PresetValues{BallSpeed: 2, PaddleWidth: 200},
			Medium: PresetValues{BallSpeed: 3, PaddleWidth: 150},
			Hard:   PresetValues{BallSpeed: 5, PaddleWidth: 100},
		},
	}
}
