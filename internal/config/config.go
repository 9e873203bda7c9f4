// Package config provides YAML and TOML game configuration loading and the
// difficulty preset table.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all configuration for the game.
// Distances are in playfield units; speeds are units per tick.
type BreakoutConfig struct {
	Playfield    Playfield    `yaml:"playfield" toml:"playfield"`
	Ball         BallConfig   `yaml:"ball" toml:"ball"`
	Paddle       PaddleConfig `yaml:"paddle" toml:"paddle"`
	Bricks       BrickConfig  `yaml:"bricks" toml:"bricks"`
	Collision    Collision    `yaml:"collision" toml:"collision"`
	Difficulties Presets      `yaml:"difficulties" toml:"difficulties"`
}

// Playfield is the size of the drawing surface.
type Playfield struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// BallConfig defines the ball geometry and start position.
type BallConfig struct {
	Radius      float64 `yaml:"radius" toml:"radius"`
	StartOffset float64 `yaml:"start_offset" toml:"start_offset"` // Distance of the start position above the floor
}

// PaddleConfig defines paddle geometry and keyboard speed.
type PaddleConfig struct {
	Height   float64 `yaml:"height" toml:"height"`
	KeySpeed float64 `yaml:"key_speed" toml:"key_speed"` // Units moved per tick while a direction key is held
}

// BrickConfig defines the brick grid layout.
type BrickConfig struct {
	Columns    int     `yaml:"columns" toml:"columns"`
	Rows       int     `yaml:"rows" toml:"rows"`
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	Padding    float64 `yaml:"padding" toml:"padding"`
	OffsetTop  float64 `yaml:"offset_top" toml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left" toml:"offset_left"`
	Points     int     `yaml:"points" toml:"points"`
}

// Collision holds collision policy switches.
type Collision struct {
	// SingleHitPerTick stops the brick scan after the first hit in a tick.
	// When false every overlapping brick registers, each flipping dy.
	SingleHitPerTick bool `yaml:"single_hit_per_tick" toml:"single_hit_per_tick"`
}

// Presets is the named difficulty table.
type Presets struct {
	Easy   PresetValues `yaml:"easy" toml:"easy"`
	Medium PresetValues `yaml:"medium" toml:"medium"`
	Hard   PresetValues `yaml:"hard" toml:"hard"`
}

// PresetValues are the tunables that differ between difficulties.
type PresetValues struct {
	BallSpeed   float64 `yaml:"ball_speed" toml:"ball_speed"`
	PaddleWidth float64 `yaml:"paddle_width" toml:"paddle_width"`
}

// MaxScore is the score reached when every brick is destroyed.
func (c BreakoutConfig) MaxScore() int {
	return c.Bricks.Columns * c.Bricks.Rows * c.Bricks.Points
}

// Validate checks the configuration for values the simulation cannot run with.
func (c BreakoutConfig) Validate() error {
	var errs []error

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must be positive, got %vx%v", c.Playfield.Width, c.Playfield.Height))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius must be positive, got %v", c.Ball.Radius))
	}
	if c.Paddle.Height <= 0 || c.Paddle.KeySpeed <= 0 {
		errs = append(errs, errors.New("paddle height and key speed must be positive"))
	}
	if c.Bricks.Columns <= 0 || c.Bricks.Rows <= 0 {
		errs = append(errs, fmt.Errorf("brick grid must be at least 1x1, got %dx%d", c.Bricks.Columns, c.Bricks.Rows))
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 || c.Bricks.Points <= 0 {
		errs = append(errs, errors.New("brick width, height and points must be positive"))
	}

	gridRight := c.Bricks.OffsetLeft + float64(c.Bricks.Columns)*(c.Bricks.Width+c.Bricks.Padding) - c.Bricks.Padding
	if gridRight > c.Playfield.Width {
		errs = append(errs, fmt.Errorf("brick grid (%v) is wider than the playfield (%v)", gridRight, c.Playfield.Width))
	}

	for _, name := range DifficultyNames() {
		d, _ := c.Difficulty(name)
		if d.BallSpeed <= 0 {
			errs = append(errs, fmt.Errorf("difficulty %s: ball speed must be positive", name))
		}
		if d.PaddleWidth <= 0 || d.PaddleWidth > c.Playfield.Width {
			errs = append(errs, fmt.Errorf("difficulty %s: paddle width %v out of range", name, d.PaddleWidth))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid breakout config: %w", errors.Join(errs...))
	}
	return nil
}
