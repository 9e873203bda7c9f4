package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	embedded := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(defaultBreakoutYAML, &embedded); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if embedded != DefaultBreakoutConfig() {
		t.Errorf("embedded defaults drifted from DefaultBreakoutConfig:\n%+v\n%+v", embedded, DefaultBreakoutConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.MaxScore() != 350 {
		t.Errorf("MaxScore() = %d, expected 350", cfg.MaxScore())
	}
}

func TestDifficultyPresets(t *testing.T) {
	cfg := DefaultBreakoutConfig()

	tests := []struct {
		name        DifficultyName
		ballSpeed   float64
		paddleWidth float64
	}{
		{DifficultyEasy, 2, 200},
		{DifficultyMedium, 3, 150},
		{DifficultyHard, 5, 100},
	}

	for _, tc := range tests {
		t.Run(string(tc.name), func(t *testing.T) {
			d, err := cfg.Difficulty(tc.name)
			if err != nil {
				t.Fatalf("Difficulty(%s) failed: %v", tc.name, err)
			}
			if d.BallSpeed != tc.ballSpeed || d.PaddleWidth != tc.paddleWidth {
				t.Errorf("Difficulty(%s) = %+v, expected speed %v width %v", tc.name, d, tc.ballSpeed, tc.paddleWidth)
			}
		})
	}

	if _, err := cfg.Difficulty("nightmare"); err == nil {
		t.Error("unknown difficulty should return an error")
	}
}

func TestParseDifficultyName(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyName
		wantErr bool
	}{
		{"", DifficultyMedium, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"normal", DifficultyMedium, false},
		{"fixed", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficultyName(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficultyName(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDifficultyName(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestLoadBreakoutCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakout.yaml")
	data := []byte("collision:\n  single_hit_per_tick: true\ndifficulties:\n  hard:\n    ball_speed: 6\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}

	if !cfg.Collision.SingleHitPerTick {
		t.Error("single_hit_per_tick should be overridden")
	}
	if cfg.Difficulties.Hard.BallSpeed != 6 {
		t.Errorf("hard ball speed = %v, expected 6", cfg.Difficulties.Hard.BallSpeed)
	}
	// Untouched keys keep their defaults
	if cfg.Difficulties.Hard.PaddleWidth != 100 {
		t.Errorf("hard paddle width = %v, expected default 100", cfg.Difficulties.Hard.PaddleWidth)
	}
	if cfg.Bricks.Columns != 7 {
		t.Errorf("columns = %d, expected default 7", cfg.Bricks.Columns)
	}
}

func TestLoadBreakoutCustomPathErrors(t *testing.T) {
	if _, err := LoadBreakout(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("bricks:\n  columns: 40\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBreakout(bad); err == nil {
		t.Error("grid wider than the playfield should fail validation")
	}
}

func TestLoadBreakoutTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakout.toml")
	data := []byte("[ball]\nradius = 10\n\n[difficulties.easy]\npaddle_width = 250\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}
	if cfg.Ball.Radius != 10 {
		t.Errorf("ball radius = %v, expected 10", cfg.Ball.Radius)
	}
	if cfg.Difficulties.Easy.PaddleWidth != 250 {
		t.Errorf("easy paddle width = %v, expected 250", cfg.Difficulties.Easy.PaddleWidth)
	}
	if cfg.Difficulties.Easy.BallSpeed != 2 {
		t.Errorf("easy ball speed = %v, expected default 2", cfg.Difficulties.Easy.BallSpeed)
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("[ball\nradius = "), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBreakout(bad); err == nil {
		t.Error("malformed TOML should fail")
	}
}
