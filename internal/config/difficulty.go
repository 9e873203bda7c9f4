package config

import (
	"fmt"
	"strings"
)

// DifficultyName identifies one of the fixed presets.
type DifficultyName string

// Difficulty preset names.
const (
	DifficultyEasy   DifficultyName = "easy"
	DifficultyMedium DifficultyName = "medium"
	DifficultyHard   DifficultyName = "hard"
)

// DefaultDifficulty is used when no preset is selected.
const DefaultDifficulty = DifficultyMedium

// Difficulty is a resolved preset. It is selected once at round start and
// never changes during the round.
type Difficulty struct {
	Name        DifficultyName
	BallSpeed   float64
	PaddleWidth float64
}

// DifficultyNames returns the presets in menu order.
func DifficultyNames() []DifficultyName {
	return []DifficultyName{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficultyName converts user input to a preset name.
// An empty string yields the default preset.
func ParseDifficultyName(s string) (DifficultyName, error) {
	switch DifficultyName(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultDifficulty, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium, "normal":
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", s)
}

// Difficulty resolves a preset name against the configured table.
func (c BreakoutConfig) Difficulty(name DifficultyName) (Difficulty, error) {
	var v PresetValues
	switch name {
	case DifficultyEasy:
		v = c.Difficulties.Easy
	case DifficultyMedium:
		v = c.Difficulties.Medium
	case DifficultyHard:
		v = c.Difficulties.Hard
	default:
		return Difficulty{}, fmt.Errorf("config: unknown difficulty %q", name)
	}
	return Difficulty{Name: name, BallSpeed: v.BallSpeed, PaddleWidth: v.PaddleWidth}, nil
}
