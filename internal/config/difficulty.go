package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted difficulty names.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParseDifficulty converts a flag or YAML value to a preset.
// An empty string means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalidConfig, s)
	}
}

// FallTicksForPreset returns the drop interval for a preset at tickRate:
// one drop per second on easy, two on normal, four on hard. Never below 1.
func FallTicksForPreset(preset DifficultyPreset, tickRate int) int {
	var ticks int
	switch preset {
	case DifficultyEasy:
		ticks = tickRate
	case DifficultyHard:
		ticks = tickRate / 4
	default:
		ticks = tickRate / 2
	}
	return max(ticks, 1)
}
