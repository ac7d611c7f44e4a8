package config

import (
	"fmt"
	"strings"
)

// DifficultyStorageKey is the localStorage key the browser build reads once
// at start-up.
const DifficultyStorageKey = "espace.difficulty"

// Difficulty scales enemy and hazard speeds. It has no other effect.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

var difficultyNames = map[Difficulty]string{
	Easy:   "easy",
	Normal: "normal",
	Hard:   "hard",
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// SpeedMultiplier returns the factor applied to enemy and hazard velocities.
func (d Difficulty) SpeedMultiplier() float64 {
	switch d {
	case Easy:
		return 0.75
	case Hard:
		return 1.35
	default:
		return 1
	}
}

// ParseDifficulty maps a stored value to a Difficulty. Unknown or empty
// values fall back to Normal and report an error for logging.
func ParseDifficulty(s string) (Difficulty, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return Normal, nil
	}
	for d, name := range difficultyNames {
		if name == v {
			return d, nil
		}
	}
	return Normal, fmt.Errorf("unknown difficulty %q", s)
}
